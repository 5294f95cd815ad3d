package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/listview"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CoachingService serves coaching sessions: listing per supervisor plus
// full create/update/delete. Mutations are validated before any
// upstream request is made.
type CoachingService struct {
	client   *syncorp.Client
	sess     syncorp.Session
	refs     *ReferenceService
	validate *validator.Validate
	guard    *inflight
}

// NewCoachingService creates a new coaching service
func NewCoachingService(client *syncorp.Client, sess syncorp.Session, refs *ReferenceService) *CoachingService {
	return &CoachingService{
		client:   client,
		sess:     sess,
		refs:     refs,
		validate: validator.New(),
		guard:    newInflight(),
	}
}

// ListBySupervisor returns one filtered, sorted page of a supervisor's
// coaching sessions. Coaching lists are small and keyed per supervisor,
// so they are fetched on demand rather than snapshotted.
func (s *CoachingService) ListBySupervisor(ctx context.Context, supervisorID string, q listview.Query) (listview.Result[domain.CoachingSession], error) {
	if supervisorID == "" {
		return listview.Result[domain.CoachingSession]{}, domain.ErrInvalidInput
	}

	records, err := s.client.GetCoachingBySupervisor(ctx, s.sess, supervisorID)
	if err != nil {
		return listview.Result[domain.CoachingSession]{}, err
	}
	for i := range records {
		records[i].EmployeeName = s.refs.EmployeeName(records[i].EmpID)
		records[i].SupervisorName = s.refs.EmployeeName(records[i].SupervisorID)
	}
	return listview.Apply(records, q, coachingDescriptor()), nil
}

func coachingDescriptor() listview.Descriptor[domain.CoachingSession] {
	return listview.Descriptor[domain.CoachingSession]{
		Search: []func(domain.CoachingSession) string{
			func(r domain.CoachingSession) string { return r.EmployeeName },
			func(r domain.CoachingSession) string { return r.EmpID },
			func(r domain.CoachingSession) string { return r.ID },
			func(r domain.CoachingSession) string { return r.Concern },
		},
		EmpID: func(r domain.CoachingSession) string { return r.EmpID },
		Date:  func(r domain.CoachingSession) time.Time { return r.SessionDate },
		Sort: map[string]func(a, b domain.CoachingSession) int{
			"session_date": func(a, b domain.CoachingSession) int { return listview.CompareTimes(a.SessionDate, b.SessionDate) },
			"follow_up":    func(a, b domain.CoachingSession) int { return listview.CompareTimes(a.FollowUpDate, b.FollowUpDate) },
			"employee": func(a, b domain.CoachingSession) int {
				return listview.CompareStrings(a.EmployeeName, b.EmployeeName)
			},
			"coaching_type": func(a, b domain.CoachingSession) int {
				return listview.CompareStrings(a.CoachingType, b.CoachingType)
			},
		},
	}
}

// Add creates a coaching session
func (s *CoachingService) Add(ctx context.Context, payload syncorp.CoachingPayload) error {
	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	auditID := uuid.NewString()
	log.Printf("📝 coaching add %s: emp=%s supervisor=%s", auditID, payload.EmpID, payload.SupervisorID)
	return s.client.AddCoaching(ctx, s.sess, payload)
}

// Update edits a coaching session
func (s *CoachingService) Update(ctx context.Context, id string, payload syncorp.CoachingPayload) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !s.guard.begin(id) {
		return domain.ErrActionInFlight
	}
	defer s.guard.end(id)

	auditID := uuid.NewString()
	log.Printf("📝 coaching update %s: record=%s", auditID, id)
	return s.client.UpdateCoaching(ctx, s.sess, id, payload)
}

// Delete removes a coaching session
func (s *CoachingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if !s.guard.begin(id) {
		return domain.ErrActionInFlight
	}
	defer s.guard.end(id)

	auditID := uuid.NewString()
	log.Printf("🗑️ coaching delete %s: record=%s", auditID, id)
	return s.client.DeleteCoaching(ctx, s.sess, id)
}
