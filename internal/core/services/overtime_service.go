package services

import (
	"context"
	"log"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/listview"

	"github.com/google/uuid"
)

// OvertimeService serves the overtime request admin listing and its
// approval actions
type OvertimeService struct {
	client *syncorp.Client
	sess   syncorp.Session
	refs   *ReferenceService
	snap   *snapshot[domain.OvertimeRequest]
	guard  *inflight
}

// NewOvertimeService creates a new overtime service
func NewOvertimeService(client *syncorp.Client, sess syncorp.Session, refs *ReferenceService, ttl time.Duration) *OvertimeService {
	s := &OvertimeService{
		client: client,
		sess:   sess,
		refs:   refs,
		guard:  newInflight(),
	}
	s.snap = newSnapshot(ttl, s.fetch)
	return s
}

func (s *OvertimeService) fetch(ctx context.Context) ([]domain.OvertimeRequest, error) {
	records, err := s.client.GetAllOvertimeRequests(ctx, s.sess)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].EmployeeName = s.refs.EmployeeName(records[i].EmpID)
	}
	return records, nil
}

// List returns one filtered, sorted page of overtime requests
func (s *OvertimeService) List(ctx context.Context, q listview.Query) (listview.Result[domain.OvertimeRequest], error) {
	records, err := s.snap.Get(ctx, false)
	if err != nil {
		return listview.Result[domain.OvertimeRequest]{}, err
	}
	return listview.Apply(records, q, overtimeDescriptor()), nil
}

func overtimeDescriptor() listview.Descriptor[domain.OvertimeRequest] {
	return listview.Descriptor[domain.OvertimeRequest]{
		Search: []func(domain.OvertimeRequest) string{
			func(r domain.OvertimeRequest) string { return r.EmployeeName },
			func(r domain.OvertimeRequest) string { return r.EmpID },
			func(r domain.OvertimeRequest) string { return r.ID },
			func(r domain.OvertimeRequest) string { return r.OvertimeType },
		},
		EmpID:  func(r domain.OvertimeRequest) string { return r.EmpID },
		Date:   func(r domain.OvertimeRequest) time.Time { return r.Date },
		Status: func(r domain.OvertimeRequest) string { return string(r.State.Category()) },
		Sort: map[string]func(a, b domain.OvertimeRequest) int{
			"date":       func(a, b domain.OvertimeRequest) int { return listview.CompareTimes(a.Date, b.Date) },
			"date_filed": func(a, b domain.OvertimeRequest) int { return listview.CompareTimes(a.DateFiled, b.DateFiled) },
			"employee": func(a, b domain.OvertimeRequest) int {
				return listview.CompareStrings(a.EmployeeName, b.EmployeeName)
			},
			"hours":  func(a, b domain.OvertimeRequest) int { return listview.CompareFloats(a.Hours, b.Hours) },
			"status": func(a, b domain.OvertimeRequest) int { return listview.CompareStrings(a.StatusLabel, b.StatusLabel) },
		},
	}
}

// Approve submits an admin approval for an overtime request
func (s *OvertimeService) Approve(ctx context.Context, id string) error {
	return s.dispatch(ctx, id, "approve", syncorp.Approve(s.sess))
}

// Reject submits an admin rejection; the reason is optional for overtime
func (s *OvertimeService) Reject(ctx context.Context, id, reason string) error {
	return s.dispatch(ctx, id, "reject", syncorp.Reject(s.sess, reason))
}

func (s *OvertimeService) dispatch(ctx context.Context, id, action string, decision syncorp.ApprovalDecision) error {
	if !s.guard.begin(id) {
		return domain.ErrActionInFlight
	}
	defer s.guard.end(id)

	auditID := uuid.NewString()
	log.Printf("📝 overtime dispatch %s: record=%s action=%s actor=%s", auditID, id, action, s.sess.EmpID)

	if err := s.client.UpdateOvertimeApproval(ctx, s.sess, id, decision); err != nil {
		log.Printf("❌ overtime dispatch %s failed: %v", auditID, err)
		return err
	}

	s.snap.Invalidate()
	if _, err := s.snap.Get(ctx, true); err != nil {
		log.Printf("⚠️ overtime refetch after dispatch %s failed: %v", auditID, err)
	}
	return nil
}
