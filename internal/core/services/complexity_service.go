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

// ComplexityService serves the complexity allowance admin listing and
// its approval actions
type ComplexityService struct {
	client *syncorp.Client
	sess   syncorp.Session
	refs   *ReferenceService
	snap   *snapshot[domain.ComplexityAllowance]
	guard  *inflight
}

// NewComplexityService creates a new complexity allowance service
func NewComplexityService(client *syncorp.Client, sess syncorp.Session, refs *ReferenceService, ttl time.Duration) *ComplexityService {
	s := &ComplexityService{
		client: client,
		sess:   sess,
		refs:   refs,
		guard:  newInflight(),
	}
	s.snap = newSnapshot(ttl, s.fetch)
	return s
}

// fetch joins both the employee directory and the cutoff catalog
func (s *ComplexityService) fetch(ctx context.Context) ([]domain.ComplexityAllowance, error) {
	records, err := s.client.GetAllComplexityAllowances(ctx, s.sess)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].EmployeeName = s.refs.EmployeeName(records[i].EmpID)
		records[i].CutoffLabel = s.refs.CutoffLabel(records[i].CutoffID)
	}
	return records, nil
}

// List returns one filtered, sorted page of complexity allowances
func (s *ComplexityService) List(ctx context.Context, q listview.Query) (listview.Result[domain.ComplexityAllowance], error) {
	records, err := s.snap.Get(ctx, false)
	if err != nil {
		return listview.Result[domain.ComplexityAllowance]{}, err
	}
	return listview.Apply(records, q, complexityDescriptor()), nil
}

func complexityDescriptor() listview.Descriptor[domain.ComplexityAllowance] {
	return listview.Descriptor[domain.ComplexityAllowance]{
		Search: []func(domain.ComplexityAllowance) string{
			func(r domain.ComplexityAllowance) string { return r.EmployeeName },
			func(r domain.ComplexityAllowance) string { return r.EmpID },
			func(r domain.ComplexityAllowance) string { return r.ID },
			func(r domain.ComplexityAllowance) string { return r.CutoffLabel },
		},
		EmpID:  func(r domain.ComplexityAllowance) string { return r.EmpID },
		Date:   func(r domain.ComplexityAllowance) time.Time { return r.DateFiled },
		Status: func(r domain.ComplexityAllowance) string { return string(r.State.Category()) },
		Sort: map[string]func(a, b domain.ComplexityAllowance) int{
			"date_filed": func(a, b domain.ComplexityAllowance) int { return listview.CompareTimes(a.DateFiled, b.DateFiled) },
			"employee": func(a, b domain.ComplexityAllowance) int {
				return listview.CompareStrings(a.EmployeeName, b.EmployeeName)
			},
			"amount": func(a, b domain.ComplexityAllowance) int { return listview.CompareFloats(a.Amount, b.Amount) },
			"status": func(a, b domain.ComplexityAllowance) int { return listview.CompareStrings(a.StatusLabel, b.StatusLabel) },
		},
	}
}

// Approve submits an admin approval for a complexity allowance
func (s *ComplexityService) Approve(ctx context.Context, id string) error {
	return s.dispatch(ctx, id, "approve", syncorp.Approve(s.sess))
}

// Reject submits an admin rejection; the reason is optional here
func (s *ComplexityService) Reject(ctx context.Context, id, reason string) error {
	return s.dispatch(ctx, id, "reject", syncorp.Reject(s.sess, reason))
}

func (s *ComplexityService) dispatch(ctx context.Context, id, action string, decision syncorp.ApprovalDecision) error {
	if !s.guard.begin(id) {
		return domain.ErrActionInFlight
	}
	defer s.guard.end(id)

	auditID := uuid.NewString()
	log.Printf("📝 complexity dispatch %s: record=%s action=%s actor=%s", auditID, id, action, s.sess.EmpID)

	if err := s.client.UpdateComplexityApproval(ctx, s.sess, id, decision); err != nil {
		log.Printf("❌ complexity dispatch %s failed: %v", auditID, err)
		return err
	}

	s.snap.Invalidate()
	if _, err := s.snap.Get(ctx, true); err != nil {
		log.Printf("⚠️ complexity refetch after dispatch %s failed: %v", auditID, err)
	}
	return nil
}
