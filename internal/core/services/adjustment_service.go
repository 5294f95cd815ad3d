package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/listview"

	"github.com/google/uuid"
)

// AdjustmentService serves the time adjustment admin listing and its
// approval actions. Unlike the other domains, rejecting an adjustment
// requires a reason; the check runs before any upstream request.
type AdjustmentService struct {
	client *syncorp.Client
	sess   syncorp.Session
	refs   *ReferenceService
	snap   *snapshot[domain.TimeAdjustment]
	guard  *inflight
}

// NewAdjustmentService creates a new adjustment service
func NewAdjustmentService(client *syncorp.Client, sess syncorp.Session, refs *ReferenceService, ttl time.Duration) *AdjustmentService {
	s := &AdjustmentService{
		client: client,
		sess:   sess,
		refs:   refs,
		guard:  newInflight(),
	}
	s.snap = newSnapshot(ttl, s.fetch)
	return s
}

func (s *AdjustmentService) fetch(ctx context.Context) ([]domain.TimeAdjustment, error) {
	records, err := s.client.GetAllAdjustments(ctx, s.sess)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].EmployeeName = s.refs.EmployeeName(records[i].EmpID)
	}
	return records, nil
}

// List returns one filtered, sorted page of time adjustments
func (s *AdjustmentService) List(ctx context.Context, q listview.Query) (listview.Result[domain.TimeAdjustment], error) {
	records, err := s.snap.Get(ctx, false)
	if err != nil {
		return listview.Result[domain.TimeAdjustment]{}, err
	}
	return listview.Apply(records, q, adjustmentDescriptor()), nil
}

func adjustmentDescriptor() listview.Descriptor[domain.TimeAdjustment] {
	return listview.Descriptor[domain.TimeAdjustment]{
		Search: []func(domain.TimeAdjustment) string{
			func(r domain.TimeAdjustment) string { return r.EmployeeName },
			func(r domain.TimeAdjustment) string { return r.EmpID },
			func(r domain.TimeAdjustment) string { return r.ID },
			func(r domain.TimeAdjustment) string { return r.Reason },
		},
		EmpID:  func(r domain.TimeAdjustment) string { return r.EmpID },
		Date:   func(r domain.TimeAdjustment) time.Time { return r.Date },
		Status: func(r domain.TimeAdjustment) string { return string(r.State.Category()) },
		Sort: map[string]func(a, b domain.TimeAdjustment) int{
			"date":       func(a, b domain.TimeAdjustment) int { return listview.CompareTimes(a.Date, b.Date) },
			"date_filed": func(a, b domain.TimeAdjustment) int { return listview.CompareTimes(a.DateFiled, b.DateFiled) },
			"employee": func(a, b domain.TimeAdjustment) int {
				return listview.CompareStrings(a.EmployeeName, b.EmployeeName)
			},
			"status": func(a, b domain.TimeAdjustment) int { return listview.CompareStrings(a.StatusLabel, b.StatusLabel) },
		},
	}
}

// Approve submits an approval for a time adjustment
func (s *AdjustmentService) Approve(ctx context.Context, id string) error {
	return s.dispatch(ctx, id, "approve", syncorp.Approve(s.sess))
}

// Reject submits a rejection. An empty reason is rejected locally and
// never reaches the network.
func (s *AdjustmentService) Reject(ctx context.Context, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ErrReasonRequired
	}
	return s.dispatch(ctx, id, "reject", syncorp.Reject(s.sess, reason))
}

func (s *AdjustmentService) dispatch(ctx context.Context, id, action string, decision syncorp.ApprovalDecision) error {
	if !s.guard.begin(id) {
		return domain.ErrActionInFlight
	}
	defer s.guard.end(id)

	auditID := uuid.NewString()
	log.Printf("📝 adjustment dispatch %s: record=%s action=%s actor=%s", auditID, id, action, s.sess.EmpID)

	if err := s.client.UpdateAdjustmentApproval(ctx, s.sess, id, decision); err != nil {
		log.Printf("❌ adjustment dispatch %s failed: %v", auditID, err)
		return err
	}

	s.snap.Invalidate()
	if _, err := s.snap.Get(ctx, true); err != nil {
		log.Printf("⚠️ adjustment refetch after dispatch %s failed: %v", auditID, err)
	}
	return nil
}
