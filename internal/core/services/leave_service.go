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

// LeaveService serves the leave request admin listing and its approval
// actions
type LeaveService struct {
	client *syncorp.Client
	sess   syncorp.Session
	refs   *ReferenceService
	snap   *snapshot[domain.LeaveRequest]
	guard  *inflight
}

// NewLeaveService creates a new leave service
func NewLeaveService(client *syncorp.Client, sess syncorp.Session, refs *ReferenceService, ttl time.Duration) *LeaveService {
	s := &LeaveService{
		client: client,
		sess:   sess,
		refs:   refs,
		guard:  newInflight(),
	}
	s.snap = newSnapshot(ttl, s.fetch)
	return s
}

// fetch pulls the full list and joins employee names. The reference
// cache is loaded at startup, before any fetch runs.
func (s *LeaveService) fetch(ctx context.Context) ([]domain.LeaveRequest, error) {
	records, err := s.client.GetAllLeaveRequests(ctx, s.sess)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].EmployeeName = s.refs.EmployeeName(records[i].EmpID)
	}
	return records, nil
}

// List returns one filtered, sorted page of leave requests
func (s *LeaveService) List(ctx context.Context, q listview.Query) (listview.Result[domain.LeaveRequest], error) {
	records, err := s.snap.Get(ctx, false)
	if err != nil {
		return listview.Result[domain.LeaveRequest]{}, err
	}
	return listview.Apply(records, q, leaveDescriptor()), nil
}

func leaveDescriptor() listview.Descriptor[domain.LeaveRequest] {
	return listview.Descriptor[domain.LeaveRequest]{
		Search: []func(domain.LeaveRequest) string{
			func(r domain.LeaveRequest) string { return r.EmployeeName },
			func(r domain.LeaveRequest) string { return r.EmpID },
			func(r domain.LeaveRequest) string { return r.ID },
			func(r domain.LeaveRequest) string { return r.Reason },
		},
		EmpID:  func(r domain.LeaveRequest) string { return r.EmpID },
		Date:   func(r domain.LeaveRequest) time.Time { return r.DateFiled },
		Status: func(r domain.LeaveRequest) string { return string(r.State.Category()) },
		Sort: map[string]func(a, b domain.LeaveRequest) int{
			"date_filed": func(a, b domain.LeaveRequest) int { return listview.CompareTimes(a.DateFiled, b.DateFiled) },
			"employee": func(a, b domain.LeaveRequest) int {
				return listview.CompareStrings(a.EmployeeName, b.EmployeeName)
			},
			"leave_type": func(a, b domain.LeaveRequest) int { return listview.CompareStrings(a.LeaveType, b.LeaveType) },
			"status":     func(a, b domain.LeaveRequest) int { return listview.CompareStrings(a.StatusLabel, b.StatusLabel) },
		},
	}
}

// Approve submits an admin approval for a leave request
func (s *LeaveService) Approve(ctx context.Context, id string) error {
	return s.dispatch(ctx, id, "approve", syncorp.Approve(s.sess))
}

// Reject submits an admin rejection; the reason is optional for leave
func (s *LeaveService) Reject(ctx context.Context, id, reason string) error {
	return s.dispatch(ctx, id, "reject", syncorp.Reject(s.sess, reason))
}

func (s *LeaveService) dispatch(ctx context.Context, id, action string, decision syncorp.ApprovalDecision) error {
	if !s.guard.begin(id) {
		return domain.ErrActionInFlight
	}
	defer s.guard.end(id)

	auditID := uuid.NewString()
	log.Printf("📝 leave dispatch %s: record=%s action=%s actor=%s", auditID, id, action, s.sess.EmpID)

	if err := s.client.UpdateLeaveApproval(ctx, s.sess, id, decision); err != nil {
		log.Printf("❌ leave dispatch %s failed: %v", auditID, err)
		return err
	}

	// Resynchronize; the action already succeeded, so a refetch failure
	// only delays the updated badge until the next listing.
	s.snap.Invalidate()
	if _, err := s.snap.Get(ctx, true); err != nil {
		log.Printf("⚠️ leave refetch after dispatch %s failed: %v", auditID, err)
	}
	return nil
}
