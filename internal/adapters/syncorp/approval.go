package syncorp

import "github.com/megaxsolutions/syncorp-sub002/internal/core/domain"

// deriveApproval runs the raw status columns through the canonical
// state machine and carries the approver IDs along for display.
func deriveApproval(status, status2 string, by, by2 ID, reason string) domain.Approval {
	state := domain.DeriveState(domain.RawApproval{
		Status:      status,
		Status2:     status2,
		ApprovedBy:  by.String(),
		ApprovedBy2: by2.String(),
	})
	return domain.Approval{
		State:        state,
		StatusLabel:  state.Label(),
		ApprovedBy:   by.String(),
		ApprovedBy2:  by2.String(),
		RejectReason: reason,
	}
}
