package domain

import "strings"

// ApprovalState is the canonical two-stage approval state of a record.
// Every approvable domain derives it the same way, so status badges and
// filters behave identically across listings.
type ApprovalState string

const (
	StatePending         ApprovalState = "PENDING"
	StateApprovedInitial ApprovalState = "APPROVED_INITIAL"
	StateApprovedFinal   ApprovalState = "APPROVED_FINAL"
	StateRejectedInitial ApprovalState = "REJECTED_INITIAL"
	StateRejectedFinal   ApprovalState = "REJECTED_FINAL"
)

// StatusCategory is the filter-facing grouping of approval states
type StatusCategory string

const (
	CategoryAll            StatusCategory = "all"
	CategoryPendingInitial StatusCategory = "pending_initial"
	CategoryPendingFinal   StatusCategory = "pending_final"
	CategoryApproved       StatusCategory = "approved"
	CategoryRejected       StatusCategory = "rejected"
)

// RawApproval carries the raw status columns as they arrive from the
// HRIS API. Any of them may be empty.
type RawApproval struct {
	Status      string // first-stage status column
	Status2     string // final-stage status column
	ApprovedBy  string // first-stage approver emp_ID
	ApprovedBy2 string // final-stage approver emp_ID
}

// DeriveState maps raw status columns onto the canonical state machine.
// Precedence per stage: an explicit status column wins; otherwise the
// presence of an approver ID counts as approval; otherwise the stage is
// pending. Null, empty, and unrecognized values all read as pending, so
// every record classifies. Final-stage columns are only consulted once
// the first stage is approved.
func DeriveState(raw RawApproval) ApprovalState {
	switch deriveStage(raw.Status, raw.ApprovedBy) {
	case stageRejected:
		return StateRejectedInitial
	case stagePending:
		return StatePending
	}

	// First stage approved; classify the final stage.
	switch deriveStage(raw.Status2, raw.ApprovedBy2) {
	case stageApproved:
		return StateApprovedFinal
	case stageRejected:
		return StateRejectedFinal
	default:
		return StateApprovedInitial
	}
}

type stageResult int

const (
	stagePending stageResult = iota
	stageApproved
	stageRejected
)

func deriveStage(status, approvedBy string) stageResult {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "approve", "1":
		return stageApproved
	case "rejected", "reject", "denied", "0":
		return stageRejected
	}
	if strings.TrimSpace(approvedBy) != "" {
		return stageApproved
	}
	return stagePending
}

// Category groups the state for status filtering
func (s ApprovalState) Category() StatusCategory {
	switch s {
	case StatePending:
		return CategoryPendingInitial
	case StateApprovedInitial:
		return CategoryPendingFinal
	case StateApprovedFinal:
		return CategoryApproved
	case StateRejectedInitial, StateRejectedFinal:
		return CategoryRejected
	default:
		return CategoryPendingInitial
	}
}

// Label returns the badge text shown in admin tables
func (s ApprovalState) Label() string {
	switch s {
	case StatePending:
		return "Awaiting Initial Approval"
	case StateApprovedInitial:
		return "Awaiting Final Approval"
	case StateApprovedFinal:
		return "Approved"
	case StateRejectedInitial, StateRejectedFinal:
		return "Rejected"
	default:
		return "Awaiting Initial Approval"
	}
}

// ParseCategory normalizes a filter query value; anything unrecognized
// falls back to "all" rather than failing the request.
func ParseCategory(v string) StatusCategory {
	switch StatusCategory(strings.ToLower(strings.TrimSpace(v))) {
	case CategoryPendingInitial:
		return CategoryPendingInitial
	case CategoryPendingFinal:
		return CategoryPendingFinal
	case CategoryApproved:
		return CategoryApproved
	case CategoryRejected:
		return CategoryRejected
	default:
		return CategoryAll
	}
}
