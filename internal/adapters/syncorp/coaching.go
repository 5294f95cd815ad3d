package syncorp

import (
	"context"
	"net/http"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type coachingRow struct {
	ID           ID     `json:"id"`
	EmpID        ID     `json:"emp_ID"`
	SupervisorID ID     `json:"supervisor_ID"`
	CoachingType string `json:"coaching_type"`
	Concern      string `json:"concern"`
	Behavior     string `json:"behavior"`
	Commitment   string `json:"commitment"`
	ActionPlan   string `json:"action_plan"`
	FollowUp     string `json:"follow_up_date"`
	SessionDate  string `json:"session_date"`
	Signature    string `json:"signature"`
	Acknowledged ID     `json:"acknowledged"` // 0/1 or "0"/"1"
}

// CoachingPayload is the request body for add/update coaching
type CoachingPayload struct {
	EmpID        string `json:"emp_ID" validate:"required"`
	SupervisorID string `json:"supervisor_ID" validate:"required"`
	CoachingType string `json:"coaching_type" validate:"required"`
	Concern      string `json:"concern" validate:"required"`
	Behavior     string `json:"behavior"`
	Commitment   string `json:"commitment"`
	ActionPlan   string `json:"action_plan"`
	FollowUpDate string `json:"follow_up_date"`
	SessionDate  string `json:"session_date" validate:"required"`
}

// GetCoachingBySupervisor fetches every coaching session recorded by a supervisor
func (c *Client) GetCoachingBySupervisor(ctx context.Context, sess Session, supervisorID string) ([]domain.CoachingSession, error) {
	var rows []coachingRow
	if err := c.getData(ctx, sess, "/coaching/get_all_coaching_supervisor/"+supervisorID, &rows); err != nil {
		return nil, err
	}

	records := make([]domain.CoachingSession, 0, len(rows))
	for _, r := range rows {
		followUp := domain.ParseAPIDate(r.FollowUp)
		sessionDate := domain.ParseAPIDate(r.SessionDate)
		records = append(records, domain.CoachingSession{
			ID:            r.ID.String(),
			EmpID:         r.EmpID.String(),
			SupervisorID:  r.SupervisorID.String(),
			CoachingType:  r.CoachingType,
			Concern:       r.Concern,
			Behavior:      r.Behavior,
			Commitment:    r.Commitment,
			ActionPlan:    r.ActionPlan,
			FollowUpDate:  followUp,
			FollowUpLabel: domain.FormatDate(followUp),
			SessionDate:   sessionDate,
			SessionLabel:  domain.FormatDate(sessionDate),
			SignaturePath: r.Signature,
			Acknowledged:  r.Acknowledged.String() == "1",
		})
	}
	return records, nil
}

// AddCoaching creates a coaching session
func (c *Client) AddCoaching(ctx context.Context, sess Session, payload CoachingPayload) error {
	return c.send(ctx, sess, http.MethodPost, "/coaching/add_coaching", payload)
}

// UpdateCoaching updates a coaching session
func (c *Client) UpdateCoaching(ctx context.Context, sess Session, id string, payload CoachingPayload) error {
	return c.send(ctx, sess, http.MethodPut, "/coaching/update_coaching/"+id, payload)
}

// DeleteCoaching deletes a coaching session
func (c *Client) DeleteCoaching(ctx context.Context, sess Session, id string) error {
	return c.send(ctx, sess, http.MethodDelete, "/coaching/delete_coaching/"+id, nil)
}
