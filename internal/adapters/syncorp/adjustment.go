package syncorp

import (
	"context"
	"net/http"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type adjustmentRow struct {
	ID           ID     `json:"id"`
	EmpID        ID     `json:"emp_ID"`
	Date         string `json:"date"`
	TimeIn       string `json:"time_in"`
	TimeOut      string `json:"time_out"`
	Reason       string `json:"reason"`
	DateFiled    string `json:"date_filed"`
	Status       string `json:"status"`
	Status2      string `json:"status2"`
	ApprovedBy   ID     `json:"approved_by"`
	ApprovedBy2  ID     `json:"approved_by2"`
	RejectReason string `json:"reject_reason"`
}

// GetAllAdjustments fetches and normalizes every time adjustment request
func (c *Client) GetAllAdjustments(ctx context.Context, sess Session) ([]domain.TimeAdjustment, error) {
	var rows []adjustmentRow
	if err := c.getData(ctx, sess, "/adjustments/get_all_adjustment", &rows); err != nil {
		return nil, err
	}

	records := make([]domain.TimeAdjustment, 0, len(rows))
	for _, r := range rows {
		date := domain.ParseAPIDate(r.Date)
		timeIn := domain.ParseAPIDate(r.TimeIn)
		timeOut := domain.ParseAPIDate(r.TimeOut)
		filed := domain.ParseAPIDate(r.DateFiled)
		records = append(records, domain.TimeAdjustment{
			ID:             r.ID.String(),
			EmpID:          r.EmpID.String(),
			Date:           date,
			DateLabel:      domain.FormatDate(date),
			TimeIn:         timeIn,
			TimeInLabel:    domain.FormatDateTime(timeIn),
			TimeOut:        timeOut,
			TimeOutLabel:   domain.FormatDateTime(timeOut),
			Reason:         r.Reason,
			DateFiled:      filed,
			DateFiledLabel: domain.FormatDate(filed),
			Approval:       deriveApproval(r.Status, r.Status2, r.ApprovedBy, r.ApprovedBy2, r.RejectReason),
		})
	}
	return records, nil
}

// UpdateAdjustmentApproval submits an approval decision for a time adjustment
func (c *Client) UpdateAdjustmentApproval(ctx context.Context, sess Session, id string, decision ApprovalDecision) error {
	return c.send(ctx, sess, http.MethodPut, "/adjustments/update_approval_adjustment/"+id, decision)
}
