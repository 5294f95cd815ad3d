package syncorp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type overtimeRow struct {
	ID           ID     `json:"id"`
	EmpID        ID     `json:"emp_ID"`
	OvertimeType string `json:"ot_type"`
	Hours        ID     `json:"hrs"` // string or number depending on backend version
	Date         string `json:"date"`
	DateFiled    string `json:"date_filed"`
	Status       string `json:"status"`
	Status2      string `json:"status2"`
	ApprovedBy   ID     `json:"approved_by"`
	ApprovedBy2  ID     `json:"approved_by2"`
	RejectReason string `json:"reject_reason"`
}

// GetAllOvertimeRequests fetches and normalizes every overtime request
func (c *Client) GetAllOvertimeRequests(ctx context.Context, sess Session) ([]domain.OvertimeRequest, error) {
	var rows []overtimeRow
	if err := c.getData(ctx, sess, "/overtime_requests/get_all_overtime_request", &rows); err != nil {
		return nil, err
	}

	records := make([]domain.OvertimeRequest, 0, len(rows))
	for _, r := range rows {
		date := domain.ParseAPIDate(r.Date)
		filed := domain.ParseAPIDate(r.DateFiled)
		hours, _ := strconv.ParseFloat(r.Hours.String(), 64)
		records = append(records, domain.OvertimeRequest{
			ID:             r.ID.String(),
			EmpID:          r.EmpID.String(),
			OvertimeType:   r.OvertimeType,
			Hours:          hours,
			Date:           date,
			DateLabel:      domain.FormatDate(date),
			DateFiled:      filed,
			DateFiledLabel: domain.FormatDate(filed),
			Approval:       deriveApproval(r.Status, r.Status2, r.ApprovedBy, r.ApprovedBy2, r.RejectReason),
		})
	}
	return records, nil
}

// UpdateOvertimeApproval submits an admin approval decision for an overtime request
func (c *Client) UpdateOvertimeApproval(ctx context.Context, sess Session, id string, decision ApprovalDecision) error {
	return c.send(ctx, sess, http.MethodPut, "/overtime_requests/update_approval_overtime_request_admin/"+id, decision)
}
