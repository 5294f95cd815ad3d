package syncorp

import (
	"context"
	"net/http"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type leaveRow struct {
	ID           ID     `json:"id"`
	EmpID        ID     `json:"emp_ID"`
	LeaveType    string `json:"leave_type"`
	Reason       string `json:"reason"`
	MedCert      string `json:"med_cert"`
	DateFiled    string `json:"date_filed"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	Status2      string `json:"status2"`
	ApprovedBy   ID     `json:"approved_by"`
	ApprovedBy2  ID     `json:"approved_by2"`
	RejectReason string `json:"reject_reason"`
}

// GetAllLeaveRequests fetches and normalizes every leave request.
// EmployeeName is left empty; the service layer joins it from the
// employee directory.
func (c *Client) GetAllLeaveRequests(ctx context.Context, sess Session) ([]domain.LeaveRequest, error) {
	var rows []leaveRow
	if err := c.getData(ctx, sess, "/leave_requests/get_all_leave_request", &rows); err != nil {
		return nil, err
	}

	records := make([]domain.LeaveRequest, 0, len(rows))
	for _, r := range rows {
		filed := domain.ParseAPIDate(r.DateFiled)
		records = append(records, domain.LeaveRequest{
			ID:             r.ID.String(),
			EmpID:          r.EmpID.String(),
			LeaveType:      r.LeaveType,
			Reason:         r.Reason,
			MedCertPath:    r.MedCert,
			DateFiled:      filed,
			DateFiledLabel: domain.FormatDate(filed),
			StartDate:      domain.ParseAPIDate(r.StartDate),
			EndDate:        domain.ParseAPIDate(r.EndDate),
			Approval:       deriveApproval(r.Status, r.Status2, r.ApprovedBy, r.ApprovedBy2, r.RejectReason),
		})
	}
	return records, nil
}

// UpdateLeaveApproval submits an admin approval decision for a leave request
func (c *Client) UpdateLeaveApproval(ctx context.Context, sess Session, id string, decision ApprovalDecision) error {
	return c.send(ctx, sess, http.MethodPut, "/leave_requests/update_approval_leave_request_admin/"+id, decision)
}
