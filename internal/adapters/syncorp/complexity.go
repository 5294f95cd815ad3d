package syncorp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type complexityRow struct {
	ID           ID     `json:"id"`
	EmpID        ID     `json:"emp_ID"`
	Amount       ID     `json:"amount"`
	CutoffID     ID     `json:"cutoff_id"`
	DateFiled    string `json:"date_filed"`
	Status       string `json:"status"`
	Status2      string `json:"status2"`
	ApprovedBy   ID     `json:"approved_by"`
	ApprovedBy2  ID     `json:"approved_by2"`
	RejectReason string `json:"reject_reason"`
}

// GetAllComplexityAllowances fetches and normalizes every complexity
// allowance. CutoffLabel is joined later from the cutoff catalog.
func (c *Client) GetAllComplexityAllowances(ctx context.Context, sess Session) ([]domain.ComplexityAllowance, error) {
	var rows []complexityRow
	if err := c.getData(ctx, sess, "/complexity/get_all_complexity", &rows); err != nil {
		return nil, err
	}

	records := make([]domain.ComplexityAllowance, 0, len(rows))
	for _, r := range rows {
		filed := domain.ParseAPIDate(r.DateFiled)
		amount, _ := strconv.ParseFloat(r.Amount.String(), 64)
		records = append(records, domain.ComplexityAllowance{
			ID:             r.ID.String(),
			EmpID:          r.EmpID.String(),
			Amount:         amount,
			AmountLabel:    fmt.Sprintf("₱%.2f", amount),
			CutoffID:       r.CutoffID.String(),
			DateFiled:      filed,
			DateFiledLabel: domain.FormatDate(filed),
			Approval:       deriveApproval(r.Status, r.Status2, r.ApprovedBy, r.ApprovedBy2, r.RejectReason),
		})
	}
	return records, nil
}

// UpdateComplexityApproval submits an admin approval decision for a complexity allowance
func (c *Client) UpdateComplexityApproval(ctx context.Context, sess Session, id string, decision ApprovalDecision) error {
	return c.send(ctx, sess, http.MethodPut, "/complexity/update_approval_complexity_admin/"+id, decision)
}
