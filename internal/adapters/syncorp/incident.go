package syncorp

import (
	"context"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type incidentRow struct {
	ID        ID     `json:"id"`
	EmpID     ID     `json:"emp_ID"`
	Details   string `json:"details"`
	DateFiled string `json:"date_filed"`
}

// GetAllIncidentReports fetches and normalizes every incident report.
// Incident reports carry no approval workflow; the domain is read-only.
func (c *Client) GetAllIncidentReports(ctx context.Context, sess Session) ([]domain.IncidentReport, error) {
	var rows []incidentRow
	if err := c.getData(ctx, sess, "/incident_reports/get_all_incident_report", &rows); err != nil {
		return nil, err
	}

	records := make([]domain.IncidentReport, 0, len(rows))
	for _, r := range rows {
		filed := domain.ParseAPIDate(r.DateFiled)
		records = append(records, domain.IncidentReport{
			ID:             r.ID.String(),
			EmpID:          r.EmpID.String(),
			Details:        r.Details,
			DateFiled:      filed,
			DateFiledLabel: domain.FormatDate(filed),
		})
	}
	return records, nil
}
