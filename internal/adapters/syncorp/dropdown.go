package syncorp

import (
	"context"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type cutoffRow struct {
	ID        ID     `json:"id"`
	Label     string `json:"cutoff_period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type catalogRow struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type dropdownRows struct {
	Cutoffs       []cutoffRow  `json:"cutoff"`
	LeaveTypes    []catalogRow `json:"leave_types"`
	OvertimeTypes []catalogRow `json:"overtime_types"`
	CoachingTypes []catalogRow `json:"coaching_types"`
}

// DropdownData bundles the lookup catalogs served by the dropdown endpoint
type DropdownData struct {
	Cutoffs       []domain.CutoffPeriod `json:"cutoffs"`
	LeaveTypes    []domain.CatalogEntry `json:"leave_types"`
	OvertimeTypes []domain.CatalogEntry `json:"overtime_types"`
	CoachingTypes []domain.CatalogEntry `json:"coaching_types"`
}

// GetDropdownData fetches the cutoff periods and type catalogs
func (c *Client) GetDropdownData(ctx context.Context, sess Session) (*DropdownData, error) {
	var rows dropdownRows
	if err := c.getData(ctx, sess, "/main/get_all_dropdown_data", &rows); err != nil {
		return nil, err
	}

	out := &DropdownData{
		Cutoffs:       make([]domain.CutoffPeriod, 0, len(rows.Cutoffs)),
		LeaveTypes:    catalog(rows.LeaveTypes),
		OvertimeTypes: catalog(rows.OvertimeTypes),
		CoachingTypes: catalog(rows.CoachingTypes),
	}
	for _, r := range rows.Cutoffs {
		out.Cutoffs = append(out.Cutoffs, domain.CutoffPeriod{
			ID:        r.ID.String(),
			Label:     r.Label,
			StartDate: domain.ParseAPIDate(r.StartDate),
			EndDate:   domain.ParseAPIDate(r.EndDate),
		})
	}
	return out, nil
}

func catalog(rows []catalogRow) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CatalogEntry{ID: r.ID.String(), Name: r.Name})
	}
	return out
}
