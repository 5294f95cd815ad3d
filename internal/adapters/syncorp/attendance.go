package syncorp

import (
	"context"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type attendanceRow struct {
	ID       ID     `json:"id"`
	EmpID    ID     `json:"emp_ID"`
	Date     string `json:"date"`
	TimeIn   string `json:"time_in"`
	TimeOut  string `json:"time_out"`
	CutoffID ID     `json:"cutoff_id"`
	Status   string `json:"status"`
}

// GetAllAttendance fetches and normalizes the attendance list. The live
// attendance poller calls this on every tick.
func (c *Client) GetAllAttendance(ctx context.Context, sess Session) ([]domain.AttendanceEntry, error) {
	var rows []attendanceRow
	if err := c.getData(ctx, sess, "/attendances/get_all_attendance", &rows); err != nil {
		return nil, err
	}

	records := make([]domain.AttendanceEntry, 0, len(rows))
	for _, r := range rows {
		date := domain.ParseAPIDate(r.Date)
		timeIn := domain.ParseAPIDate(r.TimeIn)
		timeOut := domain.ParseAPIDate(r.TimeOut)
		records = append(records, domain.AttendanceEntry{
			ID:           r.ID.String(),
			EmpID:        r.EmpID.String(),
			Date:         date,
			DateLabel:    domain.FormatDate(date),
			TimeIn:       timeIn,
			TimeInLabel:  domain.FormatDateTime(timeIn),
			TimeOut:      timeOut,
			TimeOutLabel: domain.FormatDateTime(timeOut),
			CutoffID:     r.CutoffID.String(),
			Status:       r.Status,
		})
	}
	return records, nil
}
