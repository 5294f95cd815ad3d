package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"

	"github.com/xuri/excelize/v2"
)

// ReportService renders record sets into downloadable workbooks
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

var attendanceHeaders = []string{
	"Record ID", "Employee ID", "Employee Name", "Date", "Time In", "Time Out", "Cutoff Period", "Status",
}

// AttendanceWorkbook renders attendance entries into an XLSX workbook
func (s *ReportService) AttendanceWorkbook(entries []domain.AttendanceEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range attendanceHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(attendanceHeaders), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, e := range entries {
		row := i + 2
		values := []interface{}{
			e.ID, e.EmpID, e.EmployeeName, e.DateLabel, e.TimeInLabel, e.TimeOutLabel, e.CutoffLabel, e.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

// AttendanceFilename builds the download filename for an export
func (s *ReportService) AttendanceFilename(now time.Time) string {
	return fmt.Sprintf("attendance_%s.xlsx", now.Format("2006-01-02"))
}
