package domain

import (
	"strings"
	"time"
)

// Display formats used across every admin table
const (
	DisplayDate     = "Jan 02, 2006"
	DisplayDateTime = "Jan 02, 2006 03:04 PM"
)

// apiDateLayouts covers the ISO-ish shapes the HRIS API emits
var apiDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseAPIDate parses a date/datetime string from the HRIS API. The zero
// time is returned for empty or unparseable values; callers treat it as
// "no date" rather than an error.
func ParseAPIDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range apiDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDate renders a parsed date for display ("" for the zero time)
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayDate)
}

// FormatDateTime renders a parsed datetime for display ("" for the zero time)
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayDateTime)
}

// Employee is one row of the employee directory
type Employee struct {
	EmpID      string `json:"emp_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Active     bool   `json:"active"`
}

// CutoffPeriod is a payroll date range used to group attendance records
type CutoffPeriod struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CatalogEntry is one row of a lookup catalog (leave types, overtime
// types, coaching types)
type CatalogEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Approval carries the canonical workflow fields shared by every
// approvable record
type Approval struct {
	State        ApprovalState `json:"state"`
	StatusLabel  string        `json:"status_label"`
	ApprovedBy   string        `json:"approved_by,omitempty"`  // first-stage approver emp_ID
	ApprovedBy2  string        `json:"approved_by2,omitempty"` // final-stage approver emp_ID
	RejectReason string        `json:"reject_reason,omitempty"`
}

// LeaveRequest is a normalized leave request row
type LeaveRequest struct {
	ID             string    `json:"id"`
	EmpID          string    `json:"emp_id"`
	EmployeeName   string    `json:"employee_name"`
	LeaveType      string    `json:"leave_type"`
	Reason         string    `json:"reason"`
	MedCertPath    string    `json:"med_cert_path,omitempty"` // relative /uploads path
	DateFiled      time.Time `json:"date_filed"`
	DateFiledLabel string    `json:"date_filed_label"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Approval
}

// OvertimeRequest is a normalized overtime request row
type OvertimeRequest struct {
	ID             string    `json:"id"`
	EmpID          string    `json:"emp_id"`
	EmployeeName   string    `json:"employee_name"`
	OvertimeType   string    `json:"overtime_type"`
	Hours          float64   `json:"hours"`
	Date           time.Time `json:"date"`
	DateLabel      string    `json:"date_label"`
	DateFiled      time.Time `json:"date_filed"`
	DateFiledLabel string    `json:"date_filed_label"`
	Approval
}

// ComplexityAllowance is a normalized complexity allowance row
type ComplexityAllowance struct {
	ID             string    `json:"id"`
	EmpID          string    `json:"emp_id"`
	EmployeeName   string    `json:"employee_name"`
	Amount         float64   `json:"amount"`
	AmountLabel    string    `json:"amount_label"` // currency-formatted for display
	CutoffID       string    `json:"cutoff_id"`
	CutoffLabel    string    `json:"cutoff_label"`
	DateFiled      time.Time `json:"date_filed"`
	DateFiledLabel string    `json:"date_filed_label"`
	Approval
}

// TimeAdjustment is a normalized time adjustment row
type TimeAdjustment struct {
	ID             string    `json:"id"`
	EmpID          string    `json:"emp_id"`
	EmployeeName   string    `json:"employee_name"`
	Date           time.Time `json:"date"`
	DateLabel      string    `json:"date_label"`
	TimeIn         time.Time `json:"time_in"`
	TimeInLabel    string    `json:"time_in_label"`
	TimeOut        time.Time `json:"time_out"`
	TimeOutLabel   string    `json:"time_out_label"`
	Reason         string    `json:"reason"`
	DateFiled      time.Time `json:"date_filed"`
	DateFiledLabel string    `json:"date_filed_label"`
	Approval
}

// IncidentReport is a normalized incident report row (read-only domain)
type IncidentReport struct {
	ID             string    `json:"id"`
	EmpID          string    `json:"emp_id"`
	EmployeeName   string    `json:"employee_name"`
	Details        string    `json:"details"`
	DateFiled      time.Time `json:"date_filed"`
	DateFiledLabel string    `json:"date_filed_label"`
}

// AttendanceEntry is a normalized attendance row, also served by the
// live polling view
type AttendanceEntry struct {
	ID           string    `json:"id"`
	EmpID        string    `json:"emp_id"`
	EmployeeName string    `json:"employee_name"`
	Date         time.Time `json:"date"`
	DateLabel    string    `json:"date_label"`
	TimeIn       time.Time `json:"time_in"`
	TimeInLabel  string    `json:"time_in_label"`
	TimeOut      time.Time `json:"time_out"`
	TimeOutLabel string    `json:"time_out_label"`
	CutoffID     string    `json:"cutoff_id"`
	CutoffLabel  string    `json:"cutoff_label"`
	Status       string    `json:"status"` // present / late / absent as reported upstream
}

// CoachingSession is a normalized coaching session with its narrative
// sections
type CoachingSession struct {
	ID             string    `json:"id"`
	EmpID          string    `json:"emp_id"`
	EmployeeName   string    `json:"employee_name"`
	SupervisorID   string    `json:"supervisor_id"`
	SupervisorName string    `json:"supervisor_name"`
	CoachingType   string    `json:"coaching_type"`
	Concern        string    `json:"concern"`
	Behavior       string    `json:"behavior,omitempty"`
	Commitment     string    `json:"commitment,omitempty"`
	ActionPlan     string    `json:"action_plan,omitempty"`
	FollowUpDate   time.Time `json:"follow_up_date"`
	FollowUpLabel  string    `json:"follow_up_label"`
	SessionDate    time.Time `json:"session_date"`
	SessionLabel   string    `json:"session_label"`
	SignaturePath  string    `json:"signature_path,omitempty"` // relative /uploads path
	Acknowledged   bool      `json:"acknowledged"`
}
