package syncorp

import (
	"context"
	"strings"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

type employeeRow struct {
	EmpID     ID     `json:"emp_ID"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Dept      string `json:"department"`
	Position  string `json:"position"`
	Status    string `json:"employee_status"`
}

// GetAllEmployees fetches the employee directory
func (c *Client) GetAllEmployees(ctx context.Context, sess Session) ([]domain.Employee, error) {
	var rows []employeeRow
	if err := c.getData(ctx, sess, "/employees/get_all_employee", &rows); err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, 0, len(rows))
	for _, r := range rows {
		full := strings.TrimSpace(r.FirstName + " " + r.LastName)
		if full == "" {
			full = r.EmpID.String()
		}
		employees = append(employees, domain.Employee{
			EmpID:      r.EmpID.String(),
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			FullName:   full,
			Department: r.Dept,
			Position:   r.Position,
			Active:     !strings.EqualFold(r.Status, "inactive"),
		})
	}
	return employees, nil
}
