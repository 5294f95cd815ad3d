package handlers

import (
	"errors"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/listview"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/pagination"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const queryDateLayout = "2006-01-02"

// getListQuery parses the shared listing parameters: search, emp_id,
// start_date/end_date (inclusive), status, sort, dir, page, limit.
func getListQuery(c *fiber.Ctx, defaultSort string) listview.Query {
	params := pagination.GetParams(c)

	q := listview.Query{
		Search:  c.Query("search"),
		EmpID:   c.Query("emp_id"),
		Status:  string(domain.ParseCategory(c.Query("status", "all"))),
		SortBy:  c.Query("sort", defaultSort),
		Dir:     listview.ParseDirection(c.Query("dir", "desc")),
		Page:    params.Page,
		PerPage: params.Limit,
	}

	if v := c.Query("start_date"); v != "" {
		if t, err := time.Parse(queryDateLayout, v); err == nil {
			q.DateFrom = t
		}
	}
	if v := c.Query("end_date"); v != "" {
		if t, err := time.Parse(queryDateLayout, v); err == nil {
			// Inclusive upper bound: cover the whole end day.
			q.DateTo = t.Add(24*time.Hour - time.Second)
		}
	}

	return q
}

// rejectRequest is the body for reject actions
type rejectRequest struct {
	Reason string `json:"reason"`
}

// serviceError maps service-layer failures onto the response envelope.
// Upstream-reported errors are passed through verbatim; everything is
// recoverable and the prior listing state is untouched.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	var apiErr *syncorp.APIError

	switch {
	case errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrReasonRequired):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrActionInFlight):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrRecordNotFound):
		return response.NotFound(c, err.Error())
	case errors.As(err, &apiErr):
		return response.BadGateway(c, apiErr.Error())
	default:
		return response.BadGateway(c, fallback)
	}
}
