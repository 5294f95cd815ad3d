// Package listview implements the in-memory filter/sort/paginate engine
// shared by every admin record domain. The same pipeline used to be
// copy-pasted into each admin screen; here it is a single generic
// implementation parameterized by field accessors.
package listview

import (
	"sort"
	"strings"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/pagination"
)

// Direction is a sort direction
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection normalizes a query value; anything other than "desc"
// sorts ascending.
func ParseDirection(v string) Direction {
	if strings.EqualFold(strings.TrimSpace(v), string(Desc)) {
		return Desc
	}
	return Asc
}

// Query carries the active predicates, sort, and page for one listing.
// Zero values mean "inactive": empty Search/EmpID/Status skip those
// filters, zero DateFrom/DateTo leave that bound open, empty SortBy
// keeps the fetched order.
type Query struct {
	Search   string
	EmpID    string
	DateFrom time.Time
	DateTo   time.Time
	Status   string // status category; "" or "all" matches everything
	SortBy   string
	Dir      Direction
	Page     int
	PerPage  int
}

// Descriptor maps a record type onto the engine. Search accessors feed
// the case-insensitive free-text match; Sort holds the whitelisted sort
// keys as three-way comparators over resolved display values.
type Descriptor[T any] struct {
	Search []func(T) string
	EmpID  func(T) string
	Date   func(T) time.Time
	Status func(T) string
	Sort   map[string]func(a, b T) int
}

// Result is one page of a filtered, sorted listing
type Result[T any] struct {
	Items []T
	Meta  pagination.Meta
}

// Apply runs the pipeline: employee filter, date-range filter, free-text
// filter, status filter, stable sort, then pagination. The input slice
// is never mutated. A page beyond the filtered result resets to page 1,
// mirroring the admin UI's reset-on-filter-change behavior.
func Apply[T any](records []T, q Query, d Descriptor[T]) Result[T] {
	filtered := Filter(records, q, d)
	Sort(filtered, q, d)
	return paginate(filtered, q)
}

// Filter applies the active predicates in order and returns a new slice
// preserving the relative order of matching records.
func Filter[T any](records []T, q Query, d Descriptor[T]) []T {
	out := make([]T, 0, len(records))
	out = append(out, records...)

	if q.EmpID != "" && d.EmpID != nil {
		out = keep(out, func(r T) bool { return d.EmpID(r) == q.EmpID })
	}
	if (!q.DateFrom.IsZero() || !q.DateTo.IsZero()) && d.Date != nil {
		out = keep(out, func(r T) bool { return inRange(d.Date(r), q.DateFrom, q.DateTo) })
	}
	if q.Search != "" && len(d.Search) > 0 {
		needle := strings.ToLower(strings.TrimSpace(q.Search))
		out = keep(out, func(r T) bool {
			for _, field := range d.Search {
				if strings.Contains(strings.ToLower(field(r)), needle) {
					return true
				}
			}
			return false
		})
	}
	if q.Status != "" && q.Status != "all" && d.Status != nil {
		out = keep(out, func(r T) bool { return d.Status(r) == q.Status })
	}

	return out
}

// Sort orders the slice in place by the whitelisted sort key. Unknown
// keys leave the order untouched. The sort is stable: records comparing
// equal keep their relative order regardless of direction.
func Sort[T any](records []T, q Query, d Descriptor[T]) {
	cmp, ok := d.Sort[q.SortBy]
	if !ok {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		if q.Dir == Desc {
			return cmp(records[i], records[j]) > 0
		}
		return cmp(records[i], records[j]) < 0
	})
}

func paginate[T any](records []T, q Query) Result[T] {
	perPage := q.PerPage
	if perPage < 1 {
		perPage = pagination.DefaultLimit
	}

	total := len(records)
	totalPages := total / perPage
	if total%perPage > 0 {
		totalPages++
	}

	page := q.Page
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Items: records[start:end],
		Meta:  pagination.GetMeta(page, perPage, int64(total)),
	}
}

func keep[T any](records []T, pred func(T) bool) []T {
	out := records[:0]
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// inRange checks an inclusive date range; a zero bound is open and a
// zero record date only matches a fully open range.
func inRange(t, from, to time.Time) bool {
	if t.IsZero() {
		return from.IsZero() && to.IsZero()
	}
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// CompareStrings is a case-insensitive three-way comparator for string
// sort keys
func CompareStrings(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	default:
		return 0
	}
}

// CompareFloats is a three-way comparator for numeric sort keys
func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareTimes is a three-way comparator for date sort keys; zero times
// order before any real date so undated records group together.
func CompareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
