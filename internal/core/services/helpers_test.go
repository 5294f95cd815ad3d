package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
)

const testEmployeesJSON = `{"data": [
	{"emp_ID": 100, "first_name": "Ana", "last_name": "Reyes"},
	{"emp_ID": 200, "first_name": "Ben", "last_name": "Cruz"}
]}`

const testDropdownJSON = `{"data": {
	"cutoff": [{"id": 1, "cutoff_period": "Jan 1-15 2024", "start_date": "2024-01-01", "end_date": "2024-01-15"}],
	"leave_types": [{"id": 1, "name": "Sick Leave"}],
	"overtime_types": [{"id": 1, "name": "Regular"}],
	"coaching_types": [{"id": 1, "name": "Performance"}]
}}`

// serveReferenceData handles the lookup endpoints the reference cache
// loads; it returns true when the request was one of them.
func serveReferenceData(w http.ResponseWriter, r *http.Request) bool {
	switch r.URL.Path {
	case "/employees/get_all_employee":
		w.Write([]byte(testEmployeesJSON))
		return true
	case "/main/get_all_dropdown_data":
		w.Write([]byte(testDropdownJSON))
		return true
	}
	return false
}

// newTestUpstream builds a stub HRIS server plus a client and reference
// cache already loaded against it.
func newTestUpstream(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *syncorp.Client, syncorp.Session, *ReferenceService) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := syncorp.NewClient(srv.URL, 2*time.Second)
	sess := syncorp.Session{Token: "test-token", EmpID: "900"}

	refs := NewReferenceService(client, sess, time.Minute)
	if err := refs.Refresh(context.Background()); err != nil {
		t.Fatalf("reference refresh: %v", err)
	}
	return srv, client, sess, refs
}
