package syncorp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

func testSession() Session {
	return Session{Token: "tok-123", EmpID: "900"}
}

func TestAuthHeadersSentOnEveryRequest(t *testing.T) {
	var gotToken, gotEmp string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-JWT-TOKEN")
		gotEmp = r.Header.Get("X-EMP-ID")
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if _, err := client.GetAllLeaveRequests(context.Background(), testSession()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotToken != "tok-123" || gotEmp != "900" {
		t.Fatalf("auth headers not forwarded: token=%q emp=%q", gotToken, gotEmp)
	}
}

func TestServerErrorTextIsPreservedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "Cutoff period already locked"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.UpdateLeaveApproval(context.Background(), testSession(), "5", Approve(testSession()))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "Cutoff period already locked" {
		t.Fatalf("expected server message verbatim, got %q", apiErr.Message)
	}
}

func TestNon2xxStatusIsAnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.GetAllEmployees(context.Background(), testSession())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Message != "boom" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestIDToleratesNumbersStringsAndNull(t *testing.T) {
	var out struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": 42, "b": "E100", "c": null}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.A != "42" || out.B != "E100" || out.C != "" {
		t.Fatalf("unexpected IDs: %+v", out)
	}
}

func TestLeaveRequestsAreNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leave_requests/get_all_leave_request" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data": [
			{"id": 7, "emp_ID": 100, "leave_type": "Sick Leave", "date_filed": "2024-02-10",
			 "status": "Approved", "status2": null, "approved_by": 203}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	records, err := client.GetAllLeaveRequests(context.Background(), testSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.ID != "7" || r.EmpID != "100" {
		t.Fatalf("IDs not normalized: %+v", r)
	}
	if r.DateFiledLabel != "Feb 10, 2024" {
		t.Fatalf("date not reformatted: %q", r.DateFiledLabel)
	}
	if r.State != domain.StateApprovedInitial {
		t.Fatalf("expected awaiting final approval, got %q", r.State)
	}
}

func TestMalformedBodyOn2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if _, err := client.GetAllAttendance(context.Background(), testSession()); err == nil {
		t.Fatalf("expected error for malformed body")
	}
}

func TestUploadPathTraversalRejected(t *testing.T) {
	client := NewClient("http://example.invalid", time.Second)
	if _, err := client.GetUpload(context.Background(), testSession(), "../etc/passwd"); err == nil {
		t.Fatalf("expected traversal path to be rejected")
	}
}
