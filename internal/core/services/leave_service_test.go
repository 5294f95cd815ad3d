package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/listview"
)

// leaveListJSON builds 25 leave rows for employee 100, all past initial
// approval: rows 1-10 finally approved, rows 11-25 awaiting the admin.
func leaveListJSON() string {
	rows := make([]string, 0, 25)
	for i := 1; i <= 25; i++ {
		status2 := "null"
		if i <= 10 {
			status2 = `"Approved"`
		}
		rows = append(rows, fmt.Sprintf(
			`{"id": %d, "emp_ID": 100, "leave_type": "Sick Leave", "date_filed": "2024-01-%02d", "status": "Approved", "status2": %s, "approved_by": 203}`,
			i, i, status2))
	}
	return `{"data": [` + strings.Join(rows, ",") + `]}`
}

func TestLeaveListFiltersPendingAndSortsNewestFirst(t *testing.T) {
	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		w.Write([]byte(leaveListJSON()))
	})

	svc := NewLeaveService(client, sess, refs, time.Minute)
	result, err := svc.List(context.Background(), listview.Query{
		Status:  string(domain.CategoryPendingFinal),
		SortBy:  "date_filed",
		Dir:     listview.Desc,
		Page:    1,
		PerPage: 50,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(result.Items) != 15 {
		t.Fatalf("expected the 15 pending records, got %d", len(result.Items))
	}
	if result.Items[0].ID != "25" {
		t.Fatalf("expected most recently filed first, got record %s", result.Items[0].ID)
	}
	for _, item := range result.Items {
		if item.State != domain.StateApprovedInitial {
			t.Fatalf("record %s has state %q", item.ID, item.State)
		}
		if item.EmployeeName != "Ana Reyes" {
			t.Fatalf("employee name not joined: %q", item.EmployeeName)
		}
	}
}

func TestUnknownEmployeeFallsBackToRawID(t *testing.T) {
	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		w.Write([]byte(`{"data": [{"id": 1, "emp_ID": 999, "date_filed": "2024-01-05"}]}`))
	})

	svc := NewLeaveService(client, sess, refs, time.Minute)
	result, err := svc.List(context.Background(), listview.Query{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Items[0].EmployeeName != "999" {
		t.Fatalf("expected raw ID fallback, got %q", result.Items[0].EmployeeName)
	}
}

func TestLeaveSnapshotServesRepeatListingsWithinTTL(t *testing.T) {
	var mu sync.Mutex
	listFetches := 0

	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		mu.Lock()
		listFetches++
		mu.Unlock()
		w.Write([]byte(`{"data": []}`))
	})

	svc := NewLeaveService(client, sess, refs, time.Minute)
	for i := 0; i < 3; i++ {
		if _, err := svc.List(context.Background(), listview.Query{Page: 1}); err != nil {
			t.Fatalf("list: %v", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if listFetches != 1 {
		t.Fatalf("expected a single upstream fetch within the TTL, got %d", listFetches)
	}
}

func TestApproveDispatchesAndResynchronizes(t *testing.T) {
	var mu sync.Mutex
	status2 := "null"
	var decision map[string]interface{}

	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/leave_requests/update_approval_leave_request_admin/7":
			mu.Lock()
			json.NewDecoder(r.Body).Decode(&decision)
			status2 = `"Approved"`
			mu.Unlock()
			w.Write([]byte(`{"success": true}`))
		default:
			mu.Lock()
			body := fmt.Sprintf(`{"data": [{"id": 7, "emp_ID": 100, "date_filed": "2024-01-05", "status": "Approved", "status2": %s}]}`, status2)
			mu.Unlock()
			w.Write([]byte(body))
		}
	})

	svc := NewLeaveService(client, sess, refs, time.Minute)

	// Prime the snapshot with the pending record.
	if _, err := svc.List(context.Background(), listview.Query{Page: 1}); err != nil {
		t.Fatalf("list: %v", err)
	}

	if err := svc.Approve(context.Background(), "7"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	mu.Lock()
	if decision["status"] != "Approved" || decision["approved_by"] != "900" {
		t.Fatalf("unexpected decision payload: %v", decision)
	}
	mu.Unlock()

	// The refetch after the dispatch already replaced the snapshot; the
	// next listing shows the final approval without any extra reload.
	result, err := svc.List(context.Background(), listview.Query{Page: 1})
	if err != nil {
		t.Fatalf("list after approve: %v", err)
	}
	if result.Items[0].State != domain.StateApprovedFinal {
		t.Fatalf("expected final approval after resync, got %q", result.Items[0].State)
	}
}

func TestConcurrentActionOnSameRecordIsRejected(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		if r.Method == http.MethodPut {
			once.Do(func() { close(entered) })
			<-release
			w.Write([]byte(`{"success": true}`))
			return
		}
		w.Write([]byte(`{"data": []}`))
	})

	svc := NewLeaveService(client, sess, refs, time.Minute)

	done := make(chan error, 1)
	go func() {
		done <- svc.Approve(context.Background(), "7")
	}()
	<-entered

	if err := svc.Reject(context.Background(), "7", "dup"); !errors.Is(err, domain.ErrActionInFlight) {
		t.Fatalf("expected in-flight guard to reject the second action, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first action failed: %v", err)
	}
}
