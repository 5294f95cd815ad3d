package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/listview"
)

func TestPollSkipsTickWhilePreviousPollInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	var mu sync.Mutex
	attendanceFetches := 0

	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		mu.Lock()
		attendanceFetches++
		mu.Unlock()
		once.Do(func() { close(entered) })
		<-release
		w.Write([]byte(`{"data": [{"id": 1, "emp_ID": 100, "date": "2024-01-05", "status": "present"}]}`))
	})

	svc := NewAttendanceService(client, sess, refs, time.Hour)

	done := make(chan error, 1)
	go func() {
		done <- svc.poll(context.Background())
	}()
	<-entered

	// A tick fired while the first poll is still waiting on upstream:
	// it must return without issuing a second request.
	if err := svc.poll(context.Background()); err != nil {
		t.Fatalf("overlapping poll should be a no-op, got %v", err)
	}

	mu.Lock()
	if attendanceFetches != 1 {
		t.Fatalf("expected overlapping tick to be skipped, saw %d fetches", attendanceFetches)
	}
	mu.Unlock()

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("poll: %v", err)
	}

	entries, fetchedAt := svc.Snapshot()
	if len(entries) != 1 || fetchedAt.IsZero() {
		t.Fatalf("snapshot not applied after poll: %d entries", len(entries))
	}
	if entries[0].EmployeeName != "Ana Reyes" {
		t.Fatalf("employee name not joined: %q", entries[0].EmployeeName)
	}
}

func TestAttendanceListServesFromSnapshot(t *testing.T) {
	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		w.Write([]byte(`{"data": [
			{"id": 1, "emp_ID": 100, "date": "2024-01-05", "cutoff_id": 1, "status": "present"},
			{"id": 2, "emp_ID": 200, "date": "2024-01-06", "cutoff_id": 1, "status": "late"}
		]}`))
	})

	svc := NewAttendanceService(client, sess, refs, time.Hour)
	if err := svc.poll(context.Background()); err != nil {
		t.Fatalf("poll: %v", err)
	}

	result := svc.List(listview.Query{Status: "late", Page: 1, PerPage: 10})
	if len(result.Items) != 1 || result.Items[0].ID != "2" {
		t.Fatalf("unexpected filtered result: %+v", result.Items)
	}
	if result.Items[0].CutoffLabel != "Jan 1-15 2024" {
		t.Fatalf("cutoff label not joined: %q", result.Items[0].CutoffLabel)
	}
}
