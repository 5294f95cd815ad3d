package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/listview"
)

// AttendanceService maintains the live attendance view: a background
// poller refetches the attendance list on a fixed period and listings
// are served from the latest snapshot. A tick is skipped while the
// previous poll is still in flight, so slow upstream responses never
// pile up overlapping requests.
type AttendanceService struct {
	client   *syncorp.Client
	sess     syncorp.Session
	refs     *ReferenceService
	interval time.Duration
	stopChan chan struct{}

	mu         sync.Mutex
	entries    []domain.AttendanceEntry
	fetchedAt  time.Time
	polling    bool
	nextGen    uint64
	appliedGen uint64
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(client *syncorp.Client, sess syncorp.Session, refs *ReferenceService, interval time.Duration) *AttendanceService {
	return &AttendanceService{
		client:   client,
		sess:     sess,
		refs:     refs,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start primes the snapshot and launches the poll loop. A failed
// priming fetch is non-fatal; the loop retries on the next tick.
func (s *AttendanceService) Start(ctx context.Context) {
	if err := s.poll(ctx); err != nil {
		log.Printf("⚠️ Initial attendance poll failed: %v", err)
	}
	go s.runPollLoop()
	log.Printf("🚀 AttendanceService started (poll every %s)", s.interval)
}

// Stop halts the poll loop
func (s *AttendanceService) Stop() {
	close(s.stopChan)
	log.Println("🛑 AttendanceService stopped")
}

func (s *AttendanceService) runPollLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.interval*4)
			if err := s.poll(ctx); err != nil {
				log.Printf("⚠️ Attendance poll failed: %v", err)
			}
			cancel()
		case <-s.stopChan:
			return
		}
	}
}

// poll fetches the attendance list once. It returns nil without
// fetching when another poll is already running, and discards results
// that lose the race to a newer poll.
func (s *AttendanceService) poll(ctx context.Context) error {
	s.mu.Lock()
	if s.polling {
		s.mu.Unlock()
		return nil
	}
	s.polling = true
	s.nextGen++
	gen := s.nextGen
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.polling = false
		s.mu.Unlock()
	}()

	entries, err := s.client.GetAllAttendance(ctx, s.sess)
	if err != nil {
		return err
	}
	for i := range entries {
		entries[i].EmployeeName = s.refs.EmployeeName(entries[i].EmpID)
		entries[i].CutoffLabel = s.refs.CutoffLabel(entries[i].CutoffID)
	}

	s.mu.Lock()
	if gen > s.appliedGen {
		s.entries = entries
		s.appliedGen = gen
		s.fetchedAt = time.Now()
	}
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current entries and when they were fetched
func (s *AttendanceService) Snapshot() ([]domain.AttendanceEntry, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries, s.fetchedAt
}

// List returns one filtered, sorted page of the attendance snapshot
func (s *AttendanceService) List(q listview.Query) listview.Result[domain.AttendanceEntry] {
	entries, _ := s.Snapshot()
	return listview.Apply(entries, q, attendanceDescriptor())
}

// Filtered returns the full filtered, sorted set without pagination,
// used by the XLSX export.
func (s *AttendanceService) Filtered(q listview.Query) []domain.AttendanceEntry {
	entries, _ := s.Snapshot()
	d := attendanceDescriptor()
	filtered := listview.Filter(entries, q, d)
	listview.Sort(filtered, q, d)
	return filtered
}

func attendanceDescriptor() listview.Descriptor[domain.AttendanceEntry] {
	return listview.Descriptor[domain.AttendanceEntry]{
		Search: []func(domain.AttendanceEntry) string{
			func(r domain.AttendanceEntry) string { return r.EmployeeName },
			func(r domain.AttendanceEntry) string { return r.EmpID },
			func(r domain.AttendanceEntry) string { return r.ID },
			func(r domain.AttendanceEntry) string { return r.CutoffLabel },
		},
		EmpID:  func(r domain.AttendanceEntry) string { return r.EmpID },
		Date:   func(r domain.AttendanceEntry) time.Time { return r.Date },
		Status: func(r domain.AttendanceEntry) string { return r.Status },
		Sort: map[string]func(a, b domain.AttendanceEntry) int{
			"date": func(a, b domain.AttendanceEntry) int { return listview.CompareTimes(a.Date, b.Date) },
			"employee": func(a, b domain.AttendanceEntry) int {
				return listview.CompareStrings(a.EmployeeName, b.EmployeeName)
			},
			"time_in": func(a, b domain.AttendanceEntry) int { return listview.CompareTimes(a.TimeIn, b.TimeIn) },
			"status":  func(a, b domain.AttendanceEntry) int { return listview.CompareStrings(a.Status, b.Status) },
		},
	}
}
