package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// ReferenceService caches the lookup tables every record list joins
// against: the employee directory, cutoff periods, and the type
// catalogs. Lookups are O(1) map reads; a cron job refreshes the cache
// on a fixed period.
type ReferenceService struct {
	client *syncorp.Client
	sess   syncorp.Session
	ttl    time.Duration
	cron   *cron.Cron

	mu            sync.RWMutex
	employees     []domain.Employee
	employeeByID  map[string]domain.Employee
	cutoffs       []domain.CutoffPeriod
	cutoffByID    map[string]domain.CutoffPeriod
	leaveTypes    []domain.CatalogEntry
	overtimeTypes []domain.CatalogEntry
	coachingTypes []domain.CatalogEntry
	nextGen       uint64
	appliedGen    uint64
}

// NewReferenceService creates the reference-data cache
func NewReferenceService(client *syncorp.Client, sess syncorp.Session, ttl time.Duration) *ReferenceService {
	return &ReferenceService{
		client:       client,
		sess:         sess,
		ttl:          ttl,
		employeeByID: make(map[string]domain.Employee),
		cutoffByID:   make(map[string]domain.CutoffPeriod),
	}
}

// Start performs the initial load and schedules periodic refreshes.
// Record services join against these maps, so the initial load runs
// before any listing is served. A failed initial load is non-fatal:
// joins fall back to raw IDs until a refresh succeeds.
func (s *ReferenceService) Start(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		log.Printf("⚠️ Initial reference data load failed: %v", err)
	}

	s.cron = cron.New()
	spec := fmt.Sprintf("@every %s", s.ttl)
	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Refresh(ctx); err != nil {
			log.Printf("⚠️ Reference data refresh failed: %v", err)
		}
	}); err != nil {
		return err
	}
	s.cron.Start()

	log.Printf("🚀 ReferenceService started (refresh %s)", spec)
	return nil
}

// Stop halts the refresh schedule
func (s *ReferenceService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	log.Println("🛑 ReferenceService stopped")
}

// Refresh reloads the employee directory and then the dropdown
// catalogs. A refresh that loses the race to a newer one is discarded
// rather than applied, and a failed refresh leaves the cache untouched.
func (s *ReferenceService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.nextGen++
	gen := s.nextGen
	s.mu.Unlock()

	employees, err := s.client.GetAllEmployees(ctx, s.sess)
	if err != nil {
		return err
	}
	dropdowns, err := s.client.GetDropdownData(ctx, s.sess)
	if err != nil {
		return err
	}

	employeeByID := make(map[string]domain.Employee, len(employees))
	for _, e := range employees {
		employeeByID[e.EmpID] = e
	}
	cutoffByID := make(map[string]domain.CutoffPeriod, len(dropdowns.Cutoffs))
	for _, c := range dropdowns.Cutoffs {
		cutoffByID[c.ID] = c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.appliedGen {
		return nil
	}
	s.appliedGen = gen
	s.employees = employees
	s.employeeByID = employeeByID
	s.cutoffs = dropdowns.Cutoffs
	s.cutoffByID = cutoffByID
	s.leaveTypes = dropdowns.LeaveTypes
	s.overtimeTypes = dropdowns.OvertimeTypes
	s.coachingTypes = dropdowns.CoachingTypes
	return nil
}

// EmployeeName resolves an employee ID to a display name. Unknown IDs
// fall back to the raw ID so a stale directory never blanks a row.
func (s *ReferenceService) EmployeeName(empID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.employeeByID[empID]; ok {
		return e.FullName
	}
	return empID
}

// CutoffLabel resolves a cutoff period ID, falling back to the raw ID
func (s *ReferenceService) CutoffLabel(cutoffID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.cutoffByID[cutoffID]; ok {
		return c.Label
	}
	return cutoffID
}

// Employees returns the cached employee directory
func (s *ReferenceService) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employees
}

// Dropdowns returns the cached catalogs for filter/select inputs
func (s *ReferenceService) Dropdowns() syncorp.DropdownData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return syncorp.DropdownData{
		Cutoffs:       s.cutoffs,
		LeaveTypes:    s.leaveTypes,
		OvertimeTypes: s.overtimeTypes,
		CoachingTypes: s.coachingTypes,
	}
}
