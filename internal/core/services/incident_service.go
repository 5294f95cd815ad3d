package services

import (
	"context"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/listview"
)

// IncidentService serves the incident report listing. Incidents carry
// no approval workflow, so there is no dispatcher here.
type IncidentService struct {
	client *syncorp.Client
	sess   syncorp.Session
	refs   *ReferenceService
	snap   *snapshot[domain.IncidentReport]
}

// NewIncidentService creates a new incident report service
func NewIncidentService(client *syncorp.Client, sess syncorp.Session, refs *ReferenceService, ttl time.Duration) *IncidentService {
	s := &IncidentService{
		client: client,
		sess:   sess,
		refs:   refs,
	}
	s.snap = newSnapshot(ttl, s.fetch)
	return s
}

func (s *IncidentService) fetch(ctx context.Context) ([]domain.IncidentReport, error) {
	records, err := s.client.GetAllIncidentReports(ctx, s.sess)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].EmployeeName = s.refs.EmployeeName(records[i].EmpID)
	}
	return records, nil
}

// List returns one filtered, sorted page of incident reports
func (s *IncidentService) List(ctx context.Context, q listview.Query) (listview.Result[domain.IncidentReport], error) {
	records, err := s.snap.Get(ctx, false)
	if err != nil {
		return listview.Result[domain.IncidentReport]{}, err
	}
	return listview.Apply(records, q, incidentDescriptor()), nil
}

func incidentDescriptor() listview.Descriptor[domain.IncidentReport] {
	return listview.Descriptor[domain.IncidentReport]{
		Search: []func(domain.IncidentReport) string{
			func(r domain.IncidentReport) string { return r.EmployeeName },
			func(r domain.IncidentReport) string { return r.EmpID },
			func(r domain.IncidentReport) string { return r.ID },
			func(r domain.IncidentReport) string { return r.Details },
		},
		EmpID: func(r domain.IncidentReport) string { return r.EmpID },
		Date:  func(r domain.IncidentReport) time.Time { return r.DateFiled },
		Sort: map[string]func(a, b domain.IncidentReport) int{
			"date_filed": func(a, b domain.IncidentReport) int { return listview.CompareTimes(a.DateFiled, b.DateFiled) },
			"employee": func(a, b domain.IncidentReport) int {
				return listview.CompareStrings(a.EmployeeName, b.EmployeeName)
			},
		},
	}
}
