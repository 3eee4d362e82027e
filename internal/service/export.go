package service

import (
	"github.com/pkordes/euro-itinerary/internal/domain"
)

// TripSource supplies the trip to export. *PlannerService satisfies it.
type TripSource interface {
	State() State
}

// ExportService flattens the itinerary into rows for spreadsheet export.
type ExportService struct {
	source TripSource
}

// NewExportService constructs an ExportService reading from source.
func NewExportService(source TripSource) *ExportService {
	return &ExportService{source: source}
}

// Export returns one ExportRow per activity across all days, in itinerary order.
// Days with no activities contribute one row with empty activity fields.
// The result is never nil.
func (s *ExportService) Export() []domain.ExportRow {
	plans := s.source.State().Trip.DailyPlans
	rows := make([]domain.ExportRow, 0, len(plans))
	for _, p := range plans {
		city, country := p.Place()
		day := domain.ExportRow{Date: p.Date, City: city, Country: country}
		if len(p.Activities) == 0 {
			day.Attachments = []string{}
			rows = append(rows, day)
			continue
		}
		for _, a := range p.Activities {
			row := day
			row.Time = a.Time
			row.Description = a.Description
			row.Attachments = make([]string, len(a.Attachments))
			for i, att := range a.Attachments {
				row.Attachments[i] = att.Name
			}
			rows = append(rows, row)
		}
	}
	return rows
}
