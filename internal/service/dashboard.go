package service

import (
	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/geo"
	"github.com/pkordes/euro-itinerary/internal/summary"
)

// Dashboard is the set of read-only views shown on the dashboard step.
type Dashboard struct {
	Window    domain.TripWindow
	Markers   []summary.Marker
	Path      []geo.Point
	Stats     []summary.CountryDays
	Today     *domain.DayPlan
	Countdown *int
	Active    bool
}

// Dashboard computes the dashboard views for the current trip at the
// service clock's current time.
func (s *PlannerService) Dashboard() Dashboard {
	s.mu.Lock()
	trip := s.trip
	s.mu.Unlock()

	now := s.now()
	markers := summary.Route(trip.Countries, s.places)
	d := Dashboard{
		Window:  trip.Window(),
		Markers: markers,
		Path:    summary.Path(markers),
		Stats:   summary.CountryStats(trip.DailyPlans),
		Active:  summary.IsActive(trip.Window(), now),
	}
	if p, ok := summary.TodayPlan(trip.DailyPlans, now); ok {
		d.Today = &p
	}
	if n, ok := summary.Countdown(trip.ArrivalDate, now); ok {
		d.Countdown = &n
	}
	return d
}

// DayPage is one page of the itinerary table.
type DayPage struct {
	Days    []domain.DayPlan
	Total   int
	Options summary.FilterOptions
}

// Days returns the plans matching filter, paginated, along with the filter
// options for the whole itinerary. City options are narrowed to the
// filtered country.
func (s *PlannerService) Days(filter summary.DayFilter, page domain.PaginationParams) DayPage {
	s.mu.Lock()
	plans := s.trip.DailyPlans
	s.mu.Unlock()

	matched := summary.FilterDays(plans, filter)
	lo, hi := page.Bounds(len(matched))
	return DayPage{
		Days:    matched[lo:hi],
		Total:   len(matched),
		Options: summary.Options(plans, filter.Country),
	}
}

// Places returns the country and city catalog used by the planner.
func (s *PlannerService) Places() *geo.Catalog {
	return s.places
}
