// Package domain contains the core data types for the Euro Itinerary planner.
// This package has zero external dependencies and is imported by every other
// internal package (itinerary, summary, repo, service, handler).
package domain

// TripData is the root aggregate: the trip window, the declared country visits
// and the generated day-by-day plan. It is the single persisted object.
//
// The JSON field names match the blob the browser client has always written,
// so previously saved trips stay readable.
type TripData struct {
	ArrivalDate   string         `json:"arrivalDate"`
	DepartureDate string         `json:"departureDate"`
	Countries     []CountryVisit `json:"countries"`
	DailyPlans    []DayPlan      `json:"dailyPlans"`
}

// TripWindow is the inclusive calendar-date range of the trip.
// Dates are "2006-01-02" strings; either may be empty or malformed, in which
// case the window is considered unset.
type TripWindow struct {
	ArrivalDate   string
	DepartureDate string
}

// NewTripData returns an empty trip with non-nil collections.
func NewTripData() TripData {
	return TripData{
		Countries:  []CountryVisit{},
		DailyPlans: []DayPlan{},
	}
}

// Window returns the trip's current date range.
func (t TripData) Window() TripWindow {
	return TripWindow{ArrivalDate: t.ArrivalDate, DepartureDate: t.DepartureDate}
}

// WithWindow returns a copy of t with its date range replaced.
func (t TripData) WithWindow(w TripWindow) TripData {
	t.ArrivalDate = w.ArrivalDate
	t.DepartureDate = w.DepartureDate
	return t
}

// Normalize replaces nil collections with empty ones so JSON output never
// contains null arrays. Blobs written by older clients omit attachments.
func (t TripData) Normalize() TripData {
	if t.Countries == nil {
		t.Countries = []CountryVisit{}
	}
	if t.DailyPlans == nil {
		t.DailyPlans = []DayPlan{}
	}
	return t
}

// PlanByDate returns the index of the day plan for date, or -1.
func (t TripData) PlanByDate(date string) int {
	for i, p := range t.DailyPlans {
		if p.Date == date {
			return i
		}
	}
	return -1
}

// CountryByID returns the index of the visit with the given id, or -1.
func (t TripData) CountryByID(id string) int {
	for i, c := range t.Countries {
		if c.ID == id {
			return i
		}
	}
	return -1
}
