package handler

import (
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/geo"
	"github.com/pkordes/euro-itinerary/internal/itinerary"
	"github.com/pkordes/euro-itinerary/internal/service"
	"github.com/pkordes/euro-itinerary/internal/summary"
)

// Trip is the JSON representation of the planner session.
type Trip struct {
	ArrivalDate   string         `json:"arrival_date"`
	DepartureDate string         `json:"departure_date"`
	Stage         domain.Stage   `json:"stage"`
	Theme         domain.Theme   `json:"theme"`
	Countries     []CountryVisit `json:"countries"`
	DailyPlans    []DayPlan      `json:"daily_plans"`
}

// DayPlan is the JSON representation of one itinerary day.
type DayPlan struct {
	Date       string     `json:"date"`
	Location   string     `json:"location"`
	City       string     `json:"city,omitempty"`
	Country    string     `json:"country,omitempty"`
	Activities []Activity `json:"activities"`
}

// WindowRequest is the body of PUT /trip/window.
type WindowRequest struct {
	ArrivalDate   string `json:"arrival_date"`
	DepartureDate string `json:"departure_date"`
}

// StageRequest is the body of PUT /trip/stage.
type StageRequest struct {
	Stage domain.Stage `json:"stage"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// DayList is the body of GET /trip/days.
type DayList struct {
	Data       []DayPlan             `json:"data"`
	Pagination Pagination            `json:"pagination"`
	Options    summary.FilterOptions `json:"options"`
}

// DashboardResponse is the body of GET /trip/dashboard.
type DashboardResponse struct {
	ArrivalDate   *openapi_types.Date   `json:"arrival_date"`
	DepartureDate *openapi_types.Date   `json:"departure_date"`
	Markers       []summary.Marker      `json:"markers"`
	Path          []geo.Point           `json:"path"`
	Stats         []summary.CountryDays `json:"stats"`
	Today         *DayPlan              `json:"today"`
	CountdownDays *int                  `json:"countdown_days"`
	Active        bool                  `json:"active"`
}

// GetTrip handles GET /trip.
func (s *Server) GetTrip(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, stateToResponse(s.planner.State()))
}

// ResetTrip handles DELETE /trip.
// Clears every saved key and returns the flow to the setup step.
func (s *Server) ResetTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.planner.Reset(r.Context()); err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PutWindow handles PUT /trip/window.
func (s *Server) PutWindow(w http.ResponseWriter, r *http.Request) {
	var body WindowRequest
	if !decodeBody(w, r, &body) {
		return
	}

	st, err := s.planner.SetWindow(r.Context(), body.ArrivalDate, body.DepartureDate)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, stateToResponse(st))
}

// PutStage handles PUT /trip/stage.
func (s *Server) PutStage(w http.ResponseWriter, r *http.Request) {
	var body StageRequest
	if !decodeBody(w, r, &body) {
		return
	}

	st, err := s.planner.Navigate(r.Context(), body.Stage)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, stateToResponse(st))
}

// GenerateItinerary handles POST /trip/generate.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	st, err := s.planner.Generate(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, stateToResponse(st))
}

// GetDashboard handles GET /trip/dashboard.
func (s *Server) GetDashboard(w http.ResponseWriter, _ *http.Request) {
	d := s.planner.Dashboard()
	resp := DashboardResponse{
		ArrivalDate:   optionalDate(d.Window.ArrivalDate),
		DepartureDate: optionalDate(d.Window.DepartureDate),
		Markers:       d.Markers,
		Path:          d.Path,
		Stats:         d.Stats,
		CountdownDays: d.Countdown,
		Active:        d.Active,
	}
	if d.Today != nil {
		today := dayPlanToResponse(*d.Today)
		resp.Today = &today
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListDays handles GET /trip/days.
// Supports ?date=, ?country= and ?city= filters and ?page= / ?limit=
// pagination (defaults: page=1, limit=20, max=100).
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := optionalInt(q.Get("page"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("page must be an integer"))
		return
	}
	limit, err := optionalInt(q.Get("limit"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("limit must be an integer"))
		return
	}

	params := domain.NewPaginationParams(page, limit)
	result := s.planner.Days(summary.DayFilter{
		Date:    q.Get("date"),
		Country: q.Get("country"),
		City:    q.Get("city"),
	}, params)

	data := make([]DayPlan, len(result.Days))
	for i, p := range result.Days {
		data[i] = dayPlanToResponse(p)
	}
	writeJSON(w, http.StatusOK, DayList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: result.Total,
		},
		Options: result.Options,
	})
}

// --- mapping helpers --------------------------------------------------------

// stateToResponse converts a service.State into the Trip response type.
func stateToResponse(st service.State) Trip {
	resp := Trip{
		ArrivalDate:   st.Trip.ArrivalDate,
		DepartureDate: st.Trip.DepartureDate,
		Stage:         st.Stage,
		Theme:         st.Theme,
		Countries:     make([]CountryVisit, len(st.Trip.Countries)),
		DailyPlans:    make([]DayPlan, len(st.Trip.DailyPlans)),
	}
	for i, c := range st.Trip.Countries {
		resp.Countries[i] = countryToResponse(c)
	}
	for i, p := range st.Trip.DailyPlans {
		resp.DailyPlans[i] = dayPlanToResponse(p)
	}
	return resp
}

// dayPlanToResponse converts a domain.DayPlan, splitting its label into
// city and country for assigned days.
func dayPlanToResponse(p domain.DayPlan) DayPlan {
	city, country := p.Place()
	resp := DayPlan{
		Date:       p.Date,
		Location:   p.Location,
		City:       city,
		Country:    country,
		Activities: make([]Activity, len(p.Activities)),
	}
	for i, a := range p.Activities {
		resp.Activities[i] = activityToResponse(a)
	}
	return resp
}

// optionalDate converts a stored date string into an openapi_types.Date.
// Unset or malformed dates become nil (null in JSON).
func optionalDate(s string) *openapi_types.Date {
	t, ok := itinerary.ParseDate(s)
	if !ok {
		return nil
	}
	return &openapi_types.Date{Time: t}
}

// optionalInt parses an optional integer query parameter.
func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
