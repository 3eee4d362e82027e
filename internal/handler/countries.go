package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// CountryVisit is the JSON representation of a declared visit.
type CountryVisit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	From string `json:"from"`
	To   string `json:"to"`
}

// CountryRequest is the body of POST /trip/countries and
// PATCH /trip/countries/{countryId}. Omitted fields are defaulted on create
// and left unchanged on update.
type CountryRequest struct {
	Name *string `json:"name"`
	City *string `json:"city"`
	From *string `json:"from"`
	To   *string `json:"to"`
}

// AddCountry handles POST /trip/countries.
func (s *Server) AddCountry(w http.ResponseWriter, r *http.Request) {
	var body CountryRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &body) {
		return
	}

	created, err := s.planner.AddCountry(r.Context(), domain.CountryDraft{
		Name: body.Name,
		City: body.City,
		From: body.From,
		To:   body.To,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, countryToResponse(created))
}

// UpdateCountry handles PATCH /trip/countries/{countryId}.
func (s *Server) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	var body CountryRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.planner.UpdateCountry(r.Context(), chi.URLParam(r, "countryId"), domain.CountryPatch{
		Name: body.Name,
		City: body.City,
		From: body.From,
		To:   body.To,
	})
	if err != nil {
		s.writeServiceError(w, r, err, "country not found")
		return
	}
	writeJSON(w, http.StatusOK, countryToResponse(updated))
}

// RemoveCountry handles DELETE /trip/countries/{countryId}.
func (s *Server) RemoveCountry(w http.ResponseWriter, r *http.Request) {
	if err := s.planner.RemoveCountry(r.Context(), chi.URLParam(r, "countryId")); err != nil {
		s.writeServiceError(w, r, err, "country not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListGeoCountries handles GET /geo/countries.
// Returns the selectable countries and their cities in display order.
func (s *Server) ListGeoCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.Places().Countries())
}

// countryToResponse converts a domain.CountryVisit into its JSON type.
func countryToResponse(c domain.CountryVisit) CountryVisit {
	return CountryVisit{ID: c.ID, Name: c.Name, City: c.City, From: c.From, To: c.To}
}
