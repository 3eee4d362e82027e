package handler

import (
	"net/http"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// ThemeBody is the request and response body of the theme endpoints.
type ThemeBody struct {
	Theme domain.Theme `json:"theme"`
}

// GetTheme handles GET /theme.
func (s *Server) GetTheme(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ThemeBody{Theme: s.planner.Theme()})
}

// PutTheme handles PUT /theme.
func (s *Server) PutTheme(w http.ResponseWriter, r *http.Request) {
	var body ThemeBody
	if !decodeBody(w, r, &body) {
		return
	}

	theme, err := s.planner.SetTheme(r.Context(), body.Theme)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ThemeBody{Theme: theme})
}

// ToggleTheme handles POST /theme/toggle.
func (s *Server) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.planner.ToggleTheme(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ThemeBody{Theme: theme})
}
