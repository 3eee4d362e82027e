// Package handler implements the HTTP API for the Euro Itinerary planner.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, countries.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/geo"
	"github.com/pkordes/euro-itinerary/internal/service"
	"github.com/pkordes/euro-itinerary/internal/summary"
	"github.com/pkordes/euro-itinerary/spec"
)

// PlannerServicer defines the planner operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type PlannerServicer interface {
	State() service.State
	SetWindow(ctx context.Context, arrival, departure string) (service.State, error)
	Generate(ctx context.Context) (service.State, error)
	Navigate(ctx context.Context, stage domain.Stage) (service.State, error)
	Reset(ctx context.Context) error

	AddCountry(ctx context.Context, draft domain.CountryDraft) (domain.CountryVisit, error)
	UpdateCountry(ctx context.Context, id string, patch domain.CountryPatch) (domain.CountryVisit, error)
	RemoveCountry(ctx context.Context, id string) error

	AddActivity(ctx context.Context, date string, draft domain.ActivityDraft) (domain.Activity, error)
	UpdateActivity(ctx context.Context, date, id string, patch domain.ActivityPatch) (domain.Activity, error)
	RemoveActivity(ctx context.Context, date, id string) error
	AttachFiles(ctx context.Context, date, activityID string, uploads []domain.Upload) ([]domain.Attachment, error)
	RemoveAttachment(ctx context.Context, date, activityID, attachmentID string) error

	Theme() domain.Theme
	SetTheme(ctx context.Context, theme domain.Theme) (domain.Theme, error)
	ToggleTheme(ctx context.Context) (domain.Theme, error)

	Dashboard() service.Dashboard
	Days(filter summary.DayFilter, page domain.PaginationParams) service.DayPage
	Places() *geo.Catalog
}

// ExportServicer defines the flat export operation.
type ExportServicer interface {
	Export() []domain.ExportRow
}

// Server holds the handler dependencies. Wire it in main.go via Routes.
type Server struct {
	planner PlannerServicer
	export  ExportServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default.
func NewServer(planner PlannerServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{planner: planner, export: export, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns the chi router for the whole API surface.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/trip", func(r chi.Router) {
		r.Get("/", s.GetTrip)
		r.Delete("/", s.ResetTrip)
		r.Put("/window", s.PutWindow)
		r.Put("/stage", s.PutStage)
		r.Post("/generate", s.GenerateItinerary)
		r.Get("/dashboard", s.GetDashboard)

		r.Post("/countries", s.AddCountry)
		r.Patch("/countries/{countryId}", s.UpdateCountry)
		r.Delete("/countries/{countryId}", s.RemoveCountry)

		r.Get("/days", s.ListDays)
		r.Route("/days/{date}/activities", func(r chi.Router) {
			r.Post("/", s.AddActivity)
			r.Patch("/{activityId}", s.UpdateActivity)
			r.Delete("/{activityId}", s.RemoveActivity)
			r.Post("/{activityId}/attachments", s.AttachFiles)
			r.Delete("/{activityId}/attachments/{attachmentId}", s.RemoveAttachment)
		})
	})

	r.Get("/geo/countries", s.ListGeoCountries)

	r.Get("/theme", s.GetTheme)
	r.Put("/theme", s.PutTheme)
	r.Post("/theme/toggle", s.ToggleTheme)

	r.Get("/export", s.GetExport)

	return r
}

// serveOpenAPI handles GET /openapi.yaml.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
