// Package service contains the business logic for the Euro Itinerary planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/geo"
	"github.com/pkordes/euro-itinerary/internal/itinerary"
	"github.com/pkordes/euro-itinerary/internal/repo"
)

// State is a snapshot of the planner session.
type State struct {
	Trip  domain.TripData
	Stage domain.Stage
	Theme domain.Theme
}

// PlannerService owns the single trip being planned and implements every
// user action on it.
//
// Operations are serialised by a mutex, so there is exactly one writer at a
// time. Each operation builds a new TripData (collections are cloned before
// they are modified) and swaps it in whole, which keeps earlier snapshots
// returned by State immutable.
type PlannerService struct {
	repo   repo.StateRepo
	places *geo.Catalog
	log    *slog.Logger
	now    func() time.Time
	newID  func() string

	mu    sync.Mutex
	trip  domain.TripData
	stage domain.Stage
	theme domain.Theme
}

// Option customises a PlannerService.
type Option func(*PlannerService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *PlannerService) { s.now = now }
}

// WithIDGenerator replaces the random identifier source, for tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *PlannerService) { s.newID = newID }
}

// NewPlannerService constructs a PlannerService with an empty trip.
// Call Load to restore the saved session.
func NewPlannerService(r repo.StateRepo, places *geo.Catalog, log *slog.Logger, opts ...Option) *PlannerService {
	s := &PlannerService{
		repo:   r,
		places: places,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewString,
		trip:   domain.NewTripData(),
		stage:  domain.StageSetup,
		theme:  domain.DefaultTheme,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the saved trip and theme.
// A saved trip that cannot be decoded is logged and replaced by an empty one.
// The flow resumes at the dashboard when the saved trip has both dates.
func (s *PlannerService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := domain.NewTripData()
	raw, err := s.repo.Get(ctx, repo.KeyTrip)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return fmt.Errorf("service.PlannerService.Load: %w", err)
	default:
		var saved domain.TripData
		if err := json.Unmarshal([]byte(raw), &saved); err != nil {
			s.log.WarnContext(ctx, "discarding unreadable saved trip", "error", err)
		} else {
			trip = saved.Normalize()
		}
	}

	theme := domain.DefaultTheme
	rawTheme, err := s.repo.Get(ctx, repo.KeyTheme)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return fmt.Errorf("service.PlannerService.Load: %w", err)
	case domain.Theme(rawTheme).Valid():
		theme = domain.Theme(rawTheme)
	default:
		s.log.WarnContext(ctx, "ignoring unknown saved theme", "theme", rawTheme)
	}

	stage := domain.StageSetup
	if trip.ArrivalDate != "" && trip.DepartureDate != "" {
		stage = domain.StageDashboard
	}
	if err := s.commit(ctx, "Load", trip, true); err != nil {
		return err
	}
	s.theme = theme
	s.stage = stage
	s.log.InfoContext(ctx, "planner state loaded",
		"stage", s.stage,
		"countries", len(s.trip.Countries),
		"days", len(s.trip.DailyPlans),
	)
	return nil
}

// State returns a snapshot of the session.
func (s *PlannerService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *PlannerService) snapshot() State {
	return State{Trip: s.trip, Stage: s.stage, Theme: s.theme}
}

// SetWindow records the arrival and departure dates entered in the setup
// step and advances the flow from setup to countries.
// Both dates are required and arrival must not be after departure.
func (s *PlannerService) SetWindow(ctx context.Context, arrival, departure string) (State, error) {
	if err := validateWindow(arrival, departure); err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.trip.WithWindow(domain.TripWindow{ArrivalDate: arrival, DepartureDate: departure})
	if err := s.commit(ctx, "SetWindow", next, true); err != nil {
		return State{}, err
	}
	if s.stage == domain.StageSetup {
		s.stage = domain.StageCountries
	}
	return s.snapshot(), nil
}

// Generate materializes the itinerary from the declared visits and moves the
// flow to the dashboard. It is only offered while editing visits, so it
// returns domain.ErrValidation from the setup and table steps.
func (s *PlannerService) Generate(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != domain.StageCountries && s.stage != domain.StageDashboard {
		return State{}, fmt.Errorf("%w: cannot generate the itinerary from %s", domain.ErrValidation, s.stage)
	}

	if err := s.commit(ctx, "Generate", itinerary.Generate(s.trip), false); err != nil {
		return State{}, err
	}
	s.stage = domain.StageDashboard
	s.log.InfoContext(ctx, "itinerary generated",
		"arrival", s.trip.ArrivalDate,
		"departure", s.trip.DepartureDate,
		"days", len(s.trip.DailyPlans),
	)
	return s.snapshot(), nil
}

// Navigate moves the flow to stage.
// Returns domain.ErrValidation for unknown stages, disallowed transitions, and
// for entering the countries step without a valid trip window.
func (s *PlannerService) Navigate(ctx context.Context, stage domain.Stage) (State, error) {
	if !stage.Valid() {
		return State{}, fmt.Errorf("%w: unknown stage %q", domain.ErrValidation, stage)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stage.CanMoveTo(stage) {
		return State{}, fmt.Errorf("%w: cannot move from %s to %s", domain.ErrValidation, s.stage, stage)
	}
	if s.stage == domain.StageSetup && stage == domain.StageCountries && !itinerary.ValidWindow(s.trip.Window()) {
		return State{}, fmt.Errorf("%w: arrival and departure dates are required", domain.ErrValidation)
	}
	s.stage = stage
	return s.snapshot(), nil
}

// Reset clears every saved key and starts over with an empty trip.
func (s *PlannerService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("service.PlannerService.Reset: %w", err)
	}
	s.trip = domain.NewTripData()
	s.stage = domain.StageSetup
	s.theme = domain.DefaultTheme
	s.log.InfoContext(ctx, "planner reset")
	return nil
}

// commit optionally reconciles next, saves it and makes it current.
// The trip is only saved once it has an arrival date. If saving fails the
// current trip is left unchanged. Callers must hold s.mu.
func (s *PlannerService) commit(ctx context.Context, op string, next domain.TripData, reconcile bool) error {
	if reconcile {
		next, _ = itinerary.Reconcile(next)
	}
	if next.ArrivalDate != "" {
		blob, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("service.PlannerService.%s: encode trip: %w", op, err)
		}
		if err := s.repo.Put(ctx, repo.KeyTrip, string(blob)); err != nil {
			return fmt.Errorf("service.PlannerService.%s: %w", op, err)
		}
	}
	s.trip = next
	return nil
}

// validateWindow enforces the setup step rules.
func validateWindow(arrival, departure string) error {
	if arrival == "" {
		return fmt.Errorf("%w: arrival_date is required", domain.ErrValidation)
	}
	if departure == "" {
		return fmt.Errorf("%w: departure_date is required", domain.ErrValidation)
	}
	if _, ok := itinerary.ParseDate(arrival); !ok {
		return fmt.Errorf("%w: arrival_date must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	if _, ok := itinerary.ParseDate(departure); !ok {
		return fmt.Errorf("%w: departure_date must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	n, ok := itinerary.WindowDays(arrival, departure)
	if !ok {
		return fmt.Errorf("%w: departure_date must not be before arrival_date", domain.ErrValidation)
	}
	if n > itinerary.MaxTripDays {
		return fmt.Errorf("%w: trip must not span more than %d days", domain.ErrValidation, itinerary.MaxTripDays)
	}
	return nil
}
