package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/itinerary"
)

// AddCountry appends a country visit and re-derives the itinerary.
//
// Fields left nil in draft get defaults: the first catalog country and its
// first city, a start on the day after the previous visit ends (or the trip
// arrival when there is no such visit), and an end on the trip departure.
// Returns domain.ErrValidation for a country or city the catalog does not list.
func (s *PlannerService) AddCountry(ctx context.Context, draft domain.CountryDraft) (domain.CountryVisit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := domain.CountryVisit{ID: s.newID()}

	if draft.Name != nil {
		v.Name = *draft.Name
	} else if first, ok := s.places.FirstCountry(); ok {
		v.Name = first
	}
	if err := s.validateCountry(v.Name); err != nil {
		return domain.CountryVisit{}, err
	}

	if draft.City != nil {
		v.City = *draft.City
	} else {
		v.City, _ = s.places.FirstCity(v.Name)
	}
	if err := s.validateCity(v.Name, v.City); err != nil {
		return domain.CountryVisit{}, err
	}

	v.From = nextStart(s.trip)
	if draft.From != nil {
		v.From = *draft.From
	}
	v.To = s.trip.DepartureDate
	if draft.To != nil {
		v.To = *draft.To
	}

	next := s.trip
	next.Countries = append(slices.Clip(s.trip.Countries), v)
	if err := s.commit(ctx, "AddCountry", next, true); err != nil {
		return domain.CountryVisit{}, err
	}
	return v, nil
}

// UpdateCountry applies patch to the visit with the given id and re-derives
// the itinerary. Changing the country resets the city to that country's
// first city unless the patch also names a city.
// Returns domain.ErrNotFound for an unknown id and domain.ErrValidation for a
// country or city the catalog does not list.
func (s *PlannerService) UpdateCountry(ctx context.Context, id string, patch domain.CountryPatch) (domain.CountryVisit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trip.CountryByID(id)
	if i < 0 {
		return domain.CountryVisit{}, fmt.Errorf("service.PlannerService.UpdateCountry: country %s: %w", id, domain.ErrNotFound)
	}
	v := s.trip.Countries[i]

	if patch.Name != nil && *patch.Name != v.Name {
		if err := s.validateCountry(*patch.Name); err != nil {
			return domain.CountryVisit{}, err
		}
		v.Name = *patch.Name
		v.City, _ = s.places.FirstCity(v.Name)
	}
	if patch.City != nil {
		v.City = *patch.City
	}
	if err := s.validateCity(v.Name, v.City); err != nil {
		return domain.CountryVisit{}, err
	}
	if patch.From != nil {
		v.From = *patch.From
	}
	if patch.To != nil {
		v.To = *patch.To
	}

	next := s.trip
	next.Countries = slices.Clone(s.trip.Countries)
	next.Countries[i] = v
	if err := s.commit(ctx, "UpdateCountry", next, true); err != nil {
		return domain.CountryVisit{}, err
	}
	return v, nil
}

// RemoveCountry deletes the visit with the given id and re-derives the itinerary.
// Returns domain.ErrNotFound for an unknown id.
func (s *PlannerService) RemoveCountry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trip.CountryByID(id)
	if i < 0 {
		return fmt.Errorf("service.PlannerService.RemoveCountry: country %s: %w", id, domain.ErrNotFound)
	}

	next := s.trip
	next.Countries = slices.Delete(slices.Clone(s.trip.Countries), i, i+1)
	return s.commit(ctx, "RemoveCountry", next, true)
}

// validateCountry checks that country is listed by the catalog.
func (s *PlannerService) validateCountry(country string) error {
	if !s.places.HasCountry(country) {
		return fmt.Errorf("%w: unknown country %q (want one of %s)",
			domain.ErrValidation, country, strings.Join(s.places.CountryNames(), ", "))
	}
	return nil
}

// validateCity checks that city is one of country's catalog cities.
func (s *PlannerService) validateCity(country, city string) error {
	if _, ok := s.places.Coordinates(country, city); !ok {
		return fmt.Errorf("%w: unknown city %q for %s", domain.ErrValidation, city, country)
	}
	return nil
}

// nextStart suggests the start date of a new visit: the day after the last
// declared visit ends, or the trip arrival.
func nextStart(trip domain.TripData) string {
	if n := len(trip.Countries); n > 0 {
		if lastTo, ok := itinerary.ParseDate(trip.Countries[n-1].To); ok {
			return itinerary.FormatDate(lastTo.AddDate(0, 0, 1))
		}
	}
	return trip.ArrivalDate
}
