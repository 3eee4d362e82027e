package service

import (
	"context"
	"fmt"
	"regexp"
	"slices"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// clockTime matches a 24-hour "HH:MM" time.
var clockTime = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// AddActivity appends an activity to the day plan for date. The time defaults
// to domain.DefaultActivityTime and the description to empty.
// Returns domain.ErrNotFound when the itinerary has no such day and
// domain.ErrValidation for a malformed time.
func (s *PlannerService) AddActivity(ctx context.Context, date string, draft domain.ActivityDraft) (domain.Activity, error) {
	a := domain.Activity{ID: s.newID(), Time: domain.DefaultActivityTime}
	if draft.Time != nil {
		a.Time = *draft.Time
	}
	if draft.Description != nil {
		a.Description = *draft.Description
	}
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.editDay(ctx, "AddActivity", date, func(acts []domain.Activity) ([]domain.Activity, error) {
		return append(slices.Clip(acts), a), nil
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

// UpdateActivity applies patch to an activity of the day plan for date.
// Returns domain.ErrNotFound when the day or activity does not exist and
// domain.ErrValidation for a malformed time.
func (s *PlannerService) UpdateActivity(ctx context.Context, date, id string, patch domain.ActivityPatch) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated domain.Activity
	err := s.editActivity(ctx, "UpdateActivity", date, id, func(a domain.Activity) (domain.Activity, error) {
		if patch.Time != nil {
			a.Time = *patch.Time
		}
		if patch.Description != nil {
			a.Description = *patch.Description
		}
		if err := validateActivity(a); err != nil {
			return domain.Activity{}, err
		}
		updated = a
		return a, nil
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return updated, nil
}

// RemoveActivity deletes an activity, and its attachments, from the day plan for date.
// Returns domain.ErrNotFound when the day or activity does not exist.
func (s *PlannerService) RemoveActivity(ctx context.Context, date, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editDay(ctx, "RemoveActivity", date, func(acts []domain.Activity) ([]domain.Activity, error) {
		i := activityIndex(acts, id)
		if i < 0 {
			return nil, fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
		}
		return slices.Delete(slices.Clone(acts), i, i+1), nil
	})
}

// editDay replaces the activities of the day plan for date with the result
// of edit, which must not modify its argument in place. Callers must hold s.mu.
func (s *PlannerService) editDay(ctx context.Context, op, date string, edit func([]domain.Activity) ([]domain.Activity, error)) error {
	i := s.trip.PlanByDate(date)
	if i < 0 {
		return fmt.Errorf("service.PlannerService.%s: day %s: %w", op, date, domain.ErrNotFound)
	}

	acts, err := edit(s.trip.DailyPlans[i].Activities)
	if err != nil {
		return fmt.Errorf("service.PlannerService.%s: %w", op, err)
	}

	next := s.trip
	next.DailyPlans = slices.Clone(s.trip.DailyPlans)
	next.DailyPlans[i].Activities = acts
	return s.commit(ctx, op, next, false)
}

// editActivity replaces one activity of the day plan for date with the
// result of edit. Callers must hold s.mu.
func (s *PlannerService) editActivity(ctx context.Context, op, date, id string, edit func(domain.Activity) (domain.Activity, error)) error {
	return s.editDay(ctx, op, date, func(acts []domain.Activity) ([]domain.Activity, error) {
		i := activityIndex(acts, id)
		if i < 0 {
			return nil, fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
		}
		a, err := edit(acts[i])
		if err != nil {
			return nil, err
		}
		out := slices.Clone(acts)
		out[i] = a
		return out, nil
	})
}

func activityIndex(acts []domain.Activity, id string) int {
	return slices.IndexFunc(acts, func(a domain.Activity) bool { return a.ID == id })
}

// validateActivity enforces the 24-hour time format.
func validateActivity(a domain.Activity) error {
	if !clockTime.MatchString(a.Time) {
		return fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)
	}
	return nil
}
