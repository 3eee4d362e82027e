package service

import (
	"context"
	"fmt"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/repo"
)

// Theme returns the current theme.
func (s *PlannerService) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme saves and applies theme.
// Returns domain.ErrValidation for an unknown theme.
func (s *PlannerService) SetTheme(ctx context.Context, theme domain.Theme) (domain.Theme, error) {
	if !theme.Valid() {
		return "", fmt.Errorf("%w: unknown theme %q", domain.ErrValidation, theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveTheme(ctx, "SetTheme", theme); err != nil {
		return "", err
	}
	return s.theme, nil
}

// ToggleTheme switches between light and dark.
func (s *PlannerService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveTheme(ctx, "ToggleTheme", s.theme.Toggle()); err != nil {
		return "", err
	}
	return s.theme, nil
}

// saveTheme persists theme and applies it. Callers must hold s.mu.
func (s *PlannerService) saveTheme(ctx context.Context, op string, theme domain.Theme) error {
	if err := s.repo.Put(ctx, repo.KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("service.PlannerService.%s: %w", op, err)
	}
	s.theme = theme
	return nil
}
