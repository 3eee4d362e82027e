package domain

// Stage is the position of the planner flow.
type Stage string

const (
	StageSetup     Stage = "setup"
	StageCountries Stage = "countries"
	StageDashboard Stage = "dashboard"
	StageTable     Stage = "table"
)

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	switch s {
	case StageSetup, StageCountries, StageDashboard, StageTable:
		return true
	}
	return false
}

// CanMoveTo reports whether the flow may go from s to next by navigation.
// Returning to setup only happens through a reset, and setup → countries
// additionally requires a valid window, which the caller checks.
func (s Stage) CanMoveTo(next Stage) bool {
	if s == next {
		return true
	}
	switch s {
	case StageSetup:
		return next == StageCountries
	case StageCountries:
		return next == StageDashboard
	case StageDashboard:
		return next == StageCountries || next == StageTable
	case StageTable:
		return next == StageDashboard
	}
	return false
}

// Theme is the UI colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme applies when no preference has been saved.
const DefaultTheme = ThemeDark

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
