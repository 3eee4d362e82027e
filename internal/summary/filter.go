package summary

import (
	funk "github.com/thoas/go-funk"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// DayFilter narrows the itinerary table. Empty fields match everything.
type DayFilter struct {
	Date    string
	Country string
	City    string
}

// Empty reports whether the filter matches every day.
func (f DayFilter) Empty() bool {
	return f.Date == "" && f.Country == "" && f.City == ""
}

// Match reports whether p satisfies every non-empty field of f.
func (f DayFilter) Match(p domain.DayPlan) bool {
	city, country := p.Place()
	if f.Date != "" && p.Date != f.Date {
		return false
	}
	if f.Country != "" && country != f.Country {
		return false
	}
	if f.City != "" && city != f.City {
		return false
	}
	return true
}

// FilterDays returns the plans matching f, in itinerary order.
func FilterDays(plans []domain.DayPlan, f DayFilter) []domain.DayPlan {
	out := make([]domain.DayPlan, 0, len(plans))
	for _, p := range plans {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterOptions lists the values the table filters can take.
type FilterOptions struct {
	Countries []string `json:"countries"`
	Cities    []string `json:"cities"`
}

// Options returns the distinct countries of the itinerary and the distinct
// cities, restricted to country when it is non-empty. Unassigned days are
// left out. Order is first appearance.
func Options(plans []domain.DayPlan, country string) FilterOptions {
	countries := make([]string, 0, len(plans))
	cities := make([]string, 0, len(plans))
	for _, p := range plans {
		ci, co := p.Place()
		if co == "" {
			continue
		}
		countries = append(countries, co)
		if ci != "" && (country == "" || co == country) {
			cities = append(cities, ci)
		}
	}
	return FilterOptions{
		Countries: funk.UniqString(countries),
		Cities:    funk.UniqString(cities),
	}
}
