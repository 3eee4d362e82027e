// Package summary derives the read-only views shown on the dashboard: the
// map route, days spent per country, today's plan and the trip countdown.
// Nothing here feeds back into the trip data.
package summary

import (
	"sort"
	"time"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/geo"
	"github.com/pkordes/euro-itinerary/internal/itinerary"
)

// Marker is a labelled map position for one country visit.
type Marker struct {
	VisitID string    `json:"visit_id"`
	Label   string    `json:"label"`
	Point   geo.Point `json:"point"`
}

// Route returns one marker per visit, in declaration order, skipping visits
// whose city has no known coordinates. The path on the map joins the markers
// in this same order.
func Route(visits []domain.CountryVisit, places *geo.Catalog) []Marker {
	markers := make([]Marker, 0, len(visits))
	for _, v := range visits {
		p, ok := places.Coordinates(v.Name, v.City)
		if !ok {
			continue
		}
		markers = append(markers, Marker{VisitID: v.ID, Label: v.Label(), Point: p})
	}
	return markers
}

// Path returns the marker positions in route order.
func Path(markers []Marker) []geo.Point {
	path := make([]geo.Point, len(markers))
	for i, m := range markers {
		path[i] = m.Point
	}
	return path
}

// CountryDays is one bar of the days-per-country chart.
type CountryDays struct {
	Country string `json:"country"`
	Days    int    `json:"days"`
}

// CountryStats counts assigned days per country, most days first.
// Countries with equal counts keep the order in which they first appear
// in the itinerary.
func CountryStats(plans []domain.DayPlan) []CountryDays {
	index := make(map[string]int)
	var stats []CountryDays
	for _, p := range plans {
		_, country := p.Place()
		if country == "" {
			continue
		}
		i, seen := index[country]
		if !seen {
			i = len(stats)
			index[country] = i
			stats = append(stats, CountryDays{Country: country})
		}
		stats[i].Days++
	}
	if stats == nil {
		return []CountryDays{}
	}
	sort.SliceStable(stats, func(a, b int) bool { return stats[a].Days > stats[b].Days })
	return stats
}

// TodayPlan returns the plan for the calendar day of now.
func TodayPlan(plans []domain.DayPlan, now time.Time) (domain.DayPlan, bool) {
	today := itinerary.FormatDate(itinerary.StartOfDay(now))
	for _, p := range plans {
		if p.Date == today {
			return p, true
		}
	}
	return domain.DayPlan{}, false
}

// Countdown returns the number of days until arrival. ok is false when the
// arrival date is unset or not in the future.
func Countdown(arrival string, now time.Time) (days int, ok bool) {
	start, valid := itinerary.ParseDate(arrival)
	if !valid {
		return 0, false
	}
	diff := int(start.Sub(itinerary.StartOfDay(now)).Hours() / 24)
	if diff <= 0 {
		return 0, false
	}
	return diff, true
}

// IsActive reports whether now falls within the trip window, counting the
// whole departure day.
func IsActive(w domain.TripWindow, now time.Time) bool {
	start, end, ok := itinerary.ParseWindow(w.ArrivalDate, w.DepartureDate)
	if !ok {
		return false
	}
	today := itinerary.StartOfDay(now)
	return !today.Before(start) && !today.After(end)
}
