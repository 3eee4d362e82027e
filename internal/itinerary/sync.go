package itinerary

import (
	"time"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// MaxTripDays bounds the number of days Synchronize will generate.
// Wider windows are treated like invalid ones.
const MaxTripDays = 3660

// Synchronize derives the daily plans for window from the visit list.
//
// Every day from arrival to departure (inclusive) gets one plan, in ascending
// order. A day's label comes from the last visit in declaration order whose
// [From, To] range contains it, or domain.UnassignedLabel when none does.
// Activities are carried over from the entry of previous with the same date;
// the slice is shared, not copied.
//
// ok is false when the window is unset, malformed, reversed or wider than
// MaxTripDays. The caller must then leave its current plans untouched.
func Synchronize(window domain.TripWindow, visits []domain.CountryVisit, previous []domain.DayPlan) (plans []domain.DayPlan, ok bool) {
	start, end, ok := ParseWindow(window.ArrivalDate, window.DepartureDate)
	if !ok {
		return nil, false
	}
	n := daysBetween(start, end) + 1
	if n > MaxTripDays {
		return nil, false
	}

	ranges := parseVisits(visits)
	carried := activitiesByDate(previous)

	plans = make([]domain.DayPlan, 0, n)
	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, i)
		date := FormatDate(day)

		activities, found := carried[date]
		if !found || activities == nil {
			activities = []domain.Activity{}
		}

		plans = append(plans, domain.DayPlan{
			Date:       date,
			Location:   locate(day, ranges),
			Activities: activities,
		})
	}
	return plans, true
}

// visitRange is a visit with its bounds parsed once per synchronization.
type visitRange struct {
	label    string
	from, to time.Time
	valid    bool
}

func parseVisits(visits []domain.CountryVisit) []visitRange {
	out := make([]visitRange, len(visits))
	for i, v := range visits {
		from, okFrom := ParseDate(v.From)
		to, okTo := ParseDate(v.To)
		out[i] = visitRange{label: v.Label(), from: from, to: to, valid: okFrom && okTo}
	}
	return out
}

// locate scans ranges from the most recently declared backwards, so later
// visits win on overlapping days.
func locate(day time.Time, ranges []visitRange) string {
	for i := len(ranges) - 1; i >= 0; i-- {
		r := ranges[i]
		if r.valid && !day.Before(r.from) && !day.After(r.to) {
			return r.label
		}
	}
	return domain.UnassignedLabel
}

// activitiesByDate indexes previous plans by date; the first plan for a date wins.
func activitiesByDate(previous []domain.DayPlan) map[string][]domain.Activity {
	m := make(map[string][]domain.Activity, len(previous))
	for _, p := range previous {
		if _, dup := m[p.Date]; !dup {
			m[p.Date] = p.Activities
		}
	}
	return m
}
