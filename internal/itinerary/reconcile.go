package itinerary

import (
	"github.com/pkordes/euro-itinerary/internal/domain"
)

// DayKey is one entry of a plan list's content signature.
type DayKey struct {
	Date     string
	Location string
}

// Signature returns the (date, label) sequence of plans.
// Activities are left out: synchronization never changes them.
func Signature(plans []domain.DayPlan) []DayKey {
	keys := make([]DayKey, len(plans))
	for i, p := range plans {
		keys[i] = DayKey{Date: p.Date, Location: p.Location}
	}
	return keys
}

// SameLayout reports whether a and b have equal signatures: the same length
// and the same date and label at every index.
func SameLayout(a, b []domain.DayPlan) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Date != b[i].Date || a[i].Location != b[i].Location {
			return false
		}
	}
	return true
}

// Reconcile runs the edit pipeline: widen or narrow the window to the
// visits, then re-derive the plans, committing them only when their
// signature differs from the current ones. changed reports whether the
// returned trip differs from the input in window or plans.
//
// Calling Reconcile on its own output reports changed == false.
func Reconcile(trip domain.TripData) (out domain.TripData, changed bool) {
	out = trip
	window := ExpandWindow(trip.Window(), trip.Countries)
	if window != trip.Window() {
		out = out.WithWindow(window)
		changed = true
	}

	plans, ok := Synchronize(window, out.Countries, out.DailyPlans)
	if !ok {
		return out, changed
	}
	if SameLayout(out.DailyPlans, plans) {
		return out, changed
	}
	out.DailyPlans = plans
	return out, true
}

// Generate runs the same pipeline as Reconcile but commits the synchronized
// plans unconditionally. It backs the explicit "generate itinerary" action.
func Generate(trip domain.TripData) domain.TripData {
	out := trip.WithWindow(ExpandWindow(trip.Window(), trip.Countries))
	if plans, ok := Synchronize(out.Window(), out.Countries, out.DailyPlans); ok {
		out.DailyPlans = plans
	}
	return out
}
