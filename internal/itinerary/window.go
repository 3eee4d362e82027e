package itinerary

import (
	"time"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// ValidWindow reports whether w has both dates set, parseable and ordered.
func ValidWindow(w domain.TripWindow) bool {
	_, _, ok := ParseWindow(w.ArrivalDate, w.DepartureDate)
	return ok
}

// DeriveWindow computes the range spanning every valid From/To bound of visits.
// Unparseable bounds are skipped individually. ok is false when no bound parses.
func DeriveWindow(visits []domain.CountryVisit) (domain.TripWindow, bool) {
	var lo, hi time.Time
	found := false
	for _, v := range visits {
		for _, raw := range [2]string{v.From, v.To} {
			d, valid := ParseDate(raw)
			if !valid {
				continue
			}
			if !found || d.Before(lo) {
				lo = d
			}
			if !found || d.After(hi) {
				hi = d
			}
			found = true
		}
	}
	if !found {
		return domain.TripWindow{}, false
	}
	return domain.TripWindow{ArrivalDate: FormatDate(lo), DepartureDate: FormatDate(hi)}, true
}

// ExpandWindow returns the window the itinerary should span.
// With at least one valid visit bound it is exactly the range of the visits;
// otherwise w is returned untouched, so a window entered by hand survives
// until the first visit is declared.
func ExpandWindow(w domain.TripWindow, visits []domain.CountryVisit) domain.TripWindow {
	if len(visits) == 0 {
		return w
	}
	derived, ok := DeriveWindow(visits)
	if !ok {
		return w
	}
	return derived
}
