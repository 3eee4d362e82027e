package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/itinerary"
)

// ---- helpers ---------------------------------------------------------------

func window(arrival, departure string) domain.TripWindow {
	return domain.TripWindow{ArrivalDate: arrival, DepartureDate: departure}
}

func visit(id, city, country, from, to string) domain.CountryVisit {
	return domain.CountryVisit{ID: id, Name: country, City: city, From: from, To: to}
}

func labels(plans []domain.DayPlan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.Date + " " + p.Location
	}
	return out
}

// ---- Synchronize -----------------------------------------------------------

func TestSynchronize_NoVisits_AllPlaceholder(t *testing.T) {
	plans, ok := itinerary.Synchronize(window("2025-06-01", "2025-06-04"), nil, nil)

	require.True(t, ok)
	require.Len(t, plans, 4)
	for i, want := range []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04"} {
		assert.Equal(t, want, plans[i].Date)
		assert.Equal(t, domain.UnassignedLabel, plans[i].Location)
		assert.NotNil(t, plans[i].Activities, "activities must be an empty list, not nil")
		assert.Empty(t, plans[i].Activities)
	}
}

func TestSynchronize_SingleDayWindow(t *testing.T) {
	plans, ok := itinerary.Synchronize(window("2025-06-01", "2025-06-01"), nil, nil)

	require.True(t, ok)
	assert.Len(t, plans, 1)
}

func TestSynchronize_InvalidWindows(t *testing.T) {
	tests := []struct {
		name string
		w    domain.TripWindow
	}{
		{"both empty", window("", "")},
		{"missing arrival", window("", "2025-06-03")},
		{"missing departure", window("2025-06-01", "")},
		{"arrival after departure", window("2025-06-05", "2025-06-01")},
		{"malformed arrival", window("junio", "2025-06-03")},
		{"impossible date", window("2025-02-30", "2025-03-03")},
		{"too wide", window("2000-01-01", "2030-01-01")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plans, ok := itinerary.Synchronize(tc.w, nil, nil)

			assert.False(t, ok)
			assert.Nil(t, plans)
		})
	}
}

func TestSynchronize_AcceptsTimestamps(t *testing.T) {
	plans, ok := itinerary.Synchronize(window("2025-06-01T18:30:00Z", "2025-06-02T08:00:00Z"), nil, nil)

	require.True(t, ok)
	assert.Equal(t, []string{"2025-06-01 Por definir", "2025-06-02 Por definir"}, labels(plans))
}

func TestSynchronize_ParisRomeOverlap(t *testing.T) {
	visits := []domain.CountryVisit{
		visit("a", "Paris", "France", "2025-06-01", "2025-06-02"),
		visit("b", "Rome", "Italy", "2025-06-02", "2025-06-03"),
	}

	plans, ok := itinerary.Synchronize(window("2025-06-01", "2025-06-03"), visits, nil)

	require.True(t, ok)
	assert.Equal(t, []string{
		"2025-06-01 Paris, France",
		"2025-06-02 Rome, Italy",
		"2025-06-03 Rome, Italy",
	}, labels(plans))
}

func TestSynchronize_LastDeclaredVisitWins(t *testing.T) {
	// The later visit is shorter and starts later; it still wins the overlap.
	visits := []domain.CountryVisit{
		visit("a", "Madrid", "España", "2025-06-01", "2025-06-10"),
		visit("b", "Lisboa", "Portugal", "2025-06-04", "2025-06-04"),
	}

	plans, ok := itinerary.Synchronize(window("2025-06-03", "2025-06-05"), visits, nil)

	require.True(t, ok)
	assert.Equal(t, []string{
		"2025-06-03 Madrid, España",
		"2025-06-04 Lisboa, Portugal",
		"2025-06-05 Madrid, España",
	}, labels(plans))

	// Reversing declaration order flips the winner.
	visits[0], visits[1] = visits[1], visits[0]
	plans, ok = itinerary.Synchronize(window("2025-06-03", "2025-06-05"), visits, nil)

	require.True(t, ok)
	assert.Equal(t, "Madrid, España", plans[1].Location)
}

func TestSynchronize_VisitWithInvalidBoundNeverMatches(t *testing.T) {
	visits := []domain.CountryVisit{
		visit("a", "Paris", "France", "2025-06-01", "2025-06-03"),
		visit("b", "Rome", "Italy", "2025-06-01", "not-a-date"),
	}

	plans, ok := itinerary.Synchronize(window("2025-06-01", "2025-06-02"), visits, nil)

	require.True(t, ok)
	assert.Equal(t, "Paris, France", plans[0].Location)
	assert.Equal(t, "Paris, France", plans[1].Location)
}

func TestSynchronize_DaysOutsideVisitsArePlaceholder(t *testing.T) {
	visits := []domain.CountryVisit{visit("a", "Viena", "Austria", "2025-06-02", "2025-06-02")}

	plans, ok := itinerary.Synchronize(window("2025-06-01", "2025-06-03"), visits, nil)

	require.True(t, ok)
	assert.Equal(t, []string{
		"2025-06-01 Por definir",
		"2025-06-02 Viena, Austria",
		"2025-06-03 Por definir",
	}, labels(plans))
}

func TestSynchronize_CarriesActivitiesWhenLabelChanges(t *testing.T) {
	museum := domain.Activity{ID: "act-1", Time: "09:30", Description: "Museum"}
	previous := []domain.DayPlan{
		{Date: "2025-06-01", Location: domain.UnassignedLabel, Activities: []domain.Activity{museum}},
		{Date: "2025-06-02", Location: domain.UnassignedLabel, Activities: []domain.Activity{}},
	}
	visits := []domain.CountryVisit{visit("a", "Roma", "Italia", "2025-06-01", "2025-06-02")}

	plans, ok := itinerary.Synchronize(window("2025-06-01", "2025-06-02"), visits, previous)

	require.True(t, ok)
	assert.Equal(t, "Roma, Italia", plans[0].Location)
	require.Len(t, plans[0].Activities, 1)
	assert.Equal(t, museum, plans[0].Activities[0])
	// Shared by reference: the same backing array is reused.
	assert.Same(t, &previous[0].Activities[0], &plans[0].Activities[0])
}

func TestSynchronize_DropsActivitiesOfRemovedDates(t *testing.T) {
	previous := []domain.DayPlan{
		{Date: "2025-06-01", Location: domain.UnassignedLabel, Activities: []domain.Activity{{ID: "x"}}},
		{Date: "2025-06-02", Location: domain.UnassignedLabel, Activities: []domain.Activity{{ID: "y"}}},
	}

	plans, ok := itinerary.Synchronize(window("2025-06-02", "2025-06-03"), nil, previous)

	require.True(t, ok)
	require.Len(t, plans, 2)
	assert.Equal(t, "y", plans[0].Activities[0].ID)
	assert.Empty(t, plans[1].Activities)
	for _, p := range plans {
		for _, a := range p.Activities {
			assert.NotEqual(t, "x", a.ID, "activities of a removed date must be gone")
		}
	}
}

func TestSynchronize_DuplicatePreviousDateFirstWins(t *testing.T) {
	previous := []domain.DayPlan{
		{Date: "2025-06-01", Activities: []domain.Activity{{ID: "first"}}},
		{Date: "2025-06-01", Activities: []domain.Activity{{ID: "second"}}},
	}

	plans, ok := itinerary.Synchronize(window("2025-06-01", "2025-06-01"), nil, previous)

	require.True(t, ok)
	assert.Equal(t, "first", plans[0].Activities[0].ID)
}

func TestSynchronize_CrossesMonthAndLeapDay(t *testing.T) {
	plans, ok := itinerary.Synchronize(window("2024-02-28", "2024-03-01"), nil, nil)

	require.True(t, ok)
	assert.Equal(t, []string{
		"2024-02-28 Por definir",
		"2024-02-29 Por definir",
		"2024-03-01 Por definir",
	}, labels(plans))
}
