package domain

// ExportRow is a single row in the full itinerary export.
// It is a flat, denormalized view: one row per activity, with the day fields
// repeated for every activity on that day. Days with no activities yield one
// row with zero values for all activity fields.
//
// Attachments is a slice of attachment file names in the order they were added.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	// Day fields — repeated for every activity on the day.
	Date    string // "2006-01-02"
	City    string // empty for unassigned days
	Country string // empty for unassigned days

	// Activity fields — zero values when the day has no activities.
	Time        string
	Description string

	Attachments []string
}
