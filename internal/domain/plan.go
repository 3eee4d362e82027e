package domain

import "strings"

// UnassignedLabel marks a day that no country visit covers.
const UnassignedLabel = "Por definir"

// DefaultActivityTime is the time given to a freshly added activity.
const DefaultActivityTime = "10:00"

// DayPlan is one calendar day of the itinerary.
// Location is either a CountryVisit label or UnassignedLabel.
type DayPlan struct {
	Date       string     `json:"date"`
	Location   string     `json:"country"`
	Activities []Activity `json:"activities"`
}

// Assigned reports whether a visit covers this day.
func (p DayPlan) Assigned() bool {
	return p.Location != "" && p.Location != UnassignedLabel
}

// Place splits the location label into city and country.
// A label without a ", " separator is treated as a bare country name. When
// the label has more than two segments the country is the second one.
func (p DayPlan) Place() (city, country string) {
	if !p.Assigned() {
		return "", ""
	}
	parts := strings.Split(p.Location, ", ")
	if len(parts) == 1 {
		return "", parts[0]
	}
	return parts[0], parts[1]
}

// Activity is a timed entry in a day plan.
type Activity struct {
	ID          string       `json:"id"`
	Time        string       `json:"time"`
	Description string       `json:"description"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// ActivityDraft carries the optional fields of an activity being added.
type ActivityDraft struct {
	Time        *string
	Description *string
}

// ActivityPatch carries the fields of an activity being edited. Nil means unchanged.
type ActivityPatch struct {
	Time        *string
	Description *string
}

// AttachmentType distinguishes inline images from documents.
type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentPDF   AttachmentType = "pdf"
)

// Attachment is a file stored inline as a data URL.
type Attachment struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Type AttachmentType `json:"type"`
	Data string         `json:"data"`
}

// Upload is a file received from the client, before conversion to an Attachment.
// ContentType is the client-declared MIME type and may be empty.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}
