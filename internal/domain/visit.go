package domain

// CountryVisit is a user-declared closed interval [From, To] during which the
// traveller is in City, Name. Visits may overlap; the itinerary resolves that.
type CountryVisit struct {
	ID   string `json:"id"`
	Name string `json:"name"` // country
	City string `json:"city"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Label returns the "<city>, <country>" location label used by day plans.
func (c CountryVisit) Label() string {
	return c.City + ", " + c.Name
}

// CountryDraft carries the optional fields of a visit being added.
// Nil fields are filled with defaults by the service.
type CountryDraft struct {
	Name *string
	City *string
	From *string
	To   *string
}

// CountryPatch carries the fields of a visit being edited. Nil means unchanged.
type CountryPatch struct {
	Name *string
	City *string
	From *string
	To   *string
}
