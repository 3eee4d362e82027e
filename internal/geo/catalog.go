// Package geo is the static country → city → coordinates lookup used to
// populate the visit editor and to place markers on the trip map.
package geo

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed europe.yaml
var europeYAML []byte

// Point is a WGS84 position.
type Point struct {
	Lon float64 `json:"lon" yaml:"lon"`
	Lat float64 `json:"lat" yaml:"lat"`
}

// City is a selectable city with its position.
type City struct {
	Name  string `json:"name" yaml:"name"`
	Point `yaml:",inline"`
}

// Country lists its cities in display order; the first is the default.
type Country struct {
	Name   string `json:"name" yaml:"name"`
	Cities []City `json:"cities" yaml:"cities"`
}

// Catalog is an ordered, read-only set of countries.
type Catalog struct {
	countries []Country
	byName    map[string]int
}

// Parse decodes a catalog document. Countries must have a unique name and at
// least one city; city names must be non-empty and unique within their country.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Countries []Country `yaml:"countries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("geo.Parse: %w", err)
	}

	c := &Catalog{countries: doc.Countries, byName: make(map[string]int, len(doc.Countries))}
	for i, country := range doc.Countries {
		if country.Name == "" || len(country.Cities) == 0 {
			return nil, fmt.Errorf("geo.Parse: country %d has no name or no cities", i)
		}
		if _, dup := c.byName[country.Name]; dup {
			return nil, fmt.Errorf("geo.Parse: duplicate country %q", country.Name)
		}
		seen := make(map[string]bool, len(country.Cities))
		for j, city := range country.Cities {
			if city.Name == "" {
				return nil, fmt.Errorf("geo.Parse: %s: city %d has no name", country.Name, j)
			}
			if seen[city.Name] {
				return nil, fmt.Errorf("geo.Parse: %s: duplicate city %q", country.Name, city.Name)
			}
			seen[city.Name] = true
		}
		c.byName[country.Name] = i
	}
	return c, nil
}

var (
	europeOnce sync.Once
	europe     *Catalog
)

// Europe returns the embedded catalog. It panics if the embedded document is
// malformed, which a test guards against.
func Europe() *Catalog {
	europeOnce.Do(func() {
		c, err := Parse(europeYAML)
		if err != nil {
			panic(err)
		}
		europe = c
	})
	return europe
}

// Countries returns every country in display order.
func (c *Catalog) Countries() []Country {
	return c.countries
}

// CountryNames returns the country names in display order.
func (c *Catalog) CountryNames() []string {
	names := make([]string, len(c.countries))
	for i, country := range c.countries {
		names[i] = country.Name
	}
	return names
}

// FirstCountry returns the default country for a new visit.
func (c *Catalog) FirstCountry() (string, bool) {
	if len(c.countries) == 0 {
		return "", false
	}
	return c.countries[0].Name, true
}

// HasCountry reports whether the catalog lists country.
func (c *Catalog) HasCountry(country string) bool {
	_, ok := c.byName[country]
	return ok
}

// Cities returns the cities of country in display order, or nil.
func (c *Catalog) Cities(country string) []City {
	i, ok := c.byName[country]
	if !ok {
		return nil
	}
	return c.countries[i].Cities
}

// FirstCity returns the default city of country.
func (c *Catalog) FirstCity(country string) (string, bool) {
	cities := c.Cities(country)
	if len(cities) == 0 {
		return "", false
	}
	return cities[0].Name, true
}

// Coordinates returns the position of city in country.
func (c *Catalog) Coordinates(country, city string) (Point, bool) {
	for _, ct := range c.Cities(country) {
		if ct.Name == city {
			return ct.Point, true
		}
	}
	return Point{}, false
}
