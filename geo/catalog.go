// Package geo holds the static Bangladesh administrative hierarchy
// (division -> district -> upazila/thana -> area) used to scope property
// locations. The tables are bundled with the binary and never mutated
// after load.
package geo

import (
	_ "embed"
	"encoding/json"
	"log"
	"sync"
)

type Division struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type District struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DivisionID string `json:"division_id"`
}

type Upazila struct {
	UpazilaID  string `json:"upazila_id"`
	Name       string `json:"name"`
	DistrictID string `json:"district_id"`
}

// AreaGroup lists the named sub-areas under one upazila. Areas have no id
// of their own; they are looked up by upazila_id.
type AreaGroup struct {
	UpazilaID string   `json:"upazila_id"`
	Areas     []string `json:"areas"`
}

// Catalog is an immutable snapshot of the hierarchy. Lookups never touch
// I/O, so there is no error path beyond an empty result.
type Catalog struct {
	divisions           []Division
	districtsByDivision map[string][]District
	upazilasByDistrict  map[string][]Upazila
	areasByUpazila      map[string][]string
}

// NewCatalog indexes the reference tables. Entries missing an id or a name
// are dropped here so they can never show up as selectable options.
func NewCatalog(divisions []Division, districts []District, upazilas []Upazila, areas []AreaGroup) *Catalog {
	c := &Catalog{
		districtsByDivision: make(map[string][]District),
		upazilasByDistrict:  make(map[string][]Upazila),
		areasByUpazila:      make(map[string][]string),
	}

	for _, d := range divisions {
		if d.ID == "" || d.Name == "" {
			continue
		}
		c.divisions = append(c.divisions, d)
	}
	for _, d := range districts {
		if d.ID == "" || d.Name == "" || d.DivisionID == "" {
			continue
		}
		c.districtsByDivision[d.DivisionID] = append(c.districtsByDivision[d.DivisionID], d)
	}
	for _, u := range upazilas {
		if u.UpazilaID == "" || u.Name == "" || u.DistrictID == "" {
			continue
		}
		c.upazilasByDistrict[u.DistrictID] = append(c.upazilasByDistrict[u.DistrictID], u)
	}
	for _, g := range areas {
		if g.UpazilaID == "" {
			continue
		}
		for _, name := range g.Areas {
			if name == "" {
				continue
			}
			c.areasByUpazila[g.UpazilaID] = append(c.areasByUpazila[g.UpazilaID], name)
		}
	}

	return c
}

// Divisions returns every division.
func (c *Catalog) Divisions() []Division {
	out := make([]Division, len(c.divisions))
	copy(out, c.divisions)
	return out
}

// Districts returns the districts under the given division, or an empty
// slice when divisionID is unset or unknown.
func (c *Catalog) Districts(divisionID string) []District {
	src := c.districtsByDivision[divisionID]
	out := make([]District, len(src))
	copy(out, src)
	return out
}

// Upazilas returns the upazilas/thanas under the given district, or an
// empty slice when districtID is unset or unknown.
func (c *Catalog) Upazilas(districtID string) []Upazila {
	src := c.upazilasByDistrict[districtID]
	out := make([]Upazila, len(src))
	copy(out, src)
	return out
}

// Areas returns the flattened area names under the given upazila, or an
// empty slice when upazilaID is unset or unknown.
func (c *Catalog) Areas(upazilaID string) []string {
	src := c.areasByUpazila[upazilaID]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

//go:embed data/divisions.json
var divisionsJSON []byte

//go:embed data/districts.json
var districtsJSON []byte

//go:embed data/upazilas.json
var upazilasJSON []byte

//go:embed data/areas.json
var areasJSON []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the bundled data files, loading
// it on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		var (
			divisions []Division
			districts []District
			upazilas  []Upazila
			areas     []AreaGroup
		)
		if err := json.Unmarshal(divisionsJSON, &divisions); err != nil {
			log.Printf("geo: failed to parse divisions data: %v", err)
		}
		if err := json.Unmarshal(districtsJSON, &districts); err != nil {
			log.Printf("geo: failed to parse districts data: %v", err)
		}
		if err := json.Unmarshal(upazilasJSON, &upazilas); err != nil {
			log.Printf("geo: failed to parse upazilas data: %v", err)
		}
		if err := json.Unmarshal(areasJSON, &areas); err != nil {
			log.Printf("geo: failed to parse areas data: %v", err)
		}
		defaultCatalog = NewCatalog(divisions, districts, upazilas, areas)
	})
	return defaultCatalog
}
