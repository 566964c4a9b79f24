// Package search implements the property filter model: a flat Filters
// value, a pure matcher over in-memory properties, and the translation of
// the same Filters into a MongoDB query for server-side listing.
package search

import (
	"net/url"
	"strconv"
	"strings"
)

// Filters captures the search criteria. Zero values ("" / 0 / nil) mean
// "no constraint" for that field.
type Filters struct {
	Division         string   `json:"division,omitempty"`
	District         string   `json:"district,omitempty"`
	Thana            string   `json:"thana,omitempty"`
	SubArea          string   `json:"subArea,omitempty"`
	Type             string   `json:"type,omitempty"`
	Priority         string   `json:"priority,omitempty"`
	MaxPrice         int      `json:"maxPrice,omitempty"`
	MinPrice         int      `json:"minPrice,omitempty"`
	MinArea          int      `json:"minArea,omitempty"`
	Bedrooms         int      `json:"bedrooms,omitempty"`
	Bathrooms        int      `json:"bathrooms,omitempty"`
	GenderPreference string   `json:"genderPreference,omitempty"`
	Furnishing       string   `json:"furnishing,omitempty"`
	Availability     string   `json:"availability,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
}

// IsZero reports whether no constraint is set.
func (f Filters) IsZero() bool {
	return f.Division == "" && f.District == "" && f.Thana == "" && f.SubArea == "" &&
		f.Type == "" && f.Priority == "" &&
		f.MaxPrice == 0 && f.MinPrice == 0 && f.MinArea == 0 &&
		f.Bedrooms == 0 && f.Bathrooms == 0 &&
		f.GenderPreference == "" && f.Furnishing == "" && f.Availability == "" &&
		len(f.Amenities) == 0
}

// Level identifies one step of the location hierarchy for WithSelection.
type Level int

const (
	LevelDivision Level = iota
	LevelDistrict
	LevelThana
	LevelSubArea
)

// WithSelection returns a copy of f with the given location level set and
// every descendant level cleared. Changing an ancestor invalidates the
// finer selections, and doing it in one value replacement means the query
// executor never sees a half-updated hierarchy.
func (f Filters) WithSelection(level Level, value string) Filters {
	switch level {
	case LevelDivision:
		f.Division = value
		f.District = ""
		f.Thana = ""
		f.SubArea = ""
	case LevelDistrict:
		f.District = value
		f.Thana = ""
		f.SubArea = ""
	case LevelThana:
		f.Thana = value
		f.SubArea = ""
	case LevelSubArea:
		f.SubArea = value
	}
	return f
}

// ParseQuery builds Filters from request query parameters. Unknown
// parameters are ignored; unparsable numbers are treated as unset, the
// same way the listing endpoints have always shrugged off bad input.
func ParseQuery(q url.Values) Filters {
	f := Filters{
		Division:         strings.TrimSpace(q.Get("division")),
		District:         strings.TrimSpace(q.Get("district")),
		Thana:            strings.TrimSpace(q.Get("thana")),
		SubArea:          strings.TrimSpace(q.Get("subArea")),
		Type:             strings.TrimSpace(q.Get("type")),
		Priority:         strings.TrimSpace(q.Get("priority")),
		GenderPreference: strings.TrimSpace(q.Get("genderPreference")),
		Furnishing:       strings.TrimSpace(q.Get("furnishing")),
		Availability:     strings.TrimSpace(q.Get("availability")),
		MaxPrice:         parseInt(q.Get("maxPrice")),
		MinPrice:         parseInt(q.Get("minPrice")),
		MinArea:          parseInt(q.Get("minArea")),
		Bedrooms:         parseInt(q.Get("bedrooms")),
		Bathrooms:        parseInt(q.Get("bathrooms")),
	}
	if raw := q.Get("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Amenities = append(f.Amenities, a)
			}
		}
	}
	return f
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
