package models

import (
	"fmt"
	"strings"
)

// FormField describes one input of the post-a-listing form for a given
// property type. The same table drives the form metadata endpoint and the
// submission validator, so the two cannot drift apart.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"` // text, number, select, multi
	Required bool   `json:"required"`
}

var commonFields = []FormField{
	{Name: "title", Label: "Details", Kind: "text", Required: true},
	{Name: "price", Label: "Monthly rent", Kind: "number", Required: true},
	{Name: "division", Label: "Division", Kind: "select", Required: true},
	{Name: "district", Label: "District", Kind: "select", Required: true},
	{Name: "thana", Label: "Thana", Kind: "select", Required: false},
	{Name: "subArea", Label: "Area", Kind: "select", Required: false},
	{Name: "availability", Label: "Availability", Kind: "select", Required: true},
}

var listingFormFields = map[string][]FormField{
	"apartment": append(commonFields[:len(commonFields):len(commonFields)],
		FormField{Name: "bedrooms", Label: "Bedrooms", Kind: "number", Required: true},
		FormField{Name: "bathrooms", Label: "Bathrooms", Kind: "number", Required: true},
		FormField{Name: "area", Label: "Size (sqft)", Kind: "number", Required: true},
		FormField{Name: "furnishing", Label: "Furnishing", Kind: "select", Required: false},
		FormField{Name: "amenities", Label: "Amenities", Kind: "multi", Required: false},
	),
	"room": append(commonFields[:len(commonFields):len(commonFields)],
		FormField{Name: "genderPreference", Label: "Gender preference", Kind: "select", Required: true},
		FormField{Name: "furnishing", Label: "Furnishing", Kind: "select", Required: false},
		FormField{Name: "amenities", Label: "Amenities", Kind: "multi", Required: false},
	),
	"office": append(commonFields[:len(commonFields):len(commonFields)],
		FormField{Name: "area", Label: "Size (sqft)", Kind: "number", Required: true},
		FormField{Name: "amenities", Label: "Amenities", Kind: "multi", Required: false},
	),
	"parking": commonFields[:len(commonFields):len(commonFields)],
}

// ListingFormFields returns the ordered field descriptors for a property
// type. The lookup is case-insensitive; ok is false for unknown types.
func ListingFormFields(propertyType string) ([]FormField, bool) {
	fields, ok := listingFormFields[strings.ToLower(strings.TrimSpace(propertyType))]
	if !ok {
		return nil, false
	}
	out := make([]FormField, len(fields))
	copy(out, fields)
	return out, true
}

// ValidateListing checks a submission against the field table for its
// type. It returns one message per missing required field. Note bedrooms
// and bathrooms are literal counts here, unlike search where they act as
// minimums.
func ValidateListing(p Property) []string {
	fields, ok := ListingFormFields(p.Type)
	if !ok {
		return []string{fmt.Sprintf("unknown property type %q", p.Type)}
	}

	var problems []string
	for _, f := range fields {
		if !f.Required {
			continue
		}
		if missing(p, f.Name) {
			problems = append(problems, fmt.Sprintf("%s is required", f.Name))
		}
	}
	return problems
}

func missing(p Property, field string) bool {
	switch field {
	case "title":
		return strings.TrimSpace(p.Title) == ""
	case "price":
		return p.Price <= 0
	case "division":
		return p.Location.Division == ""
	case "district":
		return p.Location.District == ""
	case "thana":
		return p.Location.Thana == ""
	case "subArea":
		return p.Location.Area == ""
	case "availability":
		return p.Availability == ""
	case "bedrooms":
		return p.Bedrooms <= 0
	case "bathrooms":
		return p.Bathrooms <= 0
	case "area":
		return p.Area <= 0
	case "genderPreference":
		return p.GenderPreference == ""
	case "furnishing":
		return p.Furnishing == ""
	default:
		return false
	}
}
