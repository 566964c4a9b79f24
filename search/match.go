package search

import (
	"strings"

	"github.com/bashafinder/backend/models"
)

// Matches reports whether a property satisfies every constraint set in f.
// Unset fields pass unconditionally. Bedrooms and bathrooms are "at least
// N" to mirror the N+ options in the filter panel, not exact counts.
func Matches(p models.Property, f Filters) bool {
	if f.Division != "" && p.Location.Division != f.Division {
		return false
	}
	if f.District != "" && p.Location.District != f.District {
		return false
	}
	if f.Thana != "" && p.Location.Thana != f.Thana {
		return false
	}
	if f.SubArea != "" && p.Location.Area != f.SubArea {
		return false
	}
	if f.Type != "" && !strings.EqualFold(p.Type, f.Type) {
		return false
	}
	if f.Priority != "" && p.Priority != f.Priority {
		return false
	}
	if f.MaxPrice != 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.MinPrice != 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MinArea != 0 && p.Area < f.MinArea {
		return false
	}
	if f.Bedrooms != 0 && p.Bedrooms < f.Bedrooms {
		return false
	}
	if f.Bathrooms != 0 && p.Bathrooms < f.Bathrooms {
		return false
	}
	if f.GenderPreference != "" && p.GenderPreference != f.GenderPreference {
		return false
	}
	if f.Furnishing != "" && p.Furnishing != f.Furnishing {
		return false
	}
	if f.Availability != "" && p.Availability != f.Availability {
		return false
	}
	for _, want := range f.Amenities {
		if !hasAmenity(p.Amenities, want) {
			return false
		}
	}
	return true
}

// Apply returns the properties matching f in their original relative
// order. Empty filters return the input collection unchanged.
func Apply(props []models.Property, f Filters) []models.Property {
	if f.IsZero() {
		return props
	}
	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if Matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func hasAmenity(have []string, want string) bool {
	for _, a := range have {
		if strings.EqualFold(strings.TrimSpace(a), want) {
			return true
		}
	}
	return false
}
