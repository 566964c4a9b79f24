package search

import (
	"reflect"
	"testing"

	"github.com/bashafinder/backend/models"
)

func sampleProperties() []models.Property {
	return []models.Property{
		{ID: "P1", Title: "Flat in Agrabad", Price: 11000, Type: "apartment", Bedrooms: 2, Bathrooms: 1, Area: 800,
			Location:  models.Location{Division: "Chattogram", District: "Chattogram", Thana: "Double Mooring"},
			Amenities: []string{"wifi"}},
		{ID: "P2", Title: "Gulshan duplex", Price: 20000, Type: "apartment", Bedrooms: 4, Bathrooms: 3, Area: 2200,
			Location:  models.Location{Division: "Dhaka", District: "Dhaka", Thana: "Gulshan"},
			Amenities: []string{"ac", "wifi", "lift"}},
		{ID: "P3", Title: "Mirpur family flat", Price: 12000, Type: "apartment", Bedrooms: 3, Bathrooms: 2, Area: 1100,
			Location:  models.Location{Division: "Dhaka", District: "Dhaka", Thana: "Mirpur", Area: "Kazipara"},
			Amenities: []string{"ac", "wifi", "parking"}},
		{ID: "P4", Title: "Single room", Price: 10000, Type: "room", Bedrooms: 1, Bathrooms: 1, Area: 250,
			Location:  models.Location{Division: "Dhaka", District: "Dhaka", Thana: "Khilgaon"},
			Amenities: []string{"wifi"}},
		{ID: "P5", Title: "Shewrapara flat", Price: 9000, Type: "apartment", Bedrooms: 2, Bathrooms: 2, Area: 900,
			Location:  models.Location{Division: "Dhaka", District: "Dhaka", Thana: "Mirpur", Area: "Shewrapara"},
			Amenities: []string{"wifi"}},
	}
}

func ids(props []models.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyEmptyFiltersIsIdentity(t *testing.T) {
	props := sampleProperties()
	got := Apply(props, Filters{})
	if !reflect.DeepEqual(ids(got), []string{"P1", "P2", "P3", "P4", "P5"}) {
		t.Errorf("empty filters changed the collection: %v", ids(got))
	}
}

func TestMaxPriceBound(t *testing.T) {
	got := Apply(sampleProperties(), Filters{MaxPrice: 11000})
	for _, p := range got {
		if p.Price > 11000 {
			t.Errorf("%s has price %d above maxPrice", p.ID, p.Price)
		}
	}
	if !reflect.DeepEqual(ids(got), []string{"P1", "P4", "P5"}) {
		t.Errorf("maxPrice result: %v", ids(got))
	}
}

func TestBedroomsAreAtLeastN(t *testing.T) {
	got := Apply(sampleProperties(), Filters{Bedrooms: 2})
	if !reflect.DeepEqual(ids(got), []string{"P1", "P2", "P3", "P5"}) {
		t.Errorf("bedrooms 2+ result: %v", ids(got))
	}
}

func TestCombinedDivisionPriceBedrooms(t *testing.T) {
	got := Apply(sampleProperties(), Filters{Division: "Dhaka", MaxPrice: 15000, Bedrooms: 2})
	if !reflect.DeepEqual(ids(got), []string{"P3", "P5"}) {
		t.Errorf("combined filter: got %v, want [P3 P5]", ids(got))
	}
}

func TestAmenitiesSuperset(t *testing.T) {
	got := Apply(sampleProperties(), Filters{Amenities: []string{"ac", "wifi"}})
	if !reflect.DeepEqual(ids(got), []string{"P2", "P3"}) {
		t.Errorf("amenities superset: got %v, want [P2 P3]", ids(got))
	}
}

func TestTypeMatchIsCaseInsensitive(t *testing.T) {
	got := Apply(sampleProperties(), Filters{Type: "Room"})
	if !reflect.DeepEqual(ids(got), []string{"P4"}) {
		t.Errorf("type filter: got %v, want [P4]", ids(got))
	}
}

func TestSubAreaExactMatch(t *testing.T) {
	got := Apply(sampleProperties(), Filters{SubArea: "Kazipara"})
	if !reflect.DeepEqual(ids(got), []string{"P3"}) {
		t.Errorf("subArea filter: got %v, want [P3]", ids(got))
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	f := Filters{Division: "Dhaka", MaxPrice: 15000}
	props := sampleProperties()
	first := Apply(props, f)
	second := Apply(props, f)
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Errorf("same filters gave different results: %v vs %v", ids(first), ids(second))
	}
}

func TestMinAreaAndMinPrice(t *testing.T) {
	got := Apply(sampleProperties(), Filters{MinPrice: 10000, MinArea: 1000})
	if !reflect.DeepEqual(ids(got), []string{"P2", "P3"}) {
		t.Errorf("minPrice+minArea: got %v, want [P2 P3]", ids(got))
	}
}
