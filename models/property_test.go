package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecordToPropertyMapping(t *testing.T) {
	rec := PropertyRecord{
		ID:              primitive.NewObjectID(),
		PropertyDetails: "Sunny 2BR near Kazipara metro",
		Price:           14000,
		PropertyType:    "apartment",
		Bedrooms:        2,
		Bathrooms:       2,
		AreaSqft:        950,
		Pictures:        []PictureRecord{{ID: "img1", Src: "https://cdn.example.com/img1.jpg"}},
		AddressDivision: "Dhaka",
		AddressDistrict: "Dhaka",
		AddressThana:    "Mirpur",
		AddressArea:     "Kazipara",
		AddressCity:     "Dhaka",
		Latitude:        23.7983,
		Longitude:       90.3685,
		Availability:    "available",
		LandlordName:    "Rahim Uddin",
	}

	p := rec.ToProperty()

	if p.Title != rec.PropertyDetails {
		t.Errorf("property_details must map to title, got %q", p.Title)
	}
	if len(p.Images) != 1 || p.Images[0].Src != rec.Pictures[0].Src {
		t.Errorf("pictures must map to images, got %+v", p.Images)
	}
	if p.Location.District != "Dhaka" || p.Location.Area != "Kazipara" {
		t.Errorf("address_* must map to location, got %+v", p.Location)
	}
	if p.Location.Coordinates.Lat != 23.7983 || p.Location.Coordinates.Lng != 90.3685 {
		t.Errorf("coordinates lost: %+v", p.Location.Coordinates)
	}
	if !p.Available {
		t.Error("status \"available\" should read as open")
	}
}

func TestOccupiedReadsAsClosed(t *testing.T) {
	p := PropertyRecord{Availability: AvailabilityOccupied}.ToProperty()
	if p.Available {
		t.Error("occupied listing should not read as available")
	}
}

func TestPropertyRecordRoundTrip(t *testing.T) {
	p := Property{
		Title:     "Office floor",
		Price:     50000,
		Type:      "office",
		Area:      3000,
		Images:    []Image{{ID: "a", Src: "https://cdn.example.com/a.jpg"}},
		Location:  Location{Division: "Dhaka", District: "Dhaka", Thana: "Motijheel", Area: "Dilkusha"},
		Amenities: []string{"lift", "generator"},
	}

	back := p.ToRecord().ToProperty()

	if back.Title != p.Title || back.Location.Area != p.Location.Area {
		t.Errorf("mapping is not symmetric: %+v", back)
	}
	if len(back.Amenities) != 2 {
		t.Errorf("amenities lost in mapping: %v", back.Amenities)
	}
}
