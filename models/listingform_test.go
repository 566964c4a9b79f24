package models

import (
	"strings"
	"testing"
)

func validApartment() Property {
	return Property{
		Title:     "2BR flat in Mirpur",
		Price:     14000,
		Type:      "apartment",
		Bedrooms:  2,
		Bathrooms: 2,
		Area:      950,
		Location: Location{
			Division: "Dhaka",
			District: "Dhaka",
			Thana:    "Mirpur",
			Area:     "Kazipara",
		},
		Availability: "available",
	}
}

func TestValidateApartmentComplete(t *testing.T) {
	if problems := ValidateListing(validApartment()); len(problems) != 0 {
		t.Errorf("complete apartment flagged: %v", problems)
	}
}

func TestValidateApartmentRequiresBedrooms(t *testing.T) {
	p := validApartment()
	p.Bedrooms = 0

	problems := ValidateListing(p)
	found := false
	for _, msg := range problems {
		if strings.Contains(msg, "bedrooms") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing bedrooms not reported: %v", problems)
	}
}

func TestValidateParkingNeedsNoBedrooms(t *testing.T) {
	p := Property{
		Title:        "Basement parking spot",
		Price:        3000,
		Type:         "parking",
		Location:     Location{Division: "Dhaka", District: "Dhaka"},
		Availability: "available",
	}
	if problems := ValidateListing(p); len(problems) != 0 {
		t.Errorf("parking listing flagged: %v", problems)
	}
}

func TestValidateRoomRequiresGenderPreference(t *testing.T) {
	p := validApartment()
	p.Type = "room"
	p.GenderPreference = ""

	problems := ValidateListing(p)
	found := false
	for _, msg := range problems {
		if strings.Contains(msg, "genderPreference") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing gender preference not reported: %v", problems)
	}
}

func TestValidateUnknownType(t *testing.T) {
	p := validApartment()
	p.Type = "castle"
	problems := ValidateListing(p)
	if len(problems) != 1 || !strings.Contains(problems[0], "unknown property type") {
		t.Errorf("unknown type: %v", problems)
	}
}

func TestListingFormFieldsLookup(t *testing.T) {
	fields, ok := ListingFormFields("Apartment")
	if !ok {
		t.Fatal("lookup should be case-insensitive")
	}
	if fields[0].Name != "title" {
		t.Errorf("field order lost, first = %s", fields[0].Name)
	}

	if _, ok := ListingFormFields("castle"); ok {
		t.Error("unknown type should miss")
	}
}

func TestFormAndValidatorShareFields(t *testing.T) {
	// Every required form field must be enforceable by the validator:
	// blanking the property must produce one problem per required field.
	fields, _ := ListingFormFields("apartment")
	problems := ValidateListing(Property{Type: "apartment"})

	required := 0
	for _, f := range fields {
		if f.Required {
			required++
		}
	}
	if len(problems) != required {
		t.Errorf("validator reported %d problems for %d required fields: %v",
			len(problems), required, problems)
	}
}
