package geo

import "testing"

func sampleCatalog() *Catalog {
	return NewCatalog(
		[]Division{
			{ID: "1", Name: "Dhaka"},
			{ID: "2", Name: "Chattogram"},
			{ID: "", Name: "Ghost"},
			{ID: "9", Name: ""},
		},
		[]District{
			{ID: "10", Name: "Dhaka", DivisionID: "1"},
			{ID: "11", Name: "Gazipur", DivisionID: "1"},
			{ID: "20", Name: "Chattogram", DivisionID: "2"},
			{ID: "", Name: "Broken", DivisionID: "1"},
		},
		[]Upazila{
			{UpazilaID: "100", Name: "Mirpur", DistrictID: "10"},
			{UpazilaID: "101", Name: "Gulshan", DistrictID: "10"},
			{UpazilaID: "", Name: "Broken", DistrictID: "10"},
		},
		[]AreaGroup{
			{UpazilaID: "100", Areas: []string{"Kazipara", "Shewrapara", ""}},
		},
	)
}

func TestDivisionsFilterMalformed(t *testing.T) {
	c := sampleCatalog()
	divisions := c.Divisions()
	if len(divisions) != 2 {
		t.Fatalf("Divisions: got %d, want 2", len(divisions))
	}
	for _, d := range divisions {
		if d.ID == "" || d.Name == "" {
			t.Errorf("malformed division surfaced: %+v", d)
		}
	}
}

func TestDistrictsByDivision(t *testing.T) {
	c := sampleCatalog()

	got := c.Districts("1")
	if len(got) != 2 {
		t.Fatalf("Districts(1): got %d, want 2", len(got))
	}
	for _, d := range got {
		if d.DivisionID != "1" {
			t.Errorf("Districts(1) returned district of division %s", d.DivisionID)
		}
	}

	if got := c.Districts(""); len(got) != 0 {
		t.Errorf("Districts(\"\"): got %d entries, want 0", len(got))
	}
	if got := c.Districts("404"); len(got) != 0 {
		t.Errorf("Districts(404): got %d entries, want 0", len(got))
	}
}

func TestUpazilasByDistrict(t *testing.T) {
	c := sampleCatalog()

	got := c.Upazilas("10")
	if len(got) != 2 {
		t.Fatalf("Upazilas(10): got %d, want 2", len(got))
	}
	if got := c.Upazilas("20"); len(got) != 0 {
		t.Errorf("Upazilas(20): got %d entries, want 0", len(got))
	}
}

func TestAreasByUpazila(t *testing.T) {
	c := sampleCatalog()

	got := c.Areas("100")
	if len(got) != 2 {
		t.Fatalf("Areas(100): got %v, want 2 names", got)
	}
	for _, name := range got {
		if name == "" {
			t.Error("empty area name surfaced")
		}
	}
	if got := c.Areas("101"); len(got) != 0 {
		t.Errorf("Areas(101): got %d entries, want 0", len(got))
	}
}

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	if got := len(c.Divisions()); got != 8 {
		t.Errorf("bundled divisions: got %d, want 8", got)
	}
	if got := len(c.Districts("1")); got != 13 {
		t.Errorf("bundled districts of Dhaka division: got %d, want 13", got)
	}
	if got := c.Areas("114"); len(got) == 0 {
		t.Error("bundled areas for Mirpur should not be empty")
	}
}

func TestCatalogResultsAreCopies(t *testing.T) {
	c := sampleCatalog()
	first := c.Divisions()
	first[0].Name = "mutated"
	if c.Divisions()[0].Name == "mutated" {
		t.Error("Divisions returned a view into catalog state")
	}
}
