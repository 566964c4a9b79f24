package search

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func conditions(t *testing.T, q bson.M) []bson.M {
	t.Helper()
	raw, ok := q["$and"]
	if !ok {
		t.Fatalf("query has no $and: %v", q)
	}
	return raw.([]bson.M)
}

func TestMongoQueryEmptyFilters(t *testing.T) {
	q := MongoQuery(Filters{})
	if len(q) != 0 {
		t.Errorf("empty filters must compile to an empty query, got %v", q)
	}
}

func TestMongoQueryUsesRawColumnNames(t *testing.T) {
	q := MongoQuery(Filters{Division: "Dhaka", SubArea: "Kazipara"})

	foundDivision, foundArea := false, false
	for _, c := range conditions(t, q) {
		if v, ok := c["address_division"]; ok && v == "Dhaka" {
			foundDivision = true
		}
		if v, ok := c["address_area"]; ok && v == "Kazipara" {
			foundArea = true
		}
	}
	if !foundDivision || !foundArea {
		t.Errorf("location filters must target address_* columns: %v", q)
	}
}

func TestMongoQueryNumericBounds(t *testing.T) {
	q := MongoQuery(Filters{MinPrice: 8000, MaxPrice: 15000, Bedrooms: 2})

	var price, bedrooms bson.M
	for _, c := range conditions(t, q) {
		if v, ok := c["price"]; ok {
			price = v.(bson.M)
		}
		if v, ok := c["bedrooms"]; ok {
			bedrooms = v.(bson.M)
		}
	}
	if price == nil || price["$gte"] != 8000 || price["$lte"] != 15000 {
		t.Errorf("price bounds: %v", price)
	}
	if bedrooms == nil || bedrooms["$gte"] != 2 {
		t.Errorf("bedrooms must be a lower bound, got %v", bedrooms)
	}
}

func TestMongoQueryAmenitiesSuperset(t *testing.T) {
	q := MongoQuery(Filters{Amenities: []string{"ac", "wifi"}})

	for _, c := range conditions(t, q) {
		if v, ok := c["amenities"]; ok {
			m := v.(bson.M)
			if _, ok := m["$all"]; !ok {
				t.Errorf("amenities must use $all, got %v", m)
			}
			return
		}
	}
	t.Errorf("no amenities condition in %v", q)
}

func TestMongoQueryAmenitiesMatchLikeApply(t *testing.T) {
	// Rows store amenities in whatever case the lister typed. Matches
	// compares case-insensitively, so the compiled query has to as well,
	// or the authenticated search and guest browsing disagree on the
	// same row.
	q := MongoQuery(Filters{Amenities: []string{"ac", "wifi"}})

	var all bson.A
	for _, c := range conditions(t, q) {
		if v, ok := c["amenities"]; ok {
			all = v.(bson.M)["$all"].(bson.A)
		}
	}
	if len(all) != 2 {
		t.Fatalf("$all elements: got %v", all)
	}
	for i, want := range []string{"ac", "wifi"} {
		re, ok := all[i].(primitive.Regex)
		if !ok {
			t.Fatalf("$all[%d] is %T, want a case-insensitive regex", i, all[i])
		}
		if re.Options != "i" {
			t.Errorf("$all[%d] options: got %q, want \"i\"", i, re.Options)
		}
		if re.Pattern != "^"+want+"$" {
			t.Errorf("$all[%d] pattern: got %q, want anchored %q", i, re.Pattern, want)
		}
	}
}
