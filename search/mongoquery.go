package search

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoQuery compiles f into a filter document over the persisted property
// rows, with the same semantics as Matches. Field names here are the raw
// column names of the properties table, not the client-facing ones.
func MongoQuery(f Filters) bson.M {
	var and []bson.M

	addEq := func(field, value string) {
		if value != "" {
			and = append(and, bson.M{field: value})
		}
	}
	addEq("address_division", f.Division)
	addEq("address_district", f.District)
	addEq("address_thana", f.Thana)
	addEq("address_area", f.SubArea)
	addEq("priority", f.Priority)
	addEq("gender_preference", f.GenderPreference)
	addEq("furnishing", f.Furnishing)
	addEq("availability", f.Availability)

	if f.Type != "" {
		and = append(and, bson.M{"property_type": bson.M{
			"$regex": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(f.Type) + "$", Options: "i"},
		}})
	}

	price := bson.M{}
	if f.MinPrice != 0 {
		price["$gte"] = f.MinPrice
	}
	if f.MaxPrice != 0 {
		price["$lte"] = f.MaxPrice
	}
	if len(price) > 0 {
		and = append(and, bson.M{"price": price})
	}
	if f.MinArea != 0 {
		and = append(and, bson.M{"area_sqft": bson.M{"$gte": f.MinArea}})
	}
	if f.Bedrooms != 0 {
		and = append(and, bson.M{"bedrooms": bson.M{"$gte": f.Bedrooms}})
	}
	if f.Bathrooms != 0 {
		and = append(and, bson.M{"bathrooms": bson.M{"$gte": f.Bathrooms}})
	}
	if len(f.Amenities) > 0 {
		// Case-insensitive like Matches, so both listing paths agree on
		// rows stored as e.g. ["AC","WiFi"].
		elems := make(bson.A, 0, len(f.Amenities))
		for _, a := range f.Amenities {
			elems = append(elems, primitive.Regex{Pattern: "^" + regexp.QuoteMeta(a) + "$", Options: "i"})
		}
		and = append(and, bson.M{"amenities": bson.M{"$all": elems}})
	}

	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}
