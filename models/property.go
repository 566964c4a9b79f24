package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is the client-facing listing shape served over the API.
type Property struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Price            int       `json:"price"`
	Type             string    `json:"type"`
	Bedrooms         int       `json:"bedrooms"`
	Bathrooms        int       `json:"bathrooms"`
	Area             int       `json:"area"`
	Images           []Image   `json:"images"`
	Location         Location  `json:"location"`
	Amenities        []string  `json:"amenities"`
	Landlord         Landlord  `json:"landlord"`
	Availability     string    `json:"availability"`
	Available        bool      `json:"available"`
	GenderPreference string    `json:"genderPreference,omitempty"`
	Furnishing       string    `json:"furnishing,omitempty"`
	Priority         string    `json:"priority,omitempty"`
	IsFavorite       bool      `json:"isFavorite,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Image struct {
	ID  string `json:"id"`
	Src string `json:"src"`
}

type Location struct {
	Division    string      `json:"division"`
	District    string      `json:"district"`
	Thana       string      `json:"thana"`
	Area        string      `json:"area"`
	City        string      `json:"city"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Landlord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}

// PropertyRecord is the persisted row. The column names predate this
// service and are shared with the mobile and web clients, so the mapping
// to Property (property_details -> title, pictures -> images, address_* ->
// location) must not change.
type PropertyRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	PropertyDetails  string             `bson:"property_details"`
	Price            int                `bson:"price"`
	PropertyType     string             `bson:"property_type"`
	Bedrooms         int                `bson:"bedrooms"`
	Bathrooms        int                `bson:"bathrooms"`
	AreaSqft         int                `bson:"area_sqft"`
	Pictures         []PictureRecord    `bson:"pictures"`
	AddressDivision  string             `bson:"address_division"`
	AddressDistrict  string             `bson:"address_district"`
	AddressThana     string             `bson:"address_thana"`
	AddressArea      string             `bson:"address_area"`
	AddressCity      string             `bson:"address_city"`
	Latitude         float64            `bson:"latitude"`
	Longitude        float64            `bson:"longitude"`
	Amenities        []string           `bson:"amenities"`
	GenderPreference string             `bson:"gender_preference,omitempty"`
	Furnishing       string             `bson:"furnishing,omitempty"`
	Availability     string             `bson:"availability"`
	Priority         string             `bson:"priority,omitempty"`
	LandlordID       string             `bson:"landlord_id"`
	LandlordName     string             `bson:"landlord_name"`
	LandlordPhone    string             `bson:"landlord_phone"`
	LandlordVerified bool               `bson:"landlord_verified"`
	CreatedBy        string             `bson:"created_by"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

type PictureRecord struct {
	ID  string `bson:"id"`
	Src string `bson:"src"`
}

// AvailabilityOccupied is the one availability status that marks a listing
// as closed; any other status counts as open.
const AvailabilityOccupied = "occupied"

// ToProperty maps a persisted row to the client shape.
func (r PropertyRecord) ToProperty() Property {
	images := make([]Image, 0, len(r.Pictures))
	for _, pic := range r.Pictures {
		images = append(images, Image{ID: pic.ID, Src: pic.Src})
	}
	return Property{
		ID:        r.ID.Hex(),
		Title:     r.PropertyDetails,
		Price:     r.Price,
		Type:      r.PropertyType,
		Bedrooms:  r.Bedrooms,
		Bathrooms: r.Bathrooms,
		Area:      r.AreaSqft,
		Images:    images,
		Location: Location{
			Division:    r.AddressDivision,
			District:    r.AddressDistrict,
			Thana:       r.AddressThana,
			Area:        r.AddressArea,
			City:        r.AddressCity,
			Coordinates: Coordinates{Lat: r.Latitude, Lng: r.Longitude},
		},
		Amenities: r.Amenities,
		Landlord: Landlord{
			ID:       r.LandlordID,
			Name:     r.LandlordName,
			Phone:    r.LandlordPhone,
			Verified: r.LandlordVerified,
		},
		Availability:     r.Availability,
		Available:        r.Availability != AvailabilityOccupied,
		GenderPreference: r.GenderPreference,
		Furnishing:       r.Furnishing,
		Priority:         r.Priority,
		CreatedAt:        r.CreatedAt,
	}
}

// ToRecord maps a client submission to a persisted row. The caller fills
// in identity fields (ID, CreatedBy, timestamps).
func (p Property) ToRecord() PropertyRecord {
	pictures := make([]PictureRecord, 0, len(p.Images))
	for _, img := range p.Images {
		pictures = append(pictures, PictureRecord{ID: img.ID, Src: img.Src})
	}
	return PropertyRecord{
		PropertyDetails:  p.Title,
		Price:            p.Price,
		PropertyType:     p.Type,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		AreaSqft:         p.Area,
		Pictures:         pictures,
		AddressDivision:  p.Location.Division,
		AddressDistrict:  p.Location.District,
		AddressThana:     p.Location.Thana,
		AddressArea:      p.Location.Area,
		AddressCity:      p.Location.City,
		Latitude:         p.Location.Coordinates.Lat,
		Longitude:        p.Location.Coordinates.Lng,
		Amenities:        p.Amenities,
		GenderPreference: p.GenderPreference,
		Furnishing:       p.Furnishing,
		Availability:     p.Availability,
		Priority:         p.Priority,
		LandlordID:       p.Landlord.ID,
		LandlordName:     p.Landlord.Name,
		LandlordPhone:    p.Landlord.Phone,
		LandlordVerified: p.Landlord.Verified,
	}
}
