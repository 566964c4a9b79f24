package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/bashafinder/backend/geo"
)

// The cascading address pickers load their options from these endpoints.
// An unset or unknown parent id simply yields an empty list.

func GetDivisions(catalog *geo.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog.Divisions())
	}
}

func GetDistricts(catalog *geo.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog.Districts(r.URL.Query().Get("division")))
	}
}

func GetUpazilas(catalog *geo.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog.Upazilas(r.URL.Query().Get("district")))
	}
}

func GetAreas(catalog *geo.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog.Areas(r.URL.Query().Get("upazila")))
	}
}
