package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bashafinder/backend/models"
	"github.com/bashafinder/backend/search"
	"github.com/bashafinder/backend/store"
	"github.com/gorilla/mux"
)

// Guest browsing. These endpoints need no session: they serve from the
// shared listing snapshot and filter it in memory, so the map and home
// screens work before sign-in.

// BrowseListings filters the current snapshot. An empty snapshot (or
// ?refresh=true) triggers a refetch first; a fetch error leaves whatever
// snapshot we had and is only fatal when there is nothing to serve.
func BrowseListings(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Len() == 0 || r.URL.Query().Get("refresh") == "true" {
			if _, err := s.Fetch(r.Context(), search.Filters{}); err != nil && err != store.ErrStale {
				log.Printf("Listing snapshot refresh failed: %v", err)
				if s.Len() == 0 {
					http.Error(w, "Listings unavailable", http.StatusServiceUnavailable)
					return
				}
			}
		}

		filters := search.ParseQuery(r.URL.Query())
		results := search.Apply(s.All(), filters)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Listings",
			Data:    results,
		})
	}
}

func GetListing(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		p, ok := s.GetByID(id)
		if !ok {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}
