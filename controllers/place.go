package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Thin proxies over the external geocoding and routing services the map
// screens use. One attempt per request; a failure is reported to the
// caller, who can simply search again.

var placeHTTPClient = &http.Client{Timeout: 10 * time.Second}

type PlaceResult struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func geocoderBase() string {
	if base := os.Getenv("GEOCODER_URL"); base != "" {
		return strings.TrimSuffix(base, "/")
	}
	return "https://nominatim.openstreetmap.org"
}

func routerBase() string {
	if base := os.Getenv("ROUTER_URL"); base != "" {
		return strings.TrimSuffix(base, "/")
	}
	return "https://router.project-osrm.org"
}

// SearchPlaces forward-geocodes free text into candidate places.
func SearchPlaces() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			http.Error(w, "q is required", http.StatusBadRequest)
			return
		}

		endpoint := fmt.Sprintf("%s/search?format=json&limit=5&q=%s", geocoderBase(), url.QueryEscape(query))
		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endpoint, nil)
		if err != nil {
			http.Error(w, "Failed to build geocoder request", http.StatusInternalServerError)
			return
		}
		req.Header.Set("User-Agent", "bashafinder-backend")

		resp, err := placeHTTPClient.Do(req)
		if err != nil {
			log.Printf("Geocoder request failed: %v", err)
			http.Error(w, "Place search failed", http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Printf("Geocoder returned status %d", resp.StatusCode)
			http.Error(w, "Place search failed", http.StatusBadGateway)
			return
		}

		var results []PlaceResult
		if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
			log.Printf("Failed to decode geocoder response: %v", err)
			http.Error(w, "Place search failed", http.StatusBadGateway)
			return
		}
		if len(results) == 0 {
			http.Error(w, "No places found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

type routeResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
	Code string `json:"code"`
}

// GetRoute returns distance, duration and geometry between two points.
// from/to are "lng,lat" pairs; mode is driving, walking or cycling.
func GetRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := strings.TrimSpace(r.URL.Query().Get("from"))
		to := strings.TrimSpace(r.URL.Query().Get("to"))
		mode := strings.TrimSpace(r.URL.Query().Get("mode"))
		if from == "" || to == "" {
			http.Error(w, "from and to are required", http.StatusBadRequest)
			return
		}
		switch mode {
		case "":
			mode = "driving"
		case "driving", "walking", "cycling":
		default:
			http.Error(w, "Unsupported travel mode", http.StatusBadRequest)
			return
		}

		endpoint := fmt.Sprintf("%s/route/v1/%s/%s;%s?overview=full&geometries=polyline",
			routerBase(), mode, url.PathEscape(from), url.PathEscape(to))
		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endpoint, nil)
		if err != nil {
			http.Error(w, "Failed to build routing request", http.StatusInternalServerError)
			return
		}

		resp, err := placeHTTPClient.Do(req)
		if err != nil {
			log.Printf("Routing request failed: %v", err)
			http.Error(w, "Routing failed", http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Printf("Router returned status %d", resp.StatusCode)
			http.Error(w, "Routing failed", http.StatusBadGateway)
			return
		}

		var decoded routeResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			log.Printf("Failed to decode routing response: %v", err)
			http.Error(w, "Routing failed", http.StatusBadGateway)
			return
		}
		if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
			http.Error(w, "No route found", http.StatusNotFound)
			return
		}

		route := decoded.Routes[0]
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"distance": route.Distance,
			"duration": route.Duration,
			"geometry": route.Geometry,
		})
	}
}
