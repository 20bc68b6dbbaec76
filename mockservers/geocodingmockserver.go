package mockservers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type mockPlace struct {
	Lat         string
	Lon         string
	DisplayName string
	CountryCode string
}

// small canned gazetteer, enough for test flows
var mockPlaces = map[string]mockPlace{
	"paris":    {"48.8566", "2.3522", "Paris, Île-de-France, France", "fr"},
	"london":   {"51.5074", "-0.1278", "London, Greater London, England, United Kingdom", "gb"},
	"rome":     {"41.9028", "12.4964", "Rome, Lazio, Italy", "it"},
	"milan":    {"45.4642", "9.1900", "Milan, Lombardy, Italy", "it"},
	"new york": {"40.7128", "-74.0060", "New York, United States", "us"},
	"mumbai":   {"19.0760", "72.8777", "Mumbai, Maharashtra, India", "in"},
	"delhi":    {"28.6139", "77.2090", "Delhi, India", "in"},
	"goa":      {"15.2993", "74.1240", "Goa, India", "in"},
}

func StartGeocodingApiServer() {
	http.HandleFunc("/search", GeocodingApiHandler)

	log.Println("Geocoding API mock server starting on port 8081")

	err := http.ListenAndServe(":8081", nil)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Geocoding API mock server")
	}
}

func GeocodingApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// extract place query
	query := r.URL.Query().Get("q")
	if query == "" {
		log.Println("Missing place query")
		http.Error(w, "Missing place query", http.StatusBadRequest)
		return
	}

	place, found := mockPlaces[strings.ToLower(strings.TrimSpace(query))]

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// unknown places get an empty result list, like the real service
	results := []map[string]interface{}{}
	if found {
		results = append(results, map[string]interface{}{
			"lat":          place.Lat,
			"lon":          place.Lon,
			"display_name": place.DisplayName,
			"address": map[string]string{
				"country_code": place.CountryCode,
			},
		})
	}

	err := json.NewEncoder(w).Encode(results)
	if err != nil {
		log.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
