package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ChitkulLakshya/PackPal/internals"
)

// HandlePackingList serves a generated packing list for the given trip
// parameters. Unknown trip types are not an error, they get the base list.
func HandlePackingList(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	tripType := r.URL.Query().Get("trip_type")
	if tripType == "" {
		log.Println("Missing trip type")
		http.Error(w, "Missing trip type", http.StatusBadRequest)
		return
	}
	destination := r.URL.Query().Get("destination")
	weatherHint := r.URL.Query().Get("weather")

	categories := internals.GeneratePackingList(tripType, destination, weatherHint)

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(categories)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}
