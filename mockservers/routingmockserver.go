package mockservers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/ChitkulLakshya/PackPal/internals"
	"github.com/ChitkulLakshya/PackPal/model"
)

// road distances are longer than great-circle ones
const roadFactor = 1.25

// average driving speed for the mocked duration
const mockDriveSpeedKmh = 80.0

func StartRoutingApiServer() {
	http.HandleFunc("/route/v1/driving/", RoutingApiHandler)

	log.Println("Routing API mock server starting on port 8082")

	err := http.ListenAndServe(":8082", nil)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Routing API mock server")
	}
}

func RoutingApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// extract lon,lat;lon,lat... from the path
	coordsPart := strings.TrimPrefix(r.URL.Path, "/route/v1/driving/")
	pairs := strings.Split(coordsPart, ";")
	if len(pairs) < 2 {
		log.Println("Missing coordinates")
		http.Error(w, `{"code":"InvalidUrl"}`, http.StatusBadRequest)
		return
	}

	var points []model.Coordinates
	for _, pair := range pairs {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			log.Println("Invalid coordinate pair")
			http.Error(w, `{"code":"InvalidUrl"}`, http.StatusBadRequest)
			return
		}
		lon, err1 := strconv.ParseFloat(parts[0], 64)
		lat, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			log.Println("Invalid coordinate value")
			http.Error(w, `{"code":"InvalidUrl"}`, http.StatusBadRequest)
			return
		}
		points = append(points, model.Coordinates{Lat: lat, Lon: lon})
	}

	// approximate each leg as scaled great-circle distance
	totalKm := 0.0
	for i := 1; i < len(points); i++ {
		totalKm += internals.HaversineKm(points[i-1], points[i]) * roadFactor
	}

	geometry := make([][]float64, 0, len(points))
	for _, p := range points {
		geometry = append(geometry, []float64{p.Lon, p.Lat})
	}

	response := map[string]interface{}{
		"code": "Ok",
		"routes": []map[string]interface{}{
			{
				"distance": totalKm * 1000,
				"duration": totalKm / mockDriveSpeedKmh * 3600,
				"geometry": map[string]interface{}{
					"coordinates": geometry,
				},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
