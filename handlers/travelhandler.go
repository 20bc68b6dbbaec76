package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/ChitkulLakshya/PackPal/externals"
	"github.com/ChitkulLakshya/PackPal/internals"
	"github.com/ChitkulLakshya/PackPal/model"
)

type TravelOptionsResponse struct {
	From            string                 `json:"from"`
	To              string                 `json:"to"`
	DistanceKm      float64                `json:"distance_km"`
	IsInternational bool                   `json:"is_international"`
	Options         []model.TravelEstimate `json:"options"`
	Route           []model.Coordinates    `json:"route,omitempty"`
	WeatherSummary  string                 `json:"weather_summary,omitempty"`
}

func HandleTravelOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	// get request parameters
	from := r.URL.Query().Get("from")
	if from == "" {
		log.Println("Missing 'from' parameter")
		http.Error(w, "Missing 'from' parameter", http.StatusBadRequest)
		return
	}
	to := r.URL.Query().Get("to")
	if to == "" {
		log.Println("Missing 'to' parameter")
		http.Error(w, "Missing 'to' parameter", http.StatusBadRequest)
		return
	}

	// the request context cancels external calls when the caller goes away,
	// so late results are discarded instead of applied
	ctx := r.Context()

	fromLocation, toLocation, err := geocodeBothEnds(ctx, from, to)
	if err != nil {
		log.Println("Geocoding failed: ", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// road route; great-circle fallback when the routing service fails
	distanceKm := 0.0
	driveDurationH := 0.0
	var routeGeometry []model.Coordinates
	route, err := externals.GetDrivingRoute(ctx, []model.Coordinates{fromLocation.Coordinates, toLocation.Coordinates})
	if err == nil {
		distanceKm = route.DistanceKm
		driveDurationH = route.DurationH
		routeGeometry = route.Geometry
	} else {
		log.Println("Routing failed, falling back to great-circle distance: ", err)
		distanceKm = internals.HaversineKm(fromLocation.Coordinates, toLocation.Coordinates)
	}

	isInternational := fromLocation.CountryCode != toLocation.CountryCode

	estimates, err := internals.EstimateTravelOptions(distanceKm, internals.EstimateOptions{
		International:  isInternational,
		DriveDurationH: driveDurationH,
	})
	if err != nil {
		log.Println("No estimate available: ", err)
		http.Error(w, "No estimate available", http.StatusBadGateway)
		return
	}

	// destination weather feeds the packing hint, missing weather is not an error
	weatherSummary, err := externals.GetWeatherSummary(ctx, toLocation.Coordinates)
	if err != nil {
		log.Println("Weather unavailable: ", err)
		weatherSummary = ""
	}

	response := TravelOptionsResponse{
		From:            fromLocation.Name,
		To:              toLocation.Name,
		DistanceKm:      estimates[0].DistanceKm,
		IsInternational: isInternational,
		Options:         estimates,
		Route:           routeGeometry,
		WeatherSummary:  weatherSummary,
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

// geocodeBothEnds resolves origin and destination in parallel; both must
// resolve before any distance-dependent calculation proceeds.
func geocodeBothEnds(ctx context.Context, from, to string) (externals.Location, externals.Location, error) {
	var fromLocation, toLocation externals.Location
	var fromErr, toErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		fromLocation, fromErr = externals.GeocodePlace(ctx, from)
	}()
	go func() {
		defer wg.Done()
		toLocation, toErr = externals.GeocodePlace(ctx, to)
	}()
	wg.Wait()

	if fromErr != nil {
		return externals.Location{}, externals.Location{}, errors.New("could not find location: " + from)
	}
	if toErr != nil {
		return externals.Location{}, externals.Location{}, errors.New("could not find location: " + to)
	}

	return fromLocation, toLocation, nil
}
