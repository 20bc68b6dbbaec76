package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ChitkulLakshya/PackPal/db"
	"github.com/ChitkulLakshya/PackPal/model"
	"gorm.io/gorm"
)

type destinationPayload struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type saveTripRequest struct {
	Destination    string               `json:"destination"`
	Coordinates    *model.Coordinates   `json:"coordinates"`
	Destinations   []destinationPayload `json:"destinations"`
	TripType       string               `json:"trip_type"`
	StartDate      string               `json:"start_date"`
	EndDate        string               `json:"end_date"`
	WeatherSummary string               `json:"weather_summary"`
	TravelOptions  []model.TravelOption `json:"travel_options"`
	Route          []model.Coordinates  `json:"route"`
	TotalTimeH     *float64             `json:"total_time_h"`
	TotalCost      *float64             `json:"total_cost"`
	TotalCO2Kg     *float64             `json:"total_co2_kg"`
}

func HandleTripsUser(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTripsByUser(w, r)
	case "POST":
		createTrip(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getTripsByUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	userID, err := authenticateRequest(r)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tripDAO := db.NewTripDAO(db.GetDB())

	// if I get an empty list, it is not an error
	// declare empty slice and append, in order to have an empty slice and not nil slice
	tripDetailsList := []model.TripDetails{}
	trips, err := tripDAO.GetTripsByUserId(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Error getting trips: ", err)
			http.Error(w, "Error getting trips", http.StatusInternalServerError)
			return
		}
	}
	tripDetailsList = append(tripDetailsList, trips...)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(tripDetailsList)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func createTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	userID, err := authenticateRequest(r)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// decode json data
	var request saveTripRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error decoding JSON: ", err)
		http.Error(w, "Invalid data format", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	tripDetails, ok := buildTripDetails(w, userID, request)
	if !ok {
		return
	}

	// insert trip
	tripDAO := db.NewTripDAO(db.GetDB())
	tripDetails, err = tripDAO.CreateTrip(tripDetails)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(tripDetails)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// buildTripDetails validates the save request and assembles the entities to
// persist. On validation failure it writes the error response and returns
// ok=false.
func buildTripDetails(w http.ResponseWriter, userID int, request saveTripRequest) (model.TripDetails, bool) {
	// check trip type
	if !model.IsValidTripType(request.TripType) {
		log.Println("Invalid trip type")
		http.Error(w, "Invalid trip type", http.StatusBadRequest)
		return model.TripDetails{}, false
	}

	// check dates
	startDate, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		log.Println("Wrong date format: ", err)
		http.Error(w, "Wrong start date format", http.StatusBadRequest)
		return model.TripDetails{}, false
	}
	endDate, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		log.Println("Wrong date format: ", err)
		http.Error(w, "Wrong end date format", http.StatusBadRequest)
		return model.TripDetails{}, false
	}
	if endDate.Before(startDate) {
		log.Println("End date before start date")
		http.Error(w, "End date cannot be before start date", http.StatusBadRequest)
		return model.TripDetails{}, false
	}

	// exactly one of single destination / destination list
	hasSingle := request.Destination != ""
	hasMulti := len(request.Destinations) > 0
	if hasSingle == hasMulti {
		log.Println("Exactly one of destination and destinations must be provided")
		http.Error(w, "Exactly one of destination and destinations must be provided", http.StatusBadRequest)
		return model.TripDetails{}, false
	}

	// check travel options data
	for _, option := range request.TravelOptions {
		if option.Mode != model.ModeFlight &&
			option.Mode != model.ModeTrain &&
			option.Mode != model.ModeBus &&
			option.Mode != model.ModeDrive &&
			option.Mode != model.ModeShip {
			log.Println("Invalid data")
			http.Error(w, "Invalid travel mode", http.StatusBadRequest)
			return model.TripDetails{}, false
		}
		if option.TimeH < 0 || option.Cost < 0 || option.DistanceKm < 0 || option.CO2Kg < 0 {
			log.Println("Invalid data")
			http.Error(w, "Invalid travel option values", http.StatusBadRequest)
			return model.TripDetails{}, false
		}
	}

	// check totals
	if (request.TotalTimeH != nil && *request.TotalTimeH < 0) ||
		(request.TotalCost != nil && *request.TotalCost < 0) ||
		(request.TotalCO2Kg != nil && *request.TotalCO2Kg < 0) {
		log.Println("Invalid data")
		http.Error(w, "Invalid totals", http.StatusBadRequest)
		return model.TripDetails{}, false
	}

	trip := model.Trip{
		UserID:           userID,
		TripType:         request.TripType,
		StartDate:        startDate,
		EndDate:          endDate,
		MultiDestination: hasMulti,
		WeatherSummary:   request.WeatherSummary,
		Route:            request.Route,
		TotalTimeH:       request.TotalTimeH,
		TotalCost:        request.TotalCost,
		TotalCO2Kg:       request.TotalCO2Kg,
	}

	var destinations []model.Destination
	if hasSingle {
		destination := model.Destination{
			Name:           request.Destination,
			NumDestination: 1,
		}
		if request.Coordinates != nil {
			destination.Latitude = request.Coordinates.Lat
			destination.Longitude = request.Coordinates.Lon
		}
		destinations = append(destinations, destination)
	} else {
		for i, payload := range request.Destinations {
			if payload.Name == "" {
				log.Println("Missing destination name")
				http.Error(w, "Missing destination name", http.StatusBadRequest)
				return model.TripDetails{}, false
			}
			destinations = append(destinations, model.Destination{
				Name:           payload.Name,
				Latitude:       payload.Lat,
				Longitude:      payload.Lon,
				NumDestination: i + 1,
			})
		}
	}

	return model.TripDetails{
		Trip:         trip,
		Destinations: destinations,
		Options:      request.TravelOptions,
	}, true
}

func HandleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "DELETE":
		deleteTrip(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func deleteTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	userID, err := authenticateRequest(r)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// extract trip id from URI
	path := r.URL.Path
	parts := strings.Split(path, "/")
	if len(parts) < 4 || parts[3] == "" {
		log.Println("Invalid path")
		http.Error(w, "Trip ID not provided", http.StatusBadRequest)
		return
	}
	tripIDStr := parts[3]
	tripID, err := strconv.Atoi(tripIDStr)
	if err != nil || tripID < 0 {
		log.Println("Invalid trip ID")
		http.Error(w, "Invalid trip ID", http.StatusBadRequest)
		return
	}

	tripDAO := db.NewTripDAO(db.GetDB())
	trip, err := tripDAO.GetTripById(tripID)
	if err != nil {
		log.Println("Trip not found: ", err)
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	// deletion is scoped to the owning user
	if trip.UserID != userID {
		log.Println("Trip belongs to another user")
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	err = tripDAO.DeleteTrip(tripID)
	if err != nil {
		log.Println("Error interacting with the db: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
