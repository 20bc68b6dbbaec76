package mockservers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

func StartWeatherApiServer() {
	http.HandleFunc("/data/2.5/weather", WeatherApiHandler)

	log.Println("Weather API mock server starting on port 8083")

	err := http.ListenAndServe(":8083", nil)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Weather API mock server")
	}
}

func WeatherApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// extract latitude
	latString := r.URL.Query().Get("lat")
	if latString == "" {
		log.Println("Missing latitude value")
		http.Error(w, "Missing latitude value", http.StatusBadRequest)
		return
	}
	lat, err := strconv.ParseFloat(latString, 64)
	if err != nil {
		log.Println("Invalid latitude value")
		http.Error(w, "Invalid latitude value", http.StatusBadRequest)
		return
	}

	// deterministic canned conditions: rainy up north, clear further south
	condition := "Clear"
	description := "clear sky"
	temp := 24.6
	if lat > 50 {
		condition = "Rain"
		description = "light rain"
		temp = 14.2
	}

	response := map[string]interface{}{
		"weather": []map[string]string{
			{"main": condition, "description": description},
		},
		"main": map[string]float64{
			"temp": temp,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
