package externals

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ChitkulLakshya/PackPal/model"
	"github.com/joho/godotenv"
)

var weatherBaseUrl = "https://api.openweathermap.org"
var weatherApiKey string

// weather response

type WeatherResponse struct {
	Weather []WeatherCondition `json:"weather"`
	Main    WeatherMain        `json:"main"`
}
type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}
type WeatherMain struct {
	Temp float64 `json:"temp"`
}

func InitWeatherApi(testModeArg string) {
	if testModeArg == "test" {
		// local mock server, ignores the api key
		weatherBaseUrl = "http://localhost:8083"
		return
	}

	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	weatherApiKey = os.Getenv("OPENWEATHER_API_KEY")
}

// GetWeatherSummary returns a short condition summary for the given point,
// e.g. "Rain, 18°C". The summary feeds the packing list generator as its
// weather hint.
func GetWeatherSummary(ctx context.Context, point model.Coordinates) (string, error) {
	baseURL := weatherBaseUrl + "/data/2.5/weather"

	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(point.Lat, 'f', 6, 64))
	params.Add("lon", strconv.FormatFloat(point.Lon, 'f', 6, 64))
	params.Add("units", "metric")
	params.Add("appid", weatherApiKey)

	fullURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		log.Println("error creating the request: ", err)
		return "", err
	}

	start := time.Now()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("error calling the weather api: ", err)
		return "", err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	elapsed := time.Since(start)
	log.Println("CALL Weather API took: ", elapsed)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return "", err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response WeatherResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return "", err
	}

	if len(response.Weather) == 0 {
		log.Println("Missing data in the response")
		return "", fmt.Errorf("missing data in response")
	}

	return fmt.Sprintf("%s, %d°C", response.Weather[0].Main, int(math.Round(response.Main.Temp))), nil
}
