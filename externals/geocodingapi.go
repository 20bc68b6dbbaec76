package externals

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ChitkulLakshya/PackPal/model"
)

var geocodingBaseUrl = "https://nominatim.openstreetmap.org"

// geocoding response

type GeocodeResult struct {
	Lat         string         `json:"lat"`
	Lon         string         `json:"lon"`
	DisplayName string         `json:"display_name"`
	Address     GeocodeAddress `json:"address"`
}
type GeocodeAddress struct {
	CountryCode string `json:"country_code"`
}

// Location is the resolved place consumed by the travel handlers.
type Location struct {
	Name        string
	Coordinates model.Coordinates
	CountryCode string
}

func InitGeocodingApi(testModeArg string) {
	if testModeArg == "test" {
		// local mock server
		geocodingBaseUrl = "http://localhost:8081"
	}
}

func GeocodePlace(ctx context.Context, query string) (Location, error) {
	baseURL := geocodingBaseUrl + "/search"

	params := url.Values{}
	params.Add("format", "json")
	params.Add("addressdetails", "1")
	params.Add("limit", "1")
	params.Add("q", query)

	fullURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		log.Println("error creating the request: ", err)
		return Location{}, err
	}
	// Nominatim usage policy requires an identifying user agent
	req.Header.Set("User-Agent", "PackPal/1.0")

	start := time.Now()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("error calling the geocoding api: ", err)
		return Location{}, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	elapsed := time.Since(start)
	log.Println("CALL Geocoding API took: ", elapsed)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return Location{}, err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var results []GeocodeResult

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&results)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return Location{}, err
	}

	if len(results) == 0 {
		return Location{}, fmt.Errorf("no results for place %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		log.Println("invalid latitude in response: ", err)
		return Location{}, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		log.Println("invalid longitude in response: ", err)
		return Location{}, err
	}

	return Location{
		Name:        results[0].DisplayName,
		Coordinates: model.Coordinates{Lat: lat, Lon: lon},
		CountryCode: strings.ToUpper(results[0].Address.CountryCode),
	}, nil
}
