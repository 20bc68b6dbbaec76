package externals

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ChitkulLakshya/PackPal/model"
)

var routingBaseUrl = "https://router.project-osrm.org"

// routing response

type OsrmResponse struct {
	Code   string      `json:"code"`
	Routes []OsrmRoute `json:"routes"`
}
type OsrmRoute struct {
	Distance float64       `json:"distance"`
	Duration float64       `json:"duration"`
	Geometry *OsrmGeometry `json:"geometry"`
}
type OsrmGeometry struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// Route is a computed driving route between an ordered sequence of points.
type Route struct {
	DistanceKm float64
	DurationH  float64
	Geometry   []model.Coordinates
}

func InitRoutingApi(testModeArg string) {
	if testModeArg == "test" {
		// local mock server
		routingBaseUrl = "http://localhost:8082"
	}
}

func GetDrivingRoute(ctx context.Context, points []model.Coordinates) (Route, error) {
	if len(points) < 2 {
		return Route{}, fmt.Errorf("at least two points required")
	}

	// OSRM wants lon,lat pairs separated by semicolons
	pairs := make([]string, 0, len(points))
	for _, p := range points {
		pairs = append(pairs, strconv.FormatFloat(p.Lon, 'f', 6, 64)+","+strconv.FormatFloat(p.Lat, 'f', 6, 64))
	}
	fullURL := routingBaseUrl + "/route/v1/driving/" + strings.Join(pairs, ";") + "?overview=full&geometries=geojson"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		log.Println("error creating the request: ", err)
		return Route{}, err
	}

	start := time.Now()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("error calling the routing api: ", err)
		return Route{}, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	elapsed := time.Since(start)
	log.Println("CALL Routing API took: ", elapsed)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return Route{}, err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return Route{}, fmt.Errorf("HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response OsrmResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return Route{}, err
	}

	if response.Code != "Ok" || len(response.Routes) == 0 {
		log.Println("Missing data in the response")
		return Route{}, fmt.Errorf("missing data in response")
	}

	osrmRoute := response.Routes[0]

	// geometry arrives as [lon, lat] pairs, flip to lat/lon
	var geometry []model.Coordinates
	if osrmRoute.Geometry != nil {
		for _, pair := range osrmRoute.Geometry.Coordinates {
			if len(pair) < 2 {
				continue
			}
			geometry = append(geometry, model.Coordinates{Lat: pair[1], Lon: pair[0]})
		}
	}

	return Route{
		DistanceKm: osrmRoute.Distance / 1000,
		DurationH:  osrmRoute.Duration / 3600,
		Geometry:   geometry,
	}, nil
}
