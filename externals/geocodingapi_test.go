package externals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ChitkulLakshya/PackPal/mockservers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodePlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(mockservers.GeocodingApiHandler))
	defer server.Close()

	oldBaseUrl := geocodingBaseUrl
	geocodingBaseUrl = server.URL
	defer func() { geocodingBaseUrl = oldBaseUrl }()

	location, err := GeocodePlace(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris, Île-de-France, France", location.Name)
	assert.Equal(t, "FR", location.CountryCode)
	assert.InDelta(t, 48.8566, location.Coordinates.Lat, 1e-4)
	assert.InDelta(t, 2.3522, location.Coordinates.Lon, 1e-4)
}

func TestGeocodePlace_UnknownPlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(mockservers.GeocodingApiHandler))
	defer server.Close()

	oldBaseUrl := geocodingBaseUrl
	geocodingBaseUrl = server.URL
	defer func() { geocodingBaseUrl = oldBaseUrl }()

	_, err := GeocodePlace(context.Background(), "Atlantis")
	assert.Error(t, err)
}

func TestGeocodePlace_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(mockservers.GeocodingApiHandler))
	defer server.Close()

	oldBaseUrl := geocodingBaseUrl
	geocodingBaseUrl = server.URL
	defer func() { geocodingBaseUrl = oldBaseUrl }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GeocodePlace(ctx, "Paris")
	assert.Error(t, err)
}
