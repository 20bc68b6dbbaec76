package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ChitkulLakshya/PackPal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePackingList(t *testing.T) {
	r := httptest.NewRequest("GET", "/packing/list?trip_type=adventure&destination=Manali&weather=Rain%2C+14%C2%B0C", nil)
	w := httptest.NewRecorder()

	HandlePackingList(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var categories []model.PackingCategory
	err := json.NewDecoder(w.Body).Decode(&categories)
	require.NoError(t, err)

	// base four plus adventure gear
	require.Len(t, categories, 5)
	assert.Equal(t, "adventure", categories[4].ID)

	// rain hint adds the two clothing items
	names := []string{}
	for _, item := range categories[0].Items {
		names = append(names, item.Name)
	}
	assert.Contains(t, names, "Rain Jacket")
	assert.Contains(t, names, "Umbrella")
}

func TestHandlePackingList_MissingTripType(t *testing.T) {
	r := httptest.NewRequest("GET", "/packing/list", nil)
	w := httptest.NewRecorder()

	HandlePackingList(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePackingList_MethodNotAllowed(t *testing.T) {
	r := httptest.NewRequest("POST", "/packing/list", nil)
	w := httptest.NewRecorder()

	HandlePackingList(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
