package internals

import (
	"testing"

	"github.com/ChitkulLakshya/PackPal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCategory(t *testing.T, categories []model.PackingCategory, id string) model.PackingCategory {
	t.Helper()
	for _, category := range categories {
		if category.ID == id {
			return category
		}
	}
	t.Fatalf("category %q not found", id)
	return model.PackingCategory{}
}

func itemNames(category model.PackingCategory) []string {
	names := make([]string, 0, len(category.Items))
	for _, item := range category.Items {
		names = append(names, item.Name)
	}
	return names
}

func TestGeneratePackingList_BaseCategories(t *testing.T) {
	tripTypes := []string{
		model.TripTypeBusiness,
		model.TripTypeLeisure,
		model.TripTypeAdventure,
		model.TripTypeFamily,
		model.TripTypeRomantic,
		model.TripTypeSolo,
		"cruise", // unrecognized, falls back to base set
	}

	for _, tripType := range tripTypes {
		t.Run(tripType, func(t *testing.T) {
			categories := GeneratePackingList(tripType, "Rome", "")

			require.GreaterOrEqual(t, len(categories), 4)
			assert.Equal(t, "clothing", categories[0].ID)
			assert.Equal(t, "toiletries", categories[1].ID)
			assert.Equal(t, "electronics", categories[2].ID)
			assert.Equal(t, "documents", categories[3].ID)

			for _, category := range categories {
				assert.NotEmpty(t, category.Items, "category %s is empty", category.ID)
				for _, item := range category.Items {
					assert.False(t, item.Packed, "item %s starts packed", item.ID)
					assert.Equal(t, category.ID, item.Category)
				}
			}
		})
	}
}

func TestGeneratePackingList_Business(t *testing.T) {
	categories := GeneratePackingList(model.TripTypeBusiness, "London", "")

	// augmentation appends to existing categories, no new one is created
	require.Len(t, categories, 4)

	clothing := findCategory(t, categories, "clothing")
	assert.Contains(t, itemNames(clothing), "Business Suit")
	assert.Contains(t, itemNames(clothing), "Dress Shoes")

	electronics := findCategory(t, categories, "electronics")
	assert.Contains(t, itemNames(electronics), "Business Cards")
}

func TestGeneratePackingList_Adventure(t *testing.T) {
	categories := GeneratePackingList(model.TripTypeAdventure, "Manali", "")

	require.Len(t, categories, 5)

	adventure := findCategory(t, categories, "adventure")
	assert.Equal(t, "Adventure Gear", adventure.Name)
	require.Len(t, adventure.Items, 4)

	essentialCount := 0
	for _, item := range adventure.Items {
		if item.Essential {
			essentialCount++
		}
	}
	assert.Equal(t, 3, essentialCount)
}

func TestGeneratePackingList_LeisureAndFamily(t *testing.T) {
	for _, tripType := range []string{model.TripTypeLeisure, model.TripTypeFamily} {
		t.Run(tripType, func(t *testing.T) {
			categories := GeneratePackingList(tripType, "Goa", "")

			clothing := findCategory(t, categories, "clothing")
			for _, name := range []string{"Swimsuit", "Sandals"} {
				found := false
				for _, item := range clothing.Items {
					if item.Name == name {
						found = true
						assert.False(t, item.Essential, "%s should not be essential", name)
					}
				}
				assert.True(t, found, "%s missing from clothing", name)
			}
		})
	}
}

func TestGeneratePackingList_WeatherHint(t *testing.T) {
	tests := []struct {
		name        string
		weatherHint string
		wantRain    bool
	}{
		{name: "no hint", weatherHint: "", wantRain: false},
		{name: "clear weather", weatherHint: "Clear, 24°C", wantRain: false},
		{name: "lowercase rain", weatherHint: "light rain expected", wantRain: true},
		{name: "capitalized rain", weatherHint: "Rain, 14°C", wantRain: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline := findCategory(t, GeneratePackingList(model.TripTypeSolo, "Paris", ""), "clothing")
			clothing := findCategory(t, GeneratePackingList(model.TripTypeSolo, "Paris", tt.weatherHint), "clothing")

			if tt.wantRain {
				require.Len(t, clothing.Items, len(baseline.Items)+2)
				names := itemNames(clothing)
				assert.Contains(t, names, "Rain Jacket")
				assert.Contains(t, names, "Umbrella")
				for _, item := range clothing.Items {
					if item.Name == "Rain Jacket" || item.Name == "Umbrella" {
						assert.True(t, item.Essential)
					}
				}
			} else {
				assert.Len(t, clothing.Items, len(baseline.Items))
			}
		})
	}
}

func TestGeneratePackingList_AdventureWithRain(t *testing.T) {
	// the adventure branch grows the category slice, the rain items must
	// still land in the clothing category that is returned
	categories := GeneratePackingList(model.TripTypeAdventure, "Manali", "Rain, 14°C")

	require.Len(t, categories, 5)

	clothing := findCategory(t, categories, "clothing")
	require.Len(t, clothing.Items, len(clothingItems)+2)
	names := itemNames(clothing)
	assert.Contains(t, names, "Rain Jacket")
	assert.Contains(t, names, "Umbrella")

	adventure := findCategory(t, categories, "adventure")
	assert.Len(t, adventure.Items, 4)
}

func TestGeneratePackingList_UniqueIdsPerCategory(t *testing.T) {
	// rain hint plus business exercises every id scheme at once
	categories := GeneratePackingList(model.TripTypeBusiness, "London", "Rain, 10°C")

	for _, category := range categories {
		seen := map[string]bool{}
		for _, item := range category.Items {
			assert.False(t, seen[item.ID], "duplicate id %s in category %s", item.ID, category.ID)
			seen[item.ID] = true
		}
	}
}

func TestGeneratePackingList_Deterministic(t *testing.T) {
	first := GeneratePackingList(model.TripTypeAdventure, "Manali", "rain")
	second := GeneratePackingList(model.TripTypeAdventure, "Manali", "rain")

	assert.Equal(t, first, second)
}
