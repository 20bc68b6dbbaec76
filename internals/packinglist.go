package internals

import (
	"fmt"
	"strings"

	"github.com/ChitkulLakshya/PackPal/model"
)

type baseItem struct {
	name      string
	essential bool
}

var clothingItems = []baseItem{
	{"Underwear", true},
	{"Socks", true},
	{"T-shirts", true},
	{"Pants/Jeans", true},
	{"Shoes", true},
	{"Jacket", false},
	{"Sweater", false},
	{"Shorts", false},
	{"Pajamas", true},
}

var toiletriesItems = []baseItem{
	{"Toothbrush & Toothpaste", true},
	{"Deodorant", true},
	{"Shampoo & Conditioner", true},
	{"Soap/Body Wash", true},
	{"Sunscreen", false},
	{"Razor", false},
	{"Medications", true},
	{"First Aid Kit", false},
}

var electronicsItems = []baseItem{
	{"Phone Charger", true},
	{"Power Bank", false},
	{"Laptop & Charger", false},
	{"Camera", false},
	{"Headphones", false},
	{"Travel Adapter", false},
}

var documentsItems = []baseItem{
	{"Passport/ID", true},
	{"Travel Insurance", false},
	{"Booking Confirmations", true},
	{"Credit Cards", true},
	{"Cash", true},
	{"Driver's License", false},
}

func newCategory(id, name, icon string, items []baseItem) model.PackingCategory {
	category := model.PackingCategory{
		ID:    id,
		Name:  name,
		Icon:  icon,
		Items: make([]model.PackingItem, 0, len(items)),
	}
	for i, item := range items {
		category.Items = append(category.Items, model.PackingItem{
			ID:        fmt.Sprintf("%s-%d", id, i),
			Name:      item.name,
			Category:  id,
			Packed:    false,
			Essential: item.essential,
		})
	}
	return category
}

func appendItems(category *model.PackingCategory, tag string, items []baseItem) {
	for i, item := range items {
		category.Items = append(category.Items, model.PackingItem{
			ID:        fmt.Sprintf("%s-%s-%d", category.ID, tag, i+1),
			Name:      item.name,
			Category:  category.ID,
			Packed:    false,
			Essential: item.essential,
		})
	}
}

// GeneratePackingList builds a categorized packing list for a trip. The four
// base categories are always present; trip type and weather hint only append
// items. Unrecognized trip types get the base set. Item identifiers are
// deterministic, so identical inputs produce identical lists.
//
// The weather hint match is case-insensitive ("Rain" and "rain" both count).
func GeneratePackingList(tripType, destination, weatherHint string) []model.PackingCategory {
	categories := []model.PackingCategory{
		newCategory("clothing", "Clothing", "👕", clothingItems),
		newCategory("toiletries", "Toiletries", "🧴", toiletriesItems),
		newCategory("electronics", "Electronics", "🔌", electronicsItems),
		newCategory("documents", "Travel Documents", "📄", documentsItems),
	}

	switch tripType {
	case model.TripTypeBusiness:
		appendItems(&categories[0], "business", []baseItem{
			{"Business Suit", true},
			{"Dress Shoes", true},
		})
		appendItems(&categories[2], "business", []baseItem{
			{"Business Cards", true},
		})
	case model.TripTypeAdventure:
		adventure := model.PackingCategory{
			ID:   "adventure",
			Name: "Adventure Gear",
			Icon: "⛰️",
		}
		appendItems(&adventure, "gear", []baseItem{
			{"Hiking Boots", true},
			{"Backpack", true},
			{"Water Bottle", true},
			{"Flashlight", false},
		})
		categories = append(categories, adventure)
	case model.TripTypeLeisure, model.TripTypeFamily:
		appendItems(&categories[0], "leisure", []baseItem{
			{"Swimsuit", false},
			{"Sandals", false},
		})
	}

	// address categories[0] only here, the switch above may have grown the
	// slice and reallocated its backing array
	if strings.Contains(strings.ToLower(weatherHint), "rain") {
		appendItems(&categories[0], "weather", []baseItem{
			{"Rain Jacket", true},
			{"Umbrella", true},
		})
	}

	return categories
}
