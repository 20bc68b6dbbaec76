package model

import "time"

// Trip classification values, driving packing-list augmentation.
const (
	TripTypeBusiness  = "business"
	TripTypeLeisure   = "leisure"
	TripTypeAdventure = "adventure"
	TripTypeFamily    = "family"
	TripTypeRomantic  = "romantic"
	TripTypeSolo      = "solo"
)

func IsValidTripType(tripType string) bool {
	switch tripType {
	case TripTypeBusiness, TripTypeLeisure, TripTypeAdventure, TripTypeFamily, TripTypeRomantic, TripTypeSolo:
		return true
	}
	return false
}

type Trip struct {
	TripID           int           `gorm:"column:id_trip;primaryKey;autoIncrement" json:"trip_id"`
	UserID           int           `gorm:"column:id_user;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user_id"`
	TripType         string        `gorm:"column:trip_type;type:text;not null" json:"trip_type"`
	StartDate        time.Time     `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate          time.Time     `gorm:"column:end_date;type:date;not null" json:"end_date"`
	MultiDestination bool          `gorm:"column:multi_destination;type:boolean;not null" json:"multi_destination"`
	WeatherSummary   string        `gorm:"column:weather_summary;type:text" json:"weather_summary,omitempty"`
	Route            []Coordinates `gorm:"column:route;type:jsonb;serializer:json" json:"route,omitempty"`
	TotalTimeH       *float64      `gorm:"column:total_time_h;type:numeric" json:"total_time_h,omitempty"`
	TotalCost        *float64      `gorm:"column:total_cost;type:numeric" json:"total_cost,omitempty"`
	TotalCO2Kg       *float64      `gorm:"column:total_co2_kg;type:numeric" json:"total_co2_kg,omitempty"`
	CreatedAt        time.Time     `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (Trip) TableName() string {
	return "trip"
}

type Destination struct {
	DestinationID  int     `gorm:"column:id_destination;primaryKey;autoIncrement" json:"destination_id"`
	TripID         int     `gorm:"column:id_trip;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"trip_id"`
	Name           string  `gorm:"column:name;type:text;not null" json:"name"`
	Latitude       float64 `gorm:"column:latitude;type:numeric;not null" json:"latitude"`
	Longitude      float64 `gorm:"column:longitude;type:numeric;not null" json:"longitude"`
	NumDestination int     `gorm:"column:num_destination;type:integer;not null" json:"num_destination"`
}

func (Destination) TableName() string {
	return "destination"
}

// TravelOption is a persisted TravelEstimate attached to a saved trip.
type TravelOption struct {
	OptionID   int     `gorm:"column:id_option;primaryKey;autoIncrement" json:"option_id"`
	TripID     int     `gorm:"column:id_trip;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"trip_id"`
	Mode       string  `gorm:"column:mode;type:text;not null" json:"mode"`
	TimeH      float64 `gorm:"column:time_h;type:numeric;not null" json:"time_h"`
	Cost       float64 `gorm:"column:cost;type:numeric;not null" json:"cost"`
	DistanceKm float64 `gorm:"column:distance_km;type:numeric;not null" json:"distance_km"`
	CO2Kg      float64 `gorm:"column:co2_kg;type:numeric;not null" json:"co2_kg"`
	Fastest    bool    `gorm:"column:fastest;type:boolean;not null" json:"fastest"`
	Cheapest   bool    `gorm:"column:cheapest;type:boolean;not null" json:"cheapest"`
}

func (TravelOption) TableName() string {
	return "travel_option"
}

type TripDetails struct {
	Trip         Trip           `json:"trip"`
	Destinations []Destination  `json:"destinations"`
	Options      []TravelOption `json:"travel_options"`
}

// GetFinalDestination returns the last destination of the trip, or nil for a
// trip with no destinations.
func (td *TripDetails) GetFinalDestination() *Destination {
	maxNumDestination := -1
	finalDestination := Destination{}
	for i := range td.Destinations {
		if td.Destinations[i].NumDestination > maxNumDestination {
			maxNumDestination = td.Destinations[i].NumDestination
			finalDestination = td.Destinations[i]
		}
	}

	if maxNumDestination == -1 {
		return nil
	} else {
		return &finalDestination
	}
}
