package model

// Travel mode values, in the fixed enumeration order used to break
// fastest/cheapest ties.
const (
	ModeFlight = "flight"
	ModeTrain  = "train"
	ModeBus    = "bus"
	ModeDrive  = "drive"
	ModeShip   = "ship"
)

// TravelEstimate is a per-mode time/cost/CO2 estimate for a given distance.
// Within a result set exactly one estimate has Fastest set and exactly one has
// Cheapest set.
type TravelEstimate struct {
	Mode       string  `json:"mode"`
	TimeH      float64 `json:"time_h"`
	Cost       float64 `json:"cost"`
	DistanceKm float64 `json:"distance_km"`
	CO2Kg      float64 `json:"co2_kg"`
	Fastest    bool    `json:"fastest"`
	Cheapest   bool    `json:"cheapest"`
}
