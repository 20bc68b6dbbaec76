package internals

import (
	"errors"
	"math"

	"github.com/ChitkulLakshya/PackPal/model"
)

// ErrNoEstimate is returned when the distance is missing or degenerate and no
// meaningful estimate can be produced.
var ErrNoEstimate = errors.New("no estimate available")

// Average cruising speeds [km/h].
const (
	flightSpeed = 750
	trainSpeed  = 120
	busSpeed    = 70
	shipSpeed   = 30

	// drive fallback when no measured duration is available
	driveDefaultSpeed = 60
	// measured drive durations are clamped to this speed floor
	driveMinSpeed = 50
)

// Boarding / procedure overhead [h].
const (
	flightOverhead = 2.5
	trainOverhead  = 0.5
	busOverhead    = 0.3
)

// CO2 emission factors [kg per passenger-km]. Ship emissions are not modeled.
const (
	flightCO2PerKm = 0.255
	trainCO2PerKm  = 0.014
	busCO2PerKm    = 0.089
	driveCO2PerKm  = 0.12
)

// EstimateOptions selects the mode subset and optionally carries a measured
// drive duration from the routing service.
type EstimateOptions struct {
	// International restricts the mode set to flight and ship.
	International bool
	// DriveDurationH overrides the drive-time heuristic when positive.
	DriveDurationH float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func driveTimeH(distanceKm, measuredDurationH float64) float64 {
	if measuredDurationH > 0 {
		speed := math.Max(distanceKm/measuredDurationH, driveMinSpeed)
		return distanceKm / speed
	}
	return distanceKm / driveDefaultSpeed
}

// EstimateTravelOptions computes per-mode time, cost and CO2 estimates for the
// given distance. The domestic set is {flight, train, bus, drive}, the
// international set {flight, ship}. Exactly one estimate is flagged fastest and
// exactly one cheapest; ties go to the first mode in enumeration order
// {flight, train, bus, drive, ship}.
//
// A zero, negative or non-finite distance yields ErrNoEstimate instead of a
// list of degenerate zero-valued entries.
func EstimateTravelOptions(distanceKm float64, opts EstimateOptions) ([]model.TravelEstimate, error) {
	if distanceKm <= 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return nil, ErrNoEstimate
	}

	d := distanceKm

	flight := model.TravelEstimate{
		Mode:  model.ModeFlight,
		TimeH: d/flightSpeed + flightOverhead,
		Cost:  math.Max(80, d*0.15) + 30,
		CO2Kg: d * flightCO2PerKm,
	}

	var estimates []model.TravelEstimate
	if opts.International {
		ship := model.TravelEstimate{
			Mode:  model.ModeShip,
			TimeH: d / shipSpeed,
			Cost:  d * 0.8,
			CO2Kg: 0,
		}
		estimates = []model.TravelEstimate{flight, ship}
	} else {
		train := model.TravelEstimate{
			Mode:  model.ModeTrain,
			TimeH: d/trainSpeed + trainOverhead,
			Cost:  math.Max(25, d*0.10),
			CO2Kg: d * trainCO2PerKm,
		}
		bus := model.TravelEstimate{
			Mode:  model.ModeBus,
			TimeH: d/busSpeed + busOverhead,
			Cost:  math.Max(15, d*0.05),
			CO2Kg: d * busCO2PerKm,
		}
		drive := model.TravelEstimate{
			Mode:  model.ModeDrive,
			TimeH: driveTimeH(d, opts.DriveDurationH),
			Cost:  d * 0.12,
			CO2Kg: d * driveCO2PerKm,
		}
		estimates = []model.TravelEstimate{flight, train, bus, drive}
	}

	for i := range estimates {
		estimates[i].TimeH = round2(estimates[i].TimeH)
		estimates[i].Cost = round2(estimates[i].Cost)
		estimates[i].DistanceKm = round2(d)
		estimates[i].CO2Kg = round2(estimates[i].CO2Kg)
	}

	// strict comparison keeps the first mode on ties
	fastest := 0
	cheapest := 0
	for i := range estimates {
		if estimates[i].TimeH < estimates[fastest].TimeH {
			fastest = i
		}
		if estimates[i].Cost < estimates[cheapest].Cost {
			cheapest = i
		}
	}
	estimates[fastest].Fastest = true
	estimates[cheapest].Cheapest = true

	return estimates, nil
}
