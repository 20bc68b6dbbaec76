package internals

import (
	"testing"

	"github.com/ChitkulLakshya/PackPal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modesOf(estimates []model.TravelEstimate) []string {
	modes := make([]string, 0, len(estimates))
	for _, estimate := range estimates {
		modes = append(modes, estimate.Mode)
	}
	return modes
}

func estimateFor(t *testing.T, estimates []model.TravelEstimate, mode string) model.TravelEstimate {
	t.Helper()
	for _, estimate := range estimates {
		if estimate.Mode == mode {
			return estimate
		}
	}
	t.Fatalf("mode %q not in result set", mode)
	return model.TravelEstimate{}
}

func TestEstimateTravelOptions_DomesticFlight(t *testing.T) {
	estimates, err := EstimateTravelOptions(1000, EstimateOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"flight", "train", "bus", "drive"}, modesOf(estimates))

	flight := estimateFor(t, estimates, model.ModeFlight)
	// 1000/750 + 2.5, rounded to 2 decimals
	assert.Equal(t, 3.83, flight.TimeH)
	assert.Equal(t, 180.0, flight.Cost)
	assert.Equal(t, 255.0, flight.CO2Kg)
	assert.Equal(t, 1000.0, flight.DistanceKm)
}

func TestEstimateTravelOptions_ExactlyOneFastestCheapest(t *testing.T) {
	distances := []float64{1, 12.5, 100, 350, 1000, 4200, 12000}

	for _, distance := range distances {
		for _, international := range []bool{false, true} {
			estimates, err := EstimateTravelOptions(distance, EstimateOptions{International: international})
			require.NoError(t, err)

			fastest := 0
			cheapest := 0
			for _, estimate := range estimates {
				if estimate.Fastest {
					fastest++
				}
				if estimate.Cheapest {
					cheapest++
				}
			}
			assert.Equal(t, 1, fastest, "distance %.1f international %v", distance, international)
			assert.Equal(t, 1, cheapest, "distance %.1f international %v", distance, international)
		}
	}
}

func TestEstimateTravelOptions_Selection(t *testing.T) {
	// at 100 km the train wins on time and the drive on cost
	estimates, err := EstimateTravelOptions(100, EstimateOptions{})
	require.NoError(t, err)

	train := estimateFor(t, estimates, model.ModeTrain)
	assert.True(t, train.Fastest)

	drive := estimateFor(t, estimates, model.ModeDrive)
	assert.True(t, drive.Cheapest)
	assert.Equal(t, 12.0, drive.Cost)
}

func TestEstimateTravelOptions_International(t *testing.T) {
	estimates, err := EstimateTravelOptions(100, EstimateOptions{International: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"flight", "ship"}, modesOf(estimates))

	flight := estimateFor(t, estimates, model.ModeFlight)
	ship := estimateFor(t, estimates, model.ModeShip)

	assert.True(t, flight.Fastest)
	assert.True(t, ship.Cheapest)
	assert.Equal(t, 80.0, ship.Cost)
	// ship emissions are not modeled
	assert.Equal(t, 0.0, ship.CO2Kg)
}

func TestEstimateTravelOptions_DriveDuration(t *testing.T) {
	tests := []struct {
		name           string
		distanceKm     float64
		driveDurationH float64
		wantTimeH      float64
	}{
		{
			name:       "no measured duration uses heuristic speed",
			distanceKm: 120,
			wantTimeH:  2.0, // 120 km at 60 km/h
		},
		{
			name:           "measured duration overrides heuristic",
			distanceKm:     100,
			driveDurationH: 1.0,
			wantTimeH:      1.0, // implied 100 km/h, above the floor
		},
		{
			name:           "implausibly slow duration clamps to the speed floor",
			distanceKm:     100,
			driveDurationH: 10.0,
			wantTimeH:      2.0, // 100 km at the 50 km/h floor
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimates, err := EstimateTravelOptions(tt.distanceKm, EstimateOptions{DriveDurationH: tt.driveDurationH})
			require.NoError(t, err)

			drive := estimateFor(t, estimates, model.ModeDrive)
			assert.Equal(t, tt.wantTimeH, drive.TimeH)
		})
	}
}

func TestEstimateTravelOptions_NoEstimate(t *testing.T) {
	for _, distance := range []float64{0, -1, -250} {
		estimates, err := EstimateTravelOptions(distance, EstimateOptions{})
		assert.ErrorIs(t, err, ErrNoEstimate, "distance %.1f", distance)
		assert.Nil(t, estimates)
	}
}

func TestEstimateTravelOptions_Rounding(t *testing.T) {
	estimates, err := EstimateTravelOptions(333.333, EstimateOptions{})
	require.NoError(t, err)

	for _, estimate := range estimates {
		assert.InDelta(t, estimate.TimeH, float64(int(estimate.TimeH*100+0.5))/100, 1e-9)
		assert.InDelta(t, estimate.Cost, float64(int(estimate.Cost*100+0.5))/100, 1e-9)
		assert.Equal(t, 333.33, estimate.DistanceKm)
	}
}
