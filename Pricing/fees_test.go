package Pricing

import (
	"testing"

	"LogiTrack/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFeesCarroScenario(t *testing.T) {
	fees, err := ComputeFees(Models.VehicleCarro, 10, Models.DefaultRates())
	require.NoError(t, err)

	// baseFee=8.00, costPerKm=2.50, chargePerKm=4.00
	assert.Equal(t, 33.00, fees.DriverFee)
	assert.Equal(t, 48.00, fees.ClientCharge)

	margin := ComputeMargin(fees.ClientCharge, fees.DriverFee)
	assert.Equal(t, 3.84, margin.Tax)
	assert.Equal(t, 11.16, margin.NetProfit)
}

func TestComputeFeesZeroDistanceIsBaseFeeOnly(t *testing.T) {
	fees, err := ComputeFees(Models.VehicleCaminhao, 0, Models.DefaultRates())
	require.NoError(t, err)
	assert.Equal(t, 50.00, fees.DriverFee)
	assert.Equal(t, 50.00, fees.ClientCharge)
}

func TestComputeFeesUnknownCategory(t *testing.T) {
	_, err := ComputeFees("TRATOR", 10, Models.DefaultRates())
	require.Error(t, err)

	var unknown *UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Models.VehicleType("TRATOR"), unknown.Category)
}

func TestDriverFeeNeverExceedsClientCharge(t *testing.T) {
	// Holds for every configured category as long as costPerKm <= chargePerKm.
	for _, rate := range Models.DefaultRates() {
		require.LessOrEqual(t, rate.CostPerKm, rate.ChargePerKm)
		for _, distance := range []float64{0, 0.5, 1, 12.3, 100, 450} {
			fees, err := ComputeFees(rate.Type, distance, Models.DefaultRates())
			require.NoError(t, err)
			assert.LessOrEqual(t, fees.DriverFee, fees.ClientCharge,
				"category %s at %v km", rate.Type, distance)
		}
	}
}

func TestComputeMarginTaxIsEightPercentOfCharge(t *testing.T) {
	for _, charge := range []float64{0, 10, 48, 123.45, 9999.99} {
		margin := ComputeMargin(charge, 0)
		assert.Equal(t, Round2(charge*0.08), margin.Tax)
	}
}

func TestShouldRecomputeFees(t *testing.T) {
	base := Models.TransportRequest{VehicleType: Models.VehicleCarro, DistanceKm: 10}

	same := base
	same.Observations = "entregar na portaria"
	assert.False(t, ShouldRecomputeFees(base, same))

	farther := base
	farther.DistanceKm = 12
	assert.True(t, ShouldRecomputeFees(base, farther))

	otherVehicle := base
	otherVehicle.VehicleType = Models.VehicleMoto
	assert.True(t, ShouldRecomputeFees(base, otherVehicle))
}
