package Pricing

import (
	"fmt"
	"math"

	"LogiTrack/Models"
)

// TaxRate is the flat revenue tax applied to every charge. Per-request
// profit, period reports, and contract margins all share this figure.
const TaxRate = 0.08

// Fees is the money split derived from distance and the rate table.
type Fees struct {
	DriverFee    float64 `json:"driverFee"`
	ClientCharge float64 `json:"clientCharge"`
}

// Margin is what remains of a charge after the payout and the tax.
type Margin struct {
	Tax       float64 `json:"tax"`
	NetProfit float64 `json:"netProfit"`
}

// UnknownCategoryError means the rate table and the request data model
// drifted apart. Never silently priced as zero.
type UnknownCategoryError struct {
	Category Models.VehicleType
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no rate entry for vehicle category %s", e.Category)
}

// Round2 rounds to two decimal places, the resolution every monetary
// field is stored at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeFees derives the driver fee and client charge for a distance.
// A zero distance (route not yet estimated) yields the base fee alone as
// a minimum-fare display value.
func ComputeFees(category Models.VehicleType, distanceKm float64, rates []Models.VehicleRate) (Fees, error) {
	rate, ok := FindRate(category, rates)
	if !ok {
		return Fees{}, &UnknownCategoryError{Category: category}
	}
	if distanceKm <= 0 {
		return Fees{DriverFee: rate.BaseFee, ClientCharge: rate.BaseFee}, nil
	}
	return Fees{
		DriverFee:    Round2(rate.BaseFee + distanceKm*rate.CostPerKm),
		ClientCharge: Round2(rate.BaseFee + distanceKm*rate.ChargePerKm),
	}, nil
}

// ComputeMargin applies the shared tax formula to one charge/payout pair.
func ComputeMargin(clientCharge, driverFee float64) Margin {
	tax := Round2(clientCharge * TaxRate)
	return Margin{
		Tax:       tax,
		NetProfit: Round2(clientCharge - driverFee - tax),
	}
}

// FindRate looks up the entry for a category.
func FindRate(category Models.VehicleType, rates []Models.VehicleRate) (Models.VehicleRate, bool) {
	for _, rate := range rates {
		if rate.Type == category {
			return rate, true
		}
	}
	return Models.VehicleRate{}, false
}

// ShouldRecomputeFees decides whether an edit invalidates the stored fees.
// Manually overridden fees survive every edit that leaves the distance and
// category untouched.
func ShouldRecomputeFees(previous, next Models.TransportRequest) bool {
	return previous.VehicleType != next.VehicleType || previous.DistanceKm != next.DistanceKm
}
