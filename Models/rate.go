package Models

import (
	"fmt"
	"os"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// VehicleRate holds the pricing parameters for one vehicle category.
// Keyed by Type, not by a generated id; the rate table carries exactly
// one entry per category.
type VehicleRate struct {
	Type        VehicleType `json:"type" validate:"required"`
	Label       string      `json:"label" validate:"required"`
	CostPerKm   float64     `json:"costPerKm" validate:"gte=0"`   // Driver pay
	ChargePerKm float64     `json:"chargePerKm" validate:"gte=0"` // Client charge
	BaseFee     float64     `json:"baseFee" validate:"gte=0"`
}

// DefaultRates is the built-in table used when no stored table exists yet.
func DefaultRates() []VehicleRate {
	return []VehicleRate{
		{Type: VehicleMoto, Label: "Motoboy", CostPerKm: 1.50, ChargePerKm: 2.50, BaseFee: 5.00},
		{Type: VehicleCarro, Label: "Carro", CostPerKm: 2.50, ChargePerKm: 4.00, BaseFee: 8.00},
		{Type: VehicleUtilitario, Label: "Utilitário", CostPerKm: 4.00, ChargePerKm: 6.50, BaseFee: 15.00},
		{Type: VehicleCaminhao, Label: "Caminhão", CostPerKm: 8.00, ChargePerKm: 12.00, BaseFee: 50.00},
	}
}

// LoadRatesFile reads a rate table override from a json5 file. Used at
// startup when RATES_FILE is set, so deployments can reprice without a
// rebuild.
func LoadRatesFile(path string) ([]VehicleRate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rates []VehicleRate
	if err := json5.Unmarshal(raw, &rates); err != nil {
		return nil, fmt.Errorf("error parsing rates file %s: %w", path, err)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("rates file %s contains no entries", path)
	}
	return rates, nil
}
