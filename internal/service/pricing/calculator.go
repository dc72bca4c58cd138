package pricing

import (
	"fmt"

	"github.com/gocomet/ride-matching/internal/geo"
)

// Fixed fare constants
const (
	BaseFare        = 50.0
	PerDistanceRate = 6.5
	PerMinuteRate   = 2.0
	ServiceTaxRate  = 0.20
)

// FareBreakdown represents the breakdown of a fare
type FareBreakdown struct {
	BaseFare     float64 `json:"base_fare"`
	DistanceFare float64 `json:"distance_fare"`
	TimeFare     float64 `json:"time_fare"`
	Subtotal     float64 `json:"subtotal"`
	ServiceTax   float64 `json:"service_tax"`
	Total        float64 `json:"total"`
}

// CalculateFare prices a completed ride. Only the total is rounded, to
// two decimal places.
func CalculateFare(distance, timeTaken float64) *FareBreakdown {
	distanceFare := PerDistanceRate * distance
	timeFare := PerMinuteRate * timeTaken
	subtotal := BaseFare + distanceFare + timeFare

	return &FareBreakdown{
		BaseFare:     BaseFare,
		DistanceFare: distanceFare,
		TimeFare:     timeFare,
		Subtotal:     subtotal,
		ServiceTax:   subtotal * ServiceTaxRate,
		Total:        geo.Round2(subtotal * (1 + ServiceTaxRate)),
	}
}

// FormatAmount renders an amount with exactly two decimals
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", geo.Round2(amount))
}

// FormatBill renders the BILL result line
func FormatBill(rideID, driverID string, amount float64) string {
	return fmt.Sprintf("BILL %s %s %s", rideID, driverID, FormatAmount(amount))
}
