package geo

import (
	"math"

	"github.com/gocomet/ride-matching/internal/domain/user"
)

// Distance is the Euclidean distance between a and b, rounded to 2dp
func Distance(a, b user.Location) float64 {
	return Round2(math.Hypot(b.X-a.X, b.Y-a.Y))
}

// Round2 rounds half away from zero at two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
