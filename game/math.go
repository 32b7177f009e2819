package game

import (
	"math"

	"github.com/chewxy/math32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}

// Rate returns n/total rounded to three decimals, or zero if total is zero.
func Rate(n, total int) float32 {
	if total == 0 {
		return 0
	}
	return Round32(float32(n)/float32(total), 3)
}
