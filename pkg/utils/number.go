package utils

import "math"

// RoundWithTwoDecimalPlace rounds to the two decimal places used by every
// numeric field of the reporting contract.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
