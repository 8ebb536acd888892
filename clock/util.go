package clock

import (
	"math"

	"github.com/jinzhu/copier"
)

// Round rounds value to precision decimal digits, halves away from zero.
func Round(value float64, precision int) float64 {
	if precision <= 0 {
		return math.Round(value)
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(value*scale) / scale
}

// Clamp bounds value to [min, max] and rounds the result to precision
// decimal digits. min <= max is the caller's responsibility.
func Clamp(value, min, max float64, precision int) float64 {
	return Round(math.Min(max, math.Max(min, value)), precision)
}

// MergeShallow returns a copy of defaults with every field present in
// overrides written over the field of the same name.
//
// overrides is a struct (or pointer to one) whose fields are pointers; a nil
// field is absent. Neither argument is modified.
func MergeShallow[T any](overrides any, defaults T) T {
	merged := defaults
	if overrides == nil {
		return merged
	}
	if err := copier.CopyWithOption(&merged, overrides, copier.Option{IgnoreEmpty: true}); err != nil {
		return defaults
	}
	return merged
}
