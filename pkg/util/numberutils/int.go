package numberutils

import (
	"math"
	"strconv"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// MaxInt returns the maximum value from a list of integers.
func MaxInt(nums ...int) int {
	maxVal := math.MinInt
	for _, num := range nums {
		if num > maxVal {
			maxVal = num
		}
	}
	return maxVal
}

// ClampInt restricts a value to the inclusive range [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
