// Package sensor parses sensor-size descriptors.
//
// Phone sensors are named by an optical-format fraction such as 1/2.51".
// The fraction is not a physical dimension: an "inch" of sensor diagonal is
// about 16mm for large formats, while sub-1/2" formats are commonly quoted on
// an 18mm basis. Denominators are converted once to the 16mm basis so every
// curve is on the same scale.
package sensor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// StandardBasisMM is the diagonal, in mm, of a 1" optical format.
	StandardBasisMM = 16.0
	// LegacyBasisMM is the diagonal per inch used for small formats.
	LegacyBasisMM = 18.0
	// LegacyThreshold is the largest denominator quoted on the standard basis
	// (1/2"). Smaller sensors use the legacy basis.
	LegacyThreshold = 2.0
)

// ErrInvalidDescriptor indicates a sensor-size string could not be parsed.
var ErrInvalidDescriptor = errors.New("invalid sensor size descriptor")

// ParseDenominator parses a descriptor like "1/2.51", `1/2.51"`, "1/1.3-inch"
// or `1"` and returns the format denominator (2.51, 1.3, 1).
func ParseDenominator(s string) (float64, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(t, "-inch")
	t = strings.TrimSuffix(t, "inch")
	t = strings.TrimRight(t, `"″' `)
	if t == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
	}

	idx := strings.Index(t, "/")
	if idx < 0 {
		// A bare number is a format size ("1" means 1"), so its denominator is 1/x
		n, err := strconv.ParseFloat(t, 64)
		if err != nil || n <= 0 || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
		}
		return 1 / n, nil
	}
	num, den := strings.TrimSpace(t[:idx]), strings.TrimSpace(t[idx+1:])

	n, err := strconv.ParseFloat(num, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d <= 0 || math.IsInf(d, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
	}
	return d / n, nil
}

// Normalize converts a denominator quoted on the legacy 18mm basis to the
// 16mm basis. Formats of 1/2" and larger are returned unchanged.
func Normalize(den float64) float64 {
	if den > LegacyThreshold {
		return den * StandardBasisMM / LegacyBasisMM
	}
	return den
}

// Fraction returns the format size in inches for a denominator.
func Fraction(den float64) float64 {
	return 1 / den
}

// Diagonal returns the sensor diagonal in mm on the standard basis.
func Diagonal(den float64) float64 {
	return StandardBasisMM / den
}

// Label formats a denominator as a descriptor with two decimals at most.
func Label(den float64) string {
	return "1/" + strconv.FormatFloat(math.Round(den*100)/100, 'f', -1, 64)
}
