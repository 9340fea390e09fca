// Package axis maps physical quantities onto chart axes whose ticks are
// evenly spaced even though the physical tick values are not.
package axis

import (
	"math"
	"sort"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
)

// A Mapper maps a physical value to an axis position and back, and labels
// axis positions.
type Mapper interface {
	// Map maps a physical value to an axis position.
	Map(v float64) float64
	// Unmap is the inverse of Map within the mapper's domain.
	Unmap(p float64) float64
	// Label returns the tick label at position p, or "" between ticks.
	Label(p float64) string
	// Ticks returns the tick definitions.
	Ticks() []models.TickDefinition
}

// MapEquidistant returns the position of v on an axis where majorTicks[i] sits
// at position i. majorTicks must be ascending. Values between ticks are
// linearly interpolated; values outside the range are extrapolated with the
// first or last segment's slope.
func MapEquidistant(majorTicks []float64, v float64) float64 {
	n := len(majorTicks)
	if n < 2 {
		return 0
	}

	// Segment i is the last one starting at or below v, limited to [0, n-2]
	i := sort.Search(n, func(j int) bool { return majorTicks[j] > v }) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}

	lo, hi := majorTicks[i], majorTicks[i+1]
	if hi == lo {
		return float64(i)
	}
	return float64(i) + (v-lo)/(hi-lo)
}

// UnmapEquidistant is the inverse of MapEquidistant.
func UnmapEquidistant(majorTicks []float64, p float64) float64 {
	n := len(majorTicks)
	switch n {
	case 0:
		return 0
	case 1:
		return majorTicks[0]
	}

	i := int(math.Floor(p))
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	lo, hi := majorTicks[i], majorTicks[i+1]
	return lo + (p-float64(i))*(hi-lo)
}

// Equidistant is an ascending categorical axis, used for focal lengths.
type Equidistant struct {
	ticks  []models.TickDefinition
	values []float64
}

// NewEquidistant creates an Equidistant axis. ticks must be ascending by value.
func NewEquidistant(ticks []models.TickDefinition) *Equidistant {
	e := &Equidistant{
		ticks:  append([]models.TickDefinition(nil), ticks...),
		values: make([]float64, len(ticks)),
	}
	for i, t := range ticks {
		e.values[i] = t.Value
	}
	return e
}

// Map maps a physical value to an axis position.
func (e *Equidistant) Map(v float64) float64 {
	return MapEquidistant(e.values, v)
}

// Unmap maps an axis position back to a physical value.
func (e *Equidistant) Unmap(p float64) float64 {
	return UnmapEquidistant(e.values, p)
}

// Label returns the tick label at an integer position.
func (e *Equidistant) Label(p float64) string {
	return LabelAt(e.ticks, p)
}

// Ticks returns a copy of the tick definitions.
func (e *Equidistant) Ticks() []models.TickDefinition {
	return append([]models.TickDefinition(nil), e.ticks...)
}
