package axis

import (
	"math"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
)

// MapReversed returns the position of v on an axis built from descending
// tick definitions, where ticks[i] sits at position i. Values at or beyond
// either end snap to the first or last index.
func MapReversed(ticks []models.TickDefinition, v float64) float64 {
	n := len(ticks)
	if n == 0 {
		return 0
	}
	if v >= ticks[0].Value {
		return 0
	}
	if v <= ticks[n-1].Value {
		return float64(n - 1)
	}

	for i := 0; i < n-1; i++ {
		upper, lower := ticks[i].Value, ticks[i+1].Value
		if lower < v && v <= upper {
			if upper == lower {
				return float64(i)
			}
			return float64(i+1) - (v-lower)/(upper-lower)
		}
	}
	// Unreachable for descending ticks
	return float64(n - 1)
}

// UnmapReversed is the inverse of MapReversed within [0, len(ticks)-1].
func UnmapReversed(ticks []models.TickDefinition, p float64) float64 {
	n := len(ticks)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return ticks[0].Value
	}
	if p >= float64(n-1) {
		return ticks[n-1].Value
	}

	i := int(math.Floor(p))
	upper, lower := ticks[i].Value, ticks[i+1].Value
	return upper - (p-float64(i))*(upper-lower)
}

// Reversed is a descending categorical axis, used for sensor sizes with the
// largest format first.
type Reversed struct {
	ticks []models.TickDefinition
}

// NewReversed creates a Reversed axis. ticks must be descending by value.
func NewReversed(ticks []models.TickDefinition) *Reversed {
	return &Reversed{ticks: append([]models.TickDefinition(nil), ticks...)}
}

// Map maps a physical value to an axis position.
func (r *Reversed) Map(v float64) float64 {
	return MapReversed(r.ticks, v)
}

// Unmap maps an axis position back to a physical value.
func (r *Reversed) Unmap(p float64) float64 {
	return UnmapReversed(r.ticks, p)
}

// Label returns the tick label at an integer position.
func (r *Reversed) Label(p float64) string {
	return LabelAt(r.ticks, p)
}

// Ticks returns a copy of the tick definitions.
func (r *Reversed) Ticks() []models.TickDefinition {
	return append([]models.TickDefinition(nil), r.ticks...)
}
