package axis

import (
	"math"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
)

// labelTolerance is how close a position must be to a curated tick to
// carry its label.
const labelTolerance = 1e-9

// LogScale maps a positive domain [Min, Max] logarithmically onto [0, 1].
// Only a curated subset of values is labeled.
type LogScale struct {
	// Min and Max bound the input domain. Both must be positive.
	Min, Max float64
	// Clamp limits mapped positions to [0, 1].
	Clamp bool

	labeled []models.TickDefinition
}

// NewLogScale creates a LogScale over [lo, hi] labeling the given ticks.
func NewLogScale(lo, hi float64, labeled []models.TickDefinition) *LogScale {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &LogScale{
		Min:     lo,
		Max:     hi,
		Clamp:   true,
		labeled: append([]models.TickDefinition(nil), labeled...),
	}
}

// Map maps v to [0, 1]. Non-positive values map to 0.
func (s *LogScale) Map(v float64) float64 {
	if v <= 0 || s.Min <= 0 || s.Max == s.Min {
		return 0
	}
	p := math.Log(v/s.Min) / math.Log(s.Max/s.Min)
	if s.Clamp {
		p = clamp(p)
	}
	return p
}

// Unmap is the inverse of Map.
func (s *LogScale) Unmap(p float64) float64 {
	if s.Clamp {
		p = clamp(p)
	}
	return s.Min * math.Pow(s.Max/s.Min, p)
}

// Label returns the label of the curated tick at position p, or "".
func (s *LogScale) Label(p float64) string {
	for _, t := range s.labeled {
		if math.Abs(s.Map(t.Value)-p) <= labelTolerance {
			return t.Label
		}
	}
	return ""
}

// Ticks returns the curated tick definitions.
func (s *LogScale) Ticks() []models.TickDefinition {
	return append([]models.TickDefinition(nil), s.labeled...)
}

// clamp clamps x to the range [0, 1].
func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
