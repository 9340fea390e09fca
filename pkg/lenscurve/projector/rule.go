package projector

import (
	"math"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
)

// Rule identifies which crop-factor projection branch applies to a lens.
type Rule int

const (
	// RuleRatio scales the lens's optical value by target/native focal length.
	RuleRatio Rule = iota
	// RulePhysical scales physical aperture × conversion factor per mm of
	// focal length.
	RulePhysical
)

// String returns the rule name.
func (r Rule) String() string {
	if r == RulePhysical {
		return "physical"
	}
	return "ratio"
}

// RuleFor returns the branch used to project lens l. The physical branch is
// preferred whenever its parameters are present.
func RuleFor(l models.NativeLens) Rule {
	if l.HasPhysical() && l.FocalLength != 0 {
		return RulePhysical
	}
	return RuleRatio
}

// ProjectValue returns the equivalent value of lens l at targetFL.
// At the lens's own focal length it returns OpticalValue exactly.
func ProjectValue(l models.NativeLens, targetFL float64) float64 {
	if targetFL == l.FocalLength {
		return l.OpticalValue
	}
	switch RuleFor(l) {
	case RulePhysical:
		return (*l.PhysicalValue * *l.ConversionFactor / l.FocalLength) * targetFL
	default:
		return l.OpticalValue * (targetFL / l.FocalLength)
	}
}

// Divergence returns the relative difference between the physical branch
// evaluated at the native focal length and the measured optical value.
// ok is false when only the ratio branch applies.
func Divergence(l models.NativeLens) (diff float64, ok bool) {
	if RuleFor(l) != RulePhysical || l.OpticalValue == 0 {
		return 0, false
	}
	physical := *l.PhysicalValue * *l.ConversionFactor
	return math.Abs(physical-l.OpticalValue) / math.Abs(l.OpticalValue), true
}
