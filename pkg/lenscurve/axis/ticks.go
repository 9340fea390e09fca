package axis

import (
	"math"
	"strconv"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/sensor"
)

// Sensor tick range: 1/0.75 through 1/5 in quarter steps of the denominator.
const (
	SensorMinDenominator  = 0.75
	SensorMaxDenominator  = 5.0
	SensorDenominatorStep = 0.25
)

// A Labeler returns the display label for an axis position.
type Labeler func(p float64) string

// LabelAt returns ticks[p].Label when p is an integer index into ticks, and
// "" otherwise. Intermediate gridlines stay unlabeled.
func LabelAt(ticks []models.TickDefinition, p float64) string {
	if math.IsNaN(p) || p != math.Trunc(p) || p < 0 || p >= float64(len(ticks)) {
		return ""
	}
	return ticks[int(p)].Label
}

// LabelerFor returns m's labeling function.
func LabelerFor(m Mapper) Labeler {
	return m.Label
}

// FocalTicks returns tick definitions for ascending focal lengths, labeled
// "24mm" and so on.
func FocalTicks(refs []float64) []models.TickDefinition {
	ticks := make([]models.TickDefinition, len(refs))
	for i, fl := range refs {
		ticks[i] = models.TickDefinition{
			Value: fl,
			Label: strconv.FormatFloat(fl, 'f', -1, 64) + "mm",
		}
	}
	return ticks
}

// SensorTicks returns the sensor-size categories, largest format first.
// Values are format sizes in inches (1/denominator).
func SensorTicks() []models.TickDefinition {
	var ticks []models.TickDefinition
	steps := int(math.Round((SensorMaxDenominator - SensorMinDenominator) / SensorDenominatorStep))
	for i := 0; i <= steps; i++ {
		den := SensorMinDenominator + float64(i)*SensorDenominatorStep
		ticks = append(ticks, models.TickDefinition{
			Value: sensor.Fraction(den),
			Label: sensor.Label(den),
		})
	}
	return ticks
}

// CuratedSensorTicks returns the subset of SensorTicks labeled on a log
// axis: 1/0.75 and every half step of the denominator.
func CuratedSensorTicks() []models.TickDefinition {
	var ticks []models.TickDefinition
	for _, t := range SensorTicks() {
		den := 1 / t.Value
		if math.Abs(den-SensorMinDenominator) < 1e-9 || math.Abs(den*2-math.Round(den*2)) < 1e-9 {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// SensorLogScale returns a log scale spanning the sensor categories.
func SensorLogScale() *LogScale {
	return NewLogScale(
		sensor.Fraction(SensorMaxDenominator),
		sensor.Fraction(SensorMinDenominator),
		CuratedSensorTicks(),
	)
}
