// Package lenscurve builds equivalent-aperture and sensor-size charts for
// phone camera lenses.
package lenscurve

import (
	"fmt"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/parser"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/projector"
	"go.uber.org/zap"
)

// Metric represents the charted quantity.
type Metric string

const (
	// MetricAperture charts equivalent aperture F-numbers.
	MetricAperture Metric = "aperture"
	// MetricSensor charts equivalent sensor sizes.
	MetricSensor Metric = "sensor"
	// MetricAll charts both.
	MetricAll Metric = "all"
)

// SensorScale selects how sensor sizes are placed on the value axis.
type SensorScale string

const (
	// SensorScaleCategorical places sensor categories at evenly spaced
	// positions, largest format first.
	SensorScaleCategorical SensorScale = "categorical"
	// SensorScaleLog places sensor sizes on a logarithmic axis labeling a
	// curated subset of categories.
	SensorScaleLog SensorScale = "log"
)

// ParseMetric parses a metric name.
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case MetricAperture, MetricSensor, MetricAll:
		return m, nil
	default:
		return "", fmt.Errorf("invalid metric: %s (must be aperture, sensor, or all)", s)
	}
}

// ParseSensorScale parses a sensor scale name.
func ParseSensorScale(s string) (SensorScale, error) {
	switch sc := SensorScale(s); sc {
	case SensorScaleCategorical, SensorScaleLog:
		return sc, nil
	default:
		return "", fmt.Errorf("invalid sensor scale: %s (must be categorical or log)", s)
	}
}

// Options configures chart building.
type Options struct {
	// Metric specifies which charts to build.
	Metric Metric
	// Ceiling is the terminal focal length of the last lens's segment.
	// Zero means projector.DefaultCeilingFocalLength.
	Ceiling float64
	// DivergenceTolerance is the relative disagreement between the physical
	// and ratio projection rules above which a lens is flagged.
	// Zero means projector.DefaultDivergenceTolerance.
	DivergenceTolerance float64
	// NormalizeSensorBasis converts small sensor formats to the 16mm basis.
	// If nil, defaults to true.
	NormalizeSensorBasis *bool
	// SensorScale selects the sensor chart's value axis.
	SensorScale SensorScale
	// IncludeTable adds a per-phone value table at every reference focal length.
	IncludeTable bool
	// Workers bounds how many phones are projected concurrently.
	// Zero or negative means no limit.
	Workers int
	// Logger receives data-quality warnings. Nil discards them.
	Logger *zap.Logger
}

// DefaultOptions returns default chart options.
func DefaultOptions() Options {
	return Options{
		Metric:              MetricAll,
		Ceiling:             projector.DefaultCeilingFocalLength,
		DivergenceTolerance: projector.DefaultDivergenceTolerance,
		SensorScale:         SensorScaleCategorical,
	}
}

// Metrics returns the individual metrics to build, in output order.
func (o Options) Metrics() []Metric {
	switch o.Metric {
	case MetricAperture, MetricSensor:
		return []Metric{o.Metric}
	default:
		return []Metric{MetricAperture, MetricSensor}
	}
}

// ShouldNormalizeSensorBasis returns whether to convert sensor formats to the
// 16mm basis.
func (o Options) ShouldNormalizeSensorBasis() bool {
	if o.NormalizeSensorBasis != nil {
		return *o.NormalizeSensorBasis
	}
	return true
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) projectorOptions() projector.Options {
	return projector.Options{
		Ceiling:             o.Ceiling,
		DivergenceTolerance: o.DivergenceTolerance,
	}
}

// IngestOptions configures spreadsheet ingestion.
type IngestOptions struct {
	// Sheet is the sheet to read. Empty means the first sheet.
	Sheet string
	// Columns names the header cells of each field.
	Columns parser.Columns
	// Labels are the reference focal length labels written to the data file.
	// If empty, projector.DefaultReferenceLabels is used.
	Labels []string
	// Logger receives skipped-row warnings. Nil discards them.
	Logger *zap.Logger
}

// DefaultIngestOptions returns default ingestion options.
func DefaultIngestOptions() IngestOptions {
	return IngestOptions{
		Columns: parser.DefaultColumns(),
		Labels:  append([]string(nil), projector.DefaultReferenceLabels...),
	}
}
