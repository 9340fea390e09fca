package projector

import (
	"sort"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/sensor"
	"go.uber.org/zap"
)

// ApertureLenses extracts the aperture curve's native lenses from a phone.
// The optical value is the equivalent F-number.
func ApertureLenses(ds models.PhoneChartDataset, logger *zap.Logger) []models.NativeLens {
	if logger == nil {
		logger = zap.NewNop()
	}

	lenses := make([]models.NativeLens, 0, len(ds.OriginalLenses))
	for _, ol := range ds.OriginalLenses {
		if !ol.FocalLength.Positive() || !ol.Aperture.Positive() {
			logger.Warn("Skipping lens with missing optical data",
				zap.String("phone", ds.Label),
				zap.String("type", ol.Type),
				zap.Bool("focal_length_valid", ol.FocalLength.Positive()),
				zap.Bool("aperture_valid", ol.Aperture.Positive()))
			continue
		}

		lens := models.NativeLens{
			FocalLength:  ol.FocalLength.Value,
			OpticalValue: ol.Aperture.Value,
		}
		// Both physical parameters, or neither
		if phys, conv := ol.PhysicalApertureValue.Ptr(), ol.ConversionFactor.Ptr(); phys != nil && conv != nil {
			lens.PhysicalValue = phys
			lens.ConversionFactor = conv
		}
		if detail, ok := ds.LensDetails[FormatFocalLength(lens.FocalLength)]; ok {
			lens.SensorSpec = detail.SensorSize
		}
		lenses = append(lenses, lens)
	}
	return lenses
}

// SensorLenses extracts the sensor-size curve's native lenses from a phone.
// The optical value is the format denominator, converted to the 16mm basis
// when normalize is set.
func SensorLenses(ds models.PhoneChartDataset, normalize bool, logger *zap.Logger) []models.NativeLens {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Map order is random; walk keys sorted so duplicates resolve the same way
	keys := make([]string, 0, len(ds.LensDetails))
	for k := range ds.LensDetails {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lenses := make([]models.NativeLens, 0, len(keys))
	for _, key := range keys {
		detail := ds.LensDetails[key]

		fl, ok := ParseFocalLength(key)
		if detail.EquivalentFocalLength.Positive() {
			fl, ok = detail.EquivalentFocalLength.Value, true
		}
		if !ok {
			logger.Warn("Skipping lens detail without focal length",
				zap.String("phone", ds.Label), zap.String("key", key))
			continue
		}

		den, err := sensor.ParseDenominator(detail.SensorSize)
		if err != nil {
			logger.Warn("Skipping lens detail without sensor size",
				zap.String("phone", ds.Label),
				zap.Float64("focal_length", fl),
				zap.Error(err))
			continue
		}
		if normalize {
			den = sensor.Normalize(den)
		}

		lenses = append(lenses, models.NativeLens{
			FocalLength:  fl,
			OpticalValue: den,
			SensorSpec:   detail.SensorSize,
		})
	}
	return lenses
}
