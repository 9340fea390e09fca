package parser

import (
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/projector"
	"go.uber.org/zap"
)

// BuildDataFile groups lens rows by phone, in first-seen order, and returns
// the chart data file. A phone listing the same focal length twice keeps the
// first row.
func BuildDataFile(rows []LensRow, labels []string, logger *zap.Logger) *models.ChartDataFile {
	if logger == nil {
		logger = zap.NewNop()
	}

	data := &models.ChartDataFile{
		Labels:   append([]string(nil), labels...),
		Datasets: []models.PhoneChartDataset{},
	}
	byPhone := make(map[string]int)

	for _, r := range rows {
		pos, ok := byPhone[r.Phone]
		if !ok {
			pos = len(data.Datasets)
			byPhone[r.Phone] = pos
			data.Datasets = append(data.Datasets, models.PhoneChartDataset{
				Label:       r.Phone,
				LensDetails: make(map[string]models.LensDetail),
			})
		}
		ds := &data.Datasets[pos]

		key := projector.FormatFocalLength(r.EquivalentFocalLength.Value)
		if _, dup := ds.LensDetails[key]; dup {
			logger.Warn("Skipping duplicate lens row",
				zap.String("phone", r.Phone),
				zap.Int("row", r.Row),
				zap.String("focal_length", key))
			continue
		}

		lens := models.OriginalLens{
			FocalLength: r.EquivalentFocalLength,
			Aperture:    r.EquivalentAperture,
			Type:        r.Type,
		}
		if r.Aperture.Positive() {
			lens.PhysicalApertureValue = r.Aperture
		}
		if r.PhysicalFocalLength.Positive() {
			lens.ConversionFactor = models.NewNumber(r.EquivalentFocalLength.Value / r.PhysicalFocalLength.Value)
		}
		ds.OriginalLenses = append(ds.OriginalLenses, lens)

		ds.LensDetails[key] = models.LensDetail{
			Sensor:                r.Sensor,
			SensorSize:            r.SensorSize,
			PhysicalFocalLength:   r.PhysicalFocalLength,
			EquivalentFocalLength: r.EquivalentFocalLength,
			Aperture:              r.Aperture,
			EquivalentAperture:    r.EquivalentAperture,
		}
	}

	return data
}
