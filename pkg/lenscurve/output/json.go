// Package output serializes chart data to JSON.
package output

import (
	"encoding/json"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
)

// DataFileToJSON serializes a chart data file.
func DataFileToJSON(data *models.ChartDataFile, pretty bool) ([]byte, error) {
	return marshal(data, pretty)
}

// ChartsToJSON serializes rendered charts.
func ChartsToJSON(charts []models.Chart, pretty bool) ([]byte, error) {
	if charts == nil {
		charts = []models.Chart{}
	}
	return marshal(charts, pretty)
}

// TicksToJSON serializes axis tick definitions.
func TicksToJSON(ticks []models.TickDefinition, pretty bool) ([]byte, error) {
	if ticks == nil {
		ticks = []models.TickDefinition{}
	}
	return marshal(ticks, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
