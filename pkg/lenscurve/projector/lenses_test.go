package projector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/sensor"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const phoneJSON = `{
  "label": "Phone X",
  "originalLenses": [
    {"focalLength": 13, "aperture": 2.2, "type": "Ultra Wide"},
    {"focalLength": 24, "aperture": 6.2, "type": "Main", "physicalApertureValue": 1.78, "conversionFactor": 3.5},
    {"focalLength": "N/A", "aperture": 2.8, "type": "Macro"},
    {"focalLength": 120, "aperture": null, "type": "Periscope"},
    {"focalLength": 77, "aperture": "2.8", "type": "Telephoto", "physicalApertureValue": 2.8}
  ],
  "lensDetails": {
    "13": {"sensor": "IMX564", "sensorSize": "1/2.51", "equivalentFocalLength": 13},
    "24": {"sensor": "LYT-900", "sensorSize": "1/0.98\"", "equivalentFocalLength": 24},
    "77": {"sensor": "IMX858", "sensorSize": "", "equivalentFocalLength": 77},
    "bogus": {"sensorSize": "1/3"}
  }
}`

func loadPhone(t *testing.T) models.PhoneChartDataset {
	t.Helper()
	var ds models.PhoneChartDataset
	require.NoError(t, json.Unmarshal([]byte(phoneJSON), &ds))
	return ds
}

func TestApertureLenses(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	lenses := ApertureLenses(loadPhone(t), zap.New(core))

	require.Len(t, lenses, 3)
	assert.Equal(t, 13.0, lenses[0].FocalLength)
	assert.Equal(t, "1/2.51", lenses[0].SensorSpec)
	assert.False(t, lenses[0].HasPhysical())

	assert.True(t, lenses[1].HasPhysical())
	assert.Equal(t, 1.78, *lenses[1].PhysicalValue)
	assert.Equal(t, 3.5, *lenses[1].ConversionFactor)

	// Quoted aperture is accepted; a lone physical value is dropped
	assert.Equal(t, 2.8, lenses[2].OpticalValue)
	assert.False(t, lenses[2].HasPhysical())

	assert.Equal(t, 2, logs.FilterMessage("Skipping lens with missing optical data").Len())
}

func TestSensorLenses(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	lenses := SensorLenses(loadPhone(t), true, zap.New(core))

	require.Len(t, lenses, 2)
	assert.Equal(t, 13.0, lenses[0].FocalLength)
	assert.InDelta(t, sensor.Normalize(2.51), lenses[0].OpticalValue, 1e-12)
	assert.Equal(t, 24.0, lenses[1].FocalLength)
	assert.InDelta(t, 0.98, lenses[1].OpticalValue, 1e-12)

	assert.Equal(t, 1, logs.FilterMessage("Skipping lens detail without sensor size").Len())
	assert.Equal(t, 1, logs.FilterMessage("Skipping lens detail without focal length").Len())

	raw := SensorLenses(loadPhone(t), false, nil)
	require.Len(t, raw, 2)
	assert.InDelta(t, 2.51, raw[0].OpticalValue, 1e-12)
}

func TestParseReferenceLabels(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	refs := ParseReferenceLabels([]string{"50mm", "24mm", "wide", "24 mm", "200MM", "-5mm", "135"}, zap.New(core))

	assert.Equal(t, []float64{24, 50, 135, 200}, refs)
	assert.Equal(t, 2, logs.Len())
	assert.Nil(t, ParseReferenceLabels(nil, nil))
	assert.Nil(t, ParseReferenceLabels([]string{"x"}, nil))
}

func TestFormatFocalLength(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{24, "24"},
		{6.5, "6.5"},
		{120, "120"},
	}
	for _, tt := range tests {
		if got := FormatFocalLength(tt.input); got != tt.expected {
			t.Errorf("FormatFocalLength(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
