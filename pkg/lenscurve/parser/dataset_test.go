package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
)

func TestBuildDataFile(t *testing.T) {
	rows := []LensRow{
		{Row: 2, Phone: "Phone X", Type: "Main", EquivalentFocalLength: models.NewNumber(24), PhysicalFocalLength: models.NewNumber(6), Aperture: models.NewNumber(1.8), EquivalentAperture: models.NewNumber(7.2), SensorSize: "1/1.3"},
		{Row: 3, Phone: "Phone Y", Type: "Main", EquivalentFocalLength: models.NewNumber(26), EquivalentAperture: models.NewNumber(6.5)},
		{Row: 4, Phone: "Phone X", Type: "Tele", EquivalentFocalLength: models.NewNumber(70), EquivalentAperture: models.NewNumber(9.0)},
		{Row: 5, Phone: "Phone X", Type: "Main again", EquivalentFocalLength: models.NewNumber(24), EquivalentAperture: models.NewNumber(8.0)},
	}

	data := BuildDataFile(rows, []string{"24mm", "70mm"}, nil)

	assert.Equal(t, []string{"24mm", "70mm"}, data.Labels)
	require.Len(t, data.Datasets, 2)

	x := data.Datasets[0]
	assert.Equal(t, "Phone X", x.Label)
	require.Len(t, x.OriginalLenses, 2)
	assert.Equal(t, 7.2, x.OriginalLenses[0].Aperture.Value)
	assert.Equal(t, 1.8, x.OriginalLenses[0].PhysicalApertureValue.Value)
	assert.Equal(t, 4.0, x.OriginalLenses[0].ConversionFactor.Value)
	assert.False(t, x.OriginalLenses[1].ConversionFactor.Valid)
	assert.Equal(t, "1/1.3", x.LensDetails["24"].SensorSize)
	assert.Contains(t, x.LensDetails, "70")

	assert.Equal(t, "Phone Y", data.Datasets[1].Label)
}

func TestBuildDataFileEmpty(t *testing.T) {
	data := BuildDataFile(nil, nil, nil)
	assert.NotNil(t, data.Datasets)
	assert.Empty(t, data.Datasets)
}
