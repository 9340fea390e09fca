package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/xuri/excelize/v2"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flags bind package variables; start every run from the defaults
	outputPath, pretty, sheet, metric, sensorScale, withTable, axisName = "", false, "", "all", "", false, "focal"

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeSpreadsheet(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Phone", "Type", "Sensor Size", "Physical Focal Length", "Aperture", "Equivalent Focal Length", "Equivalent Aperture"},
		{"Phone A", "Ultra Wide", "1/2.55", 2.2, 2.2, 13, 13},
		{"Phone A", "Main", "1/1.3", 6, 1.8, 24, 7.2},
		{"Phone A", "Periscope", "1/2.51", 20, 4.0, 120, 24},
	}
	for r, row := range rows {
		cellName, _ := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}

	path := filepath.Join(t.TempDir(), "lenses.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestIngestThenProject(t *testing.T) {
	xlsx := writeSpreadsheet(t)
	dataPath := filepath.Join(t.TempDir(), "chart.json")

	_, err := execute(t, "ingest", xlsx, "-o", dataPath, "--pretty")
	require.NoError(t, err)

	var data models.ChartDataFile
	raw, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &data))
	require.Len(t, data.Datasets, 1)
	assert.Len(t, data.Datasets[0].OriginalLenses, 3)

	out, err := execute(t, "project", dataPath, "--metric", "aperture", "--table")
	require.NoError(t, err)

	var charts []models.Chart
	require.NoError(t, json.Unmarshal([]byte(out), &charts))
	require.Len(t, charts, 1)
	assert.Equal(t, "aperture", charts[0].Metric)

	series := charts[0].Series[0]
	assert.Equal(t, "Phone A", series.Label)
	assert.Equal(t, "actual", series.Points[0].PointType)
	assert.Equal(t, 13.0, series.Points[0].FocalLength)
	assert.NotEmpty(t, series.Table)
}

func TestProjectSensorLog(t *testing.T) {
	xlsx := writeSpreadsheet(t)
	dataPath := filepath.Join(t.TempDir(), "chart.json")
	_, err := execute(t, "ingest", xlsx, "-o", dataPath)
	require.NoError(t, err)

	out, err := execute(t, "project", dataPath, "--metric", "sensor", "--sensor-scale", "log")
	require.NoError(t, err)

	var charts []models.Chart
	require.NoError(t, json.Unmarshal([]byte(out), &charts))
	require.Len(t, charts, 1)
	assert.Equal(t, "log", charts[0].YScale)
}

func TestProjectErrors(t *testing.T) {
	_, err := execute(t, "project", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "file not found")

	_, err = execute(t, "project", "x.json", "--metric", "iso")
	assert.ErrorContains(t, err, "invalid metric")

	_, err = execute(t, "ingest", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorContains(t, err, "ingestion failed")
}

func TestTicks(t *testing.T) {
	out, err := execute(t, "ticks")
	require.NoError(t, err)

	var ticks []models.TickDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &ticks))
	require.Len(t, ticks, 12)
	assert.Equal(t, models.TickDefinition{Value: 12, Label: "12mm"}, ticks[0])

	out, err = execute(t, "ticks", "--axis", "sensor")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &ticks))
	assert.Len(t, ticks, 18)

	_, err = execute(t, "ticks", "--axis", "iso")
	assert.ErrorContains(t, err, "invalid axis")
}
