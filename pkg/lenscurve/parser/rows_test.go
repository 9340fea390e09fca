package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// writeWorkbook saves a workbook holding rows on Sheet1 and reopens it.
func writeWorkbook(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	for r, row := range rows {
		cellName, _ := excelize.CoordinatesToCellName(1, r+1)
		if err := f.SetSheetRow(sheetName, cellName, &row); err != nil {
			t.Fatalf("Failed to set row %d: %v", r+1, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "lenses.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

var header = []interface{}{
	"Phone", "Type", "Sensor", "Sensor Size", "Physical Focal Length",
	"Aperture", "Equivalent Focal Length", "Equivalent Aperture",
}

func TestExtractLensRows(t *testing.T) {
	f := writeWorkbook(t, [][]interface{}{
		header,
		{"Phone X", "Ultra Wide", "IMX564", "1/2.51", 2.2, 2.2, 13, 12.5},
		{"Phone X", "Main", "LYT-900", "1/0.98", "6.9mm", "f/1.63", "24mm", "f/5.7"},
		{},
		{"", "Main", "", "", 6.9, 1.8, 24, 6.0},
		{"Phone Y", "Main", "", "", 6.9, 1.8, "N/A", 6.0},
		{"Phone Y", "Tele", "", "", 18, 2.8, 70},
		{"Phone Y", "Main", "GN2", "1/1.12", 6.9, 1.8, 24, 6.0},
	})

	core, logs := observer.New(zapcore.WarnLevel)
	rows, err := ExtractLensRows(f, "Sheet1", DefaultColumns(), zap.New(core))
	if err != nil {
		t.Fatalf("ExtractLensRows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].Row != 2 || rows[0].Phone != "Phone X" || rows[0].SensorSize != "1/2.51" {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}
	if rows[1].PhysicalFocalLength.Value != 6.9 || rows[1].Aperture.Value != 1.63 {
		t.Errorf("Expected decorated numbers to parse, got %+v", rows[1])
	}
	if rows[1].EquivalentFocalLength.Value != 24 || rows[1].EquivalentAperture.Value != 5.7 {
		t.Errorf("Expected decorated equivalent numbers to parse, got %+v", rows[1])
	}
	if rows[2].Row != 8 || rows[2].Sensor != "GN2" {
		t.Errorf("Unexpected last row: %+v", rows[2])
	}

	if logs.Len() != 3 {
		t.Errorf("Expected 3 skipped-row warnings, got %d", logs.Len())
	}
}

func TestExtractLensRowsMissingColumn(t *testing.T) {
	f := writeWorkbook(t, [][]interface{}{
		{"Phone", "Equivalent Focal Length"},
		{"Phone X", 24},
	})

	_, err := ExtractLensRows(f, "Sheet1", DefaultColumns(), nil)
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("Expected ErrMissingColumn, got %v", err)
	}
}

func TestExtractLensRowsEmptySheet(t *testing.T) {
	f := writeWorkbook(t, nil)

	_, err := ExtractLensRows(f, "Sheet1", DefaultColumns(), nil)
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("Expected ErrNoHeader, got %v", err)
	}
}

func TestLocateColumnsCaseInsensitive(t *testing.T) {
	idx, err := locateColumns([]string{" phone ", "EQUIVALENT APERTURE", "equivalent focal length"}, DefaultColumns())
	if err != nil {
		t.Fatalf("locateColumns failed: %v", err)
	}
	if idx.phone != 0 || idx.eqAperture != 1 || idx.eqFL != 2 || idx.sensor != -1 {
		t.Errorf("Unexpected column index: %+v", idx)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Number
	}{
		{"24", models.NewNumber(24)},
		{"24mm", models.NewNumber(24)},
		{" 6.9 mm", models.NewNumber(6.9)},
		{"f/1.8", models.NewNumber(1.8)},
		{"F2.8", models.NewNumber(2.8)},
		{"ƒ/2.2", models.NewNumber(2.2)},
		{"N/A", models.Number{}},
		{"", models.Number{}},
		{"NaN", models.Number{}},
	}

	for _, tt := range tests {
		if got := parseNumber(tt.input); got != tt.expected {
			t.Errorf("parseNumber(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
