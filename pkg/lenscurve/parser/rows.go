package parser

import (
	"strconv"
	"strings"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// LensRow is one lens read from the spreadsheet.
type LensRow struct {
	// Row is the row index (1-based).
	Row int
	// Phone is the phone display name.
	Phone string
	// Type is the lens role.
	Type string
	// EquivalentFocalLength is the 35mm-equivalent focal length in mm.
	EquivalentFocalLength models.Number
	// PhysicalFocalLength is the physical focal length in mm.
	PhysicalFocalLength models.Number
	// Aperture is the physical F-number.
	Aperture models.Number
	// EquivalentAperture is the 35mm-equivalent F-number.
	EquivalentAperture models.Number
	// Sensor is the sensor model name.
	Sensor string
	// SensorSize is the sensor-size descriptor.
	SensorSize string
}

// ExtractLensRows reads lens rows from a sheet. The first non-empty row is
// the header. Rows without a phone name, equivalent focal length or
// equivalent aperture are skipped with a warning.
func ExtractLensRows(f *excelize.File, sheetName string, cols Columns, logger *zap.Logger) ([]LensRow, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	headerIdx := -1
	for rowIdx, row := range rows {
		if hasData(row) {
			headerIdx = rowIdx
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrNoHeader
	}

	idx, err := locateColumns(rows[headerIdx], cols)
	if err != nil {
		return nil, err
	}

	var result []LensRow
	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if !hasData(row) {
			continue
		}

		lr := LensRow{
			Row:                   rowIdx + 1, // 1-based row index
			Phone:                 cell(row, idx.phone),
			Type:                  cell(row, idx.typ),
			EquivalentFocalLength: parseNumber(cell(row, idx.eqFL)),
			PhysicalFocalLength:   parseNumber(cell(row, idx.physFL)),
			Aperture:              parseNumber(cell(row, idx.aperture)),
			EquivalentAperture:    parseNumber(cell(row, idx.eqAperture)),
			Sensor:                cell(row, idx.sensor),
			SensorSize:            cell(row, idx.sensorSize),
		}

		var reason string
		switch {
		case lr.Phone == "":
			reason = "missing phone name"
		case !lr.EquivalentFocalLength.Positive():
			reason = "missing equivalent focal length"
		case !lr.EquivalentAperture.Positive():
			reason = "missing equivalent aperture"
		}
		if reason != "" {
			logger.Warn("Skipping spreadsheet row",
				zap.String("sheet", sheetName),
				zap.Int("row", lr.Row),
				zap.String("reason", reason))
			continue
		}

		result = append(result, lr)
	}

	return result, nil
}

// hasData reports whether any cell in row is non-empty.
func hasData(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}

// cell returns the trimmed cell at col, or "" when col is absent or past the
// end of the row. GetRows trims trailing empty cells.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// parseNumber reads a number out of a spreadsheet cell, accepting unit
// decorations such as "24mm", "f/1.8" and "F2.8".
func parseNumber(s string) models.Number {
	t := strings.TrimSpace(strings.ToLower(s))
	t = strings.TrimPrefix(t, "ƒ/")
	t = strings.TrimPrefix(t, "f/")
	t = strings.TrimPrefix(t, "f")
	t = strings.TrimSuffix(t, "mm")
	t = strings.TrimSpace(t)

	switch v := parseValue(t).(type) {
	case int64:
		return models.NewNumber(float64(v))
	case float64:
		return models.NewNumber(v)
	default:
		return models.Number{}
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
