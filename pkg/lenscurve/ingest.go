package lenscurve

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/parser"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/projector"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Ingest reads a lens spreadsheet and returns the chart data file.
func Ingest(path string, opts IngestOptions) (*models.ChartDataFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	// Default to the first sheet
	sheetList := f.GetSheetList()
	sheetName := opts.Sheet
	if sheetName == "" && len(sheetList) > 0 {
		sheetName = sheetList[0]
	}
	if !slices.Contains(sheetList, sheetName) {
		return nil, NewIngestError(sheetName, "open", ErrSheetNotFound)
	}

	columns := opts.Columns
	if columns == (parser.Columns{}) {
		columns = parser.DefaultColumns()
	}

	rows, err := parser.ExtractLensRows(f, sheetName, columns, logger)
	if err != nil {
		return nil, NewIngestError(sheetName, "rows", err)
	}

	labels := opts.Labels
	if len(labels) == 0 {
		labels = projector.DefaultReferenceLabels
	}

	data := parser.BuildDataFile(rows, labels, logger)
	logger.Info("Ingested spreadsheet",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(rows)),
		zap.Int("phones", len(data.Datasets)))
	return data, nil
}

// LoadDataFile reads a chart data JSON file.
func LoadDataFile(path string) (*models.ChartDataFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	var data models.ChartDataFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &data, nil
}
