// Package parser reads lens specifications out of Excel workbooks.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn indicates a required header cell was not found.
var ErrMissingColumn = errors.New("missing required column")

// ErrNoHeader indicates the sheet holds no data at all.
var ErrNoHeader = errors.New("no header row")

// Columns names the header cells that identify each field.
// Matching is case-insensitive and ignores surrounding spaces.
type Columns struct {
	// Phone is the phone name column (required).
	Phone string `yaml:"phone"`
	// Type is the lens role column.
	Type string `yaml:"type"`
	// EquivalentFocalLength is the 35mm-equivalent focal length column (required).
	EquivalentFocalLength string `yaml:"equivalent_focal_length"`
	// PhysicalFocalLength is the physical focal length column.
	PhysicalFocalLength string `yaml:"physical_focal_length"`
	// Aperture is the physical F-number column.
	Aperture string `yaml:"aperture"`
	// EquivalentAperture is the 35mm-equivalent F-number column (required).
	EquivalentAperture string `yaml:"equivalent_aperture"`
	// Sensor is the sensor model column.
	Sensor string `yaml:"sensor"`
	// SensorSize is the sensor-size descriptor column.
	SensorSize string `yaml:"sensor_size"`
}

// DefaultColumns returns the header names used by the lens spreadsheet.
func DefaultColumns() Columns {
	return Columns{
		Phone:                 "Phone",
		Type:                  "Type",
		EquivalentFocalLength: "Equivalent Focal Length",
		PhysicalFocalLength:   "Physical Focal Length",
		Aperture:              "Aperture",
		EquivalentAperture:    "Equivalent Aperture",
		Sensor:                "Sensor",
		SensorSize:            "Sensor Size",
	}
}

// columnIndex holds 0-based column positions; -1 marks an absent column.
type columnIndex struct {
	phone      int
	typ        int
	eqFL       int
	physFL     int
	aperture   int
	eqAperture int
	sensor     int
	sensorSize int
}

// locateColumns finds each configured column in the header row.
func locateColumns(header []string, cols Columns) (columnIndex, error) {
	find := func(name string) int {
		if name == "" {
			return -1
		}
		for i, cell := range header {
			if strings.EqualFold(strings.TrimSpace(cell), strings.TrimSpace(name)) {
				return i
			}
		}
		return -1
	}

	idx := columnIndex{
		phone:      find(cols.Phone),
		typ:        find(cols.Type),
		eqFL:       find(cols.EquivalentFocalLength),
		physFL:     find(cols.PhysicalFocalLength),
		aperture:   find(cols.Aperture),
		eqAperture: find(cols.EquivalentAperture),
		sensor:     find(cols.Sensor),
		sensorSize: find(cols.SensorSize),
	}

	required := []struct {
		name string
		pos  int
	}{
		{cols.Phone, idx.phone},
		{cols.EquivalentFocalLength, idx.eqFL},
		{cols.EquivalentAperture, idx.eqAperture},
	}
	for _, r := range required {
		if r.pos < 0 {
			return idx, fmt.Errorf("%w: %q", ErrMissingColumn, r.name)
		}
	}
	return idx, nil
}
