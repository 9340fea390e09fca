package models

// OriginalLens is one native lens as listed in the chart data file.
type OriginalLens struct {
	// FocalLength is the equivalent focal length in mm.
	FocalLength Number `json:"focalLength"`
	// Aperture is the equivalent aperture F-number.
	Aperture Number `json:"aperture"`
	// Type is the lens role (e.g., "Ultra Wide", "Main", "Telephoto").
	Type string `json:"type"`
	// PhysicalApertureValue is the physical F-number (optional).
	PhysicalApertureValue Number `json:"physicalApertureValue,omitzero"`
	// ConversionFactor is the equivalent/physical focal length ratio (optional).
	ConversionFactor Number `json:"conversionFactor,omitzero"`
}

// LensDetail holds the spreadsheet details of one lens, keyed by focal length.
type LensDetail struct {
	// Sensor is the sensor model name.
	Sensor string `json:"sensor,omitempty"`
	// SensorSize is the sensor-size descriptor (e.g., "1/2.51").
	SensorSize string `json:"sensorSize,omitempty"`
	// PhysicalFocalLength is the physical focal length in mm.
	PhysicalFocalLength Number `json:"physicalFocalLength"`
	// EquivalentFocalLength is the 35mm-equivalent focal length in mm.
	EquivalentFocalLength Number `json:"equivalentFocalLength"`
	// Aperture is the physical F-number.
	Aperture Number `json:"aperture"`
	// EquivalentAperture is the 35mm-equivalent F-number.
	EquivalentAperture Number `json:"equivalentAperture"`
}

// PhoneChartDataset holds the lenses of one phone.
type PhoneChartDataset struct {
	// Label is the phone display name, unique within a data file.
	Label string `json:"label"`
	// OriginalLenses lists the native lenses.
	OriginalLenses []OriginalLens `json:"originalLenses"`
	// LensDetails maps a focal length (as a string) to lens details.
	LensDetails map[string]LensDetail `json:"lensDetails,omitempty"`
}

// ChartDataFile is the static JSON consumed by the chart builder.
type ChartDataFile struct {
	// Labels are the reference focal length labels ("12mm".."200mm").
	Labels []string `json:"labels"`
	// Datasets holds one entry per phone.
	Datasets []PhoneChartDataset `json:"datasets"`
}
