package models

// NativeLens is one physically present camera module on a phone.
type NativeLens struct {
	// FocalLength is the equivalent focal length in mm. Unique within a phone.
	FocalLength float64 `json:"focalLength"`
	// OpticalValue is the measured quantity at FocalLength: the equivalent
	// F-number, or the sensor-size denominator for sensor curves.
	OpticalValue float64 `json:"opticalValue"`
	// PhysicalValue is the physical (non-equivalent) aperture (optional).
	PhysicalValue *float64 `json:"physicalValue,omitempty"`
	// ConversionFactor is the sensor-format correction factor (optional).
	ConversionFactor *float64 `json:"conversionFactor,omitempty"`
	// SensorSpec is the sensor-size descriptor (e.g., "1/2.51"), if known.
	SensorSpec string `json:"sensorSpec,omitempty"`
}

// HasPhysical reports whether both physical parameters are present.
func (l NativeLens) HasPhysical() bool {
	return l.PhysicalValue != nil && l.ConversionFactor != nil
}
