package models

// TickDefinition is one labeled position on a non-linear axis.
type TickDefinition struct {
	// Value is the physical quantity at this tick.
	Value float64 `json:"value"`
	// Label is the display label.
	Label string `json:"label"`
}

// PlotPoint is a projected point rewritten into chart space.
type PlotPoint struct {
	// X is the focal length axis position.
	X float64 `json:"x"`
	// Y is the value axis position.
	Y float64 `json:"y"`
	// PointType is the rendering tag (actual, theoretical_extension, theoretical_end).
	PointType string `json:"pointType"`
	// FocalLength is the focal length in mm the point represents.
	FocalLength float64 `json:"focalLength"`
	// Value is the projected optical value before axis mapping.
	Value float64 `json:"value"`
	// BasisFocalLength is the focal length of the lens that produced Value.
	BasisFocalLength float64 `json:"basisFocalLength"`
	// SensorLabel is the sensor-size label for sensor charts (e.g., "1/2.51").
	SensorLabel string `json:"sensorLabel,omitempty"`
	// Divergent is set when the basis lens's two projection rules disagree.
	Divergent bool `json:"divergent,omitempty"`
}

// TableEntry is the value of a phone at one reference focal length.
type TableEntry struct {
	// FocalLength is the reference focal length in mm.
	FocalLength float64 `json:"focalLength"`
	// Value is the projected value.
	Value float64 `json:"value"`
	// Native is true when a lens sits exactly at FocalLength.
	Native bool `json:"native"`
}

// Series is the plotted curve of one phone.
type Series struct {
	// Label is the phone display name.
	Label string `json:"label"`
	// Points are ordered by focal length.
	Points []PlotPoint `json:"points"`
	// Table holds values at every reference focal length the phone covers.
	Table []TableEntry `json:"table,omitempty"`
}

// Chart is the render-ready output for one metric.
type Chart struct {
	// Metric is the charted quantity ("aperture" or "sensor").
	Metric string `json:"metric"`
	// XTicks are the focal length major ticks, placed at integer positions.
	XTicks []TickDefinition `json:"xTicks"`
	// YTicks are the value axis ticks (sensor charts only).
	YTicks []TickDefinition `json:"yTicks,omitempty"`
	// YScale names the value axis mapping ("linear", "categorical", "log").
	YScale string `json:"yScale"`
	// Series holds one curve per phone.
	Series []Series `json:"series"`
}
