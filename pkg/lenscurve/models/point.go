package models

// Kind classifies a projected point.
type Kind int

const (
	// KindNative is the lens's own measured value at its native focal length.
	KindNative Kind = iota
	// KindInterpolatedConnector lies strictly between the basis lens's focal
	// length and its segment boundary. Computed for visual continuity.
	KindInterpolatedConnector
	// KindSegmentBoundary is where projection passes to the next native lens,
	// or the ceiling focal length for the last lens.
	KindSegmentBoundary
)

// Point type tags consumed by the rendering layer.
const (
	PointTypeActual               = "actual"
	PointTypeTheoreticalExtension = "theoretical_extension"
	PointTypeTheoreticalEnd       = "theoretical_end"
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindInterpolatedConnector:
		return "interpolated_connector"
	case KindSegmentBoundary:
		return "segment_boundary"
	default:
		return "unknown"
	}
}

// PointType returns the rendering tag for k.
func (k Kind) PointType() string {
	switch k {
	case KindNative:
		return PointTypeActual
	case KindInterpolatedConnector:
		return PointTypeTheoreticalExtension
	case KindSegmentBoundary:
		return PointTypeTheoreticalEnd
	default:
		return ""
	}
}

// ProjectedPoint is one plotted point derived from a NativeLens.
type ProjectedPoint struct {
	// AxisFocalLength is the focal length (mm) this point represents.
	AxisFocalLength float64
	// Value is the projected optical value at AxisFocalLength.
	Value float64
	// Kind classifies the point.
	Kind Kind
	// Basis is the lens whose parameters produced the value.
	Basis NativeLens
	// Next is the lens that takes over at a segment boundary. Nil for
	// non-boundary points and for the boundary at the ceiling.
	Next *NativeLens
	// Divergent marks projected points whose basis lens has physical and
	// equivalent values that disagree beyond tolerance.
	Divergent bool
}

// AtCeiling reports whether p is the terminal boundary of the last lens.
func (p ProjectedPoint) AtCeiling() bool {
	return p.Kind == KindSegmentBoundary && p.Next == nil
}
