package projector

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultReferenceLabels are the chart's major focal lengths.
var DefaultReferenceLabels = []string{
	"12mm", "16mm", "24mm", "28mm", "35mm", "50mm",
	"75mm", "85mm", "105mm", "120mm", "135mm", "200mm",
}

// ParseReferenceLabels converts labels such as "24mm" into an ascending,
// deduplicated list of focal lengths. Labels that do not hold a positive
// number are skipped.
func ParseReferenceLabels(labels []string, logger *zap.Logger) []float64 {
	if logger == nil {
		logger = zap.NewNop()
	}

	var refs []float64
	for _, label := range labels {
		fl, ok := ParseFocalLength(label)
		if !ok {
			logger.Warn("Skipping invalid reference focal length", zap.String("label", label))
			continue
		}
		refs = append(refs, fl)
	}

	sort.Float64s(refs)
	deduped := refs[:0]
	for i, fl := range refs {
		if i > 0 && fl == deduped[len(deduped)-1] {
			continue
		}
		deduped = append(deduped, fl)
	}
	if len(deduped) == 0 {
		return nil
	}
	return deduped
}

// ParseFocalLength parses "24", "24mm" or "24 mm".
func ParseFocalLength(s string) (float64, bool) {
	t := strings.TrimSpace(strings.ToLower(s))
	t = strings.TrimSpace(strings.TrimSuffix(t, "mm"))
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || !finite(f) || f <= 0 {
		return 0, false
	}
	return f, true
}

// FormatFocalLength formats a focal length as a lens-details key ("24", "6.5").
func FormatFocalLength(fl float64) string {
	return strconv.FormatFloat(fl, 'f', -1, 64)
}
