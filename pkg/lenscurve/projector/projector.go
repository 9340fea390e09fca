// Package projector turns a phone's native lenses into a dense, plottable
// curve across reference focal lengths.
//
// Each lens owns the segment from its own focal length up to the next lens's
// focal length (or the ceiling, for the last lens). Inside its segment the
// lens's value is carried forward with the crop-factor rule: equivalent
// values scale linearly with focal length.
package projector

import (
	"math"
	"sort"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"go.uber.org/zap"
)

const (
	// DefaultCeilingFocalLength is where the last lens's segment ends.
	DefaultCeilingFocalLength = 200.0
	// DefaultDivergenceTolerance is the relative disagreement between the
	// physical and ratio rules above which a lens is flagged.
	DefaultDivergenceTolerance = 0.05
)

// Options configures projection.
type Options struct {
	// Ceiling is the terminal focal length for the last lens.
	Ceiling float64
	// DivergenceTolerance is the relative tolerance for rule divergence.
	DivergenceTolerance float64
}

// DefaultOptions returns default projection options.
func DefaultOptions() Options {
	return Options{
		Ceiling:             DefaultCeilingFocalLength,
		DivergenceTolerance: DefaultDivergenceTolerance,
	}
}

// Projector projects lens sets. It holds no state between calls.
type Projector struct {
	opts   Options
	logger *zap.Logger
}

// New creates a Projector. A nil logger discards warnings.
func New(opts Options, logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Ceiling <= 0 {
		opts.Ceiling = DefaultCeilingFocalLength
	}
	if opts.DivergenceTolerance <= 0 {
		opts.DivergenceTolerance = DefaultDivergenceTolerance
	}
	return &Projector{opts: opts, logger: logger}
}

// Ceiling returns the configured ceiling focal length.
func (p *Projector) Ceiling() float64 {
	return p.opts.Ceiling
}

// Project returns the ordered points for lenses across refs.
//
// Points ascend by focal length. Where a segment boundary meets the next
// lens's native point, the boundary comes first so a polyline draws a
// vertical jump. Unusable lenses are skipped with a warning.
func (p *Projector) Project(lenses []models.NativeLens, refs []float64) []models.ProjectedPoint {
	lenses = p.Normalize(lenses)
	if len(lenses) == 0 {
		return nil
	}

	var points []models.ProjectedPoint
	for i, lens := range lenses {
		var next *models.NativeLens
		boundary := p.opts.Ceiling
		if i+1 < len(lenses) {
			n := lenses[i+1]
			next = &n
			boundary = n.FocalLength
		}

		divergent := p.checkDivergence(lens)

		points = append(points, models.ProjectedPoint{
			AxisFocalLength: lens.FocalLength,
			Value:           lens.OpticalValue,
			Kind:            models.KindNative,
			Basis:           lens,
		})

		for _, fl := range refs {
			if fl <= lens.FocalLength || fl >= boundary {
				continue
			}
			points = append(points, models.ProjectedPoint{
				AxisFocalLength: fl,
				Value:           ProjectValue(lens, fl),
				Kind:            models.KindInterpolatedConnector,
				Basis:           lens,
				Divergent:       divergent,
			})
		}

		if boundary > lens.FocalLength {
			points = append(points, models.ProjectedPoint{
				AxisFocalLength: boundary,
				Value:           ProjectValue(lens, boundary),
				Kind:            models.KindSegmentBoundary,
				Basis:           lens,
				Next:            next,
				Divergent:       divergent,
			})
		}
	}

	return points
}

// ValueAt returns the value at targetFL using the lens responsible for that
// focal length. ok is false below the widest native lens and beyond the
// ceiling (unless a native lens sits exactly there).
func (p *Projector) ValueAt(lenses []models.NativeLens, targetFL float64) (value float64, ok bool) {
	lenses = p.Normalize(lenses)
	basis, ok := basisFor(lenses, targetFL)
	if !ok {
		return 0, false
	}
	if targetFL > p.opts.Ceiling && targetFL != basis.FocalLength {
		return 0, false
	}
	return ProjectValue(basis, targetFL), true
}

// Table evaluates the curve at every reference focal length the lens set
// covers. Focal lengths without a value are omitted.
func (p *Projector) Table(lenses []models.NativeLens, refs []float64) []models.TableEntry {
	lenses = p.Normalize(lenses)
	var entries []models.TableEntry
	for _, fl := range refs {
		basis, ok := basisFor(lenses, fl)
		if !ok || (fl > p.opts.Ceiling && fl != basis.FocalLength) {
			continue
		}
		entries = append(entries, models.TableEntry{
			FocalLength: fl,
			Value:       ProjectValue(basis, fl),
			Native:      fl == basis.FocalLength,
		})
	}
	return entries
}

// Normalize returns a sorted copy of lenses with unusable and duplicate
// entries removed. The first lens seen at a focal length wins.
func (p *Projector) Normalize(lenses []models.NativeLens) []models.NativeLens {
	out := make([]models.NativeLens, 0, len(lenses))
	for _, l := range lenses {
		if !finite(l.FocalLength) || l.FocalLength <= 0 {
			p.logger.Warn("Skipping lens with missing focal length",
				zap.Float64("focal_length", l.FocalLength))
			continue
		}
		if !finite(l.OpticalValue) {
			p.logger.Warn("Skipping lens with missing optical value",
				zap.Float64("focal_length", l.FocalLength))
			continue
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FocalLength < out[j].FocalLength
	})

	deduped := out[:0]
	for i, l := range out {
		if i > 0 && l.FocalLength == deduped[len(deduped)-1].FocalLength {
			p.logger.Warn("Skipping duplicate lens",
				zap.Float64("focal_length", l.FocalLength))
			continue
		}
		deduped = append(deduped, l)
	}
	return deduped
}

// checkDivergence reports whether lens's two rule branches disagree beyond
// tolerance, logging a warning when they do.
func (p *Projector) checkDivergence(lens models.NativeLens) bool {
	diff, ok := Divergence(lens)
	if !ok || diff <= p.opts.DivergenceTolerance {
		return false
	}
	p.logger.Warn("Physical and equivalent values disagree",
		zap.Float64("focal_length", lens.FocalLength),
		zap.Float64("optical_value", lens.OpticalValue),
		zap.Float64("physical_value", *lens.PhysicalValue),
		zap.Float64("conversion_factor", *lens.ConversionFactor),
		zap.Float64("relative_diff", diff))
	return true
}

// basisFor returns the lens whose segment contains targetFL. lenses must be
// normalized.
func basisFor(lenses []models.NativeLens, targetFL float64) (models.NativeLens, bool) {
	if len(lenses) == 0 || !finite(targetFL) || targetFL < lenses[0].FocalLength {
		return models.NativeLens{}, false
	}
	// Last lens with FocalLength <= targetFL
	i := sort.Search(len(lenses), func(j int) bool {
		return lenses[j].FocalLength > targetFL
	}) - 1
	return lenses[i], true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
