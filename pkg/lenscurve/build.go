package lenscurve

import (
	"context"

	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/axis"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/projector"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/sensor"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Build projects every phone in data and returns one chart per requested
// metric. Phones are projected concurrently; series keep the data file's
// order. The only errors are a data file without reference focal lengths
// and context cancellation.
func Build(ctx context.Context, data *models.ChartDataFile, opts Options) ([]models.Chart, error) {
	logger := opts.logger()

	// Reference focal lengths are derived once and passed down explicitly
	refs := projector.ParseReferenceLabels(data.Labels, logger)
	if len(refs) == 0 {
		return nil, ErrNoReferenceFocalLengths
	}
	xAxis := axis.NewEquidistant(axis.FocalTicks(refs))

	var charts []models.Chart
	for _, metric := range opts.Metrics() {
		chart, err := buildChart(ctx, data, refs, xAxis, metric, opts)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart)
	}
	return charts, nil
}

// valueAxis returns the value axis mapper for metric, or nil when values
// are plotted unchanged.
func valueAxis(metric Metric, opts Options) (axis.Mapper, string) {
	if metric != MetricSensor {
		return nil, "linear"
	}
	if opts.SensorScale == SensorScaleLog {
		return axis.SensorLogScale(), string(SensorScaleLog)
	}
	return axis.NewReversed(axis.SensorTicks()), string(SensorScaleCategorical)
}

func buildChart(ctx context.Context, data *models.ChartDataFile, refs []float64, xAxis *axis.Equidistant, metric Metric, opts Options) (models.Chart, error) {
	yAxis, yScale := valueAxis(metric, opts)
	chart := models.Chart{
		Metric: string(metric),
		XTicks: xAxis.Ticks(),
		YScale: yScale,
		Series: make([]models.Series, len(data.Datasets)),
	}
	if yAxis != nil {
		chart.YTicks = yAxis.Ticks()
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, ds := range data.Datasets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chart.Series[i] = buildSeries(ds, refs, xAxis, yAxis, metric, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Chart{}, err
	}

	opts.logger().Debug("Built chart",
		zap.String("metric", chart.Metric),
		zap.Int("series", len(chart.Series)))
	return chart, nil
}

// buildSeries projects one phone and rewrites its points into chart space.
func buildSeries(ds models.PhoneChartDataset, refs []float64, xAxis *axis.Equidistant, yAxis axis.Mapper, metric Metric, opts Options) models.Series {
	logger := opts.logger().With(zap.String("phone", ds.Label), zap.String("metric", string(metric)))
	proj := projector.New(opts.projectorOptions(), logger)

	var lenses []models.NativeLens
	if metric == MetricSensor {
		lenses = projector.SensorLenses(ds, opts.ShouldNormalizeSensorBasis(), logger)
	} else {
		lenses = projector.ApertureLenses(ds, logger)
	}

	series := models.Series{
		Label:  ds.Label,
		Points: []models.PlotPoint{},
	}
	for _, pt := range proj.Project(lenses, refs) {
		pp := models.PlotPoint{
			X:                xAxis.Map(pt.AxisFocalLength),
			Y:                pt.Value,
			PointType:        pt.Kind.PointType(),
			FocalLength:      pt.AxisFocalLength,
			Value:            pt.Value,
			BasisFocalLength: pt.Basis.FocalLength,
			Divergent:        pt.Divergent,
		}
		if metric == MetricSensor {
			pp.Y = yAxis.Map(sensor.Fraction(pt.Value))
			pp.SensorLabel = sensor.Label(pt.Value)
		}
		series.Points = append(series.Points, pp)
	}

	if opts.IncludeTable {
		series.Table = proj.Table(lenses, refs)
	}
	return series
}
