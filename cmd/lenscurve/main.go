// Package main provides the CLI entry point for lenscurve.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/sukiandfds/mobile-phone-camera-data-website/internal/config"
	"github.com/sukiandfds/mobile-phone-camera-data-website/internal/logging"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/axis"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/models"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/output"
	"github.com/sukiandfds/mobile-phone-camera-data-website/pkg/lenscurve/projector"
	"go.uber.org/zap"
)

var (
	configPath  string
	verbose     bool
	outputPath  string
	pretty      bool
	sheet       string
	metric      string
	sensorScale string
	withTable   bool
	axisName    string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lenscurve",
		Short: "Chart equivalent aperture and sensor size of phone camera lenses",
		Long: `lenscurve converts a lens spreadsheet into static chart data and projects
each phone's native lenses onto a dense curve across reference focal lengths.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg.Logging.Level, verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "lenscurve.yaml", "Config file path (defaults apply if missing)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newIngestCmd(), newProjectCmd(), newTicksCmd())
	return rootCmd
}

func newIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [input.xlsx]",
		Short: "Convert a lens spreadsheet into chart data JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runIngest,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read (default: config, then first sheet)")
	return cmd
}

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [chartdata.json]",
		Short: "Project lens curves into render-ready chart JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runProject,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&metric, "metric", "all", "Charted metric: aperture, sensor, or all")
	cmd.Flags().StringVar(&sensorScale, "sensor-scale", "", "Sensor axis: categorical or log (default: config)")
	cmd.Flags().BoolVar(&withTable, "table", false, "Include per-phone value tables")
	return cmd
}

func newTicksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print axis tick definitions",
		Args:  cobra.NoArgs,
		RunE:  runTicks,
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&axisName, "axis", "focal", "Axis: focal, sensor, or sensor-log")
	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	opts := cfg.IngestOptions()
	opts.Logger = logger
	if sheet != "" {
		opts.Sheet = sheet
	}

	data, err := lenscurve.Ingest(args[0], opts)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	jsonData, err := output.DataFileToJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), jsonData)
}

func runProject(cmd *cobra.Command, args []string) error {
	m, err := lenscurve.ParseMetric(metric)
	if err != nil {
		return err
	}

	opts := cfg.BuildOptions()
	opts.Metric = m
	opts.Logger = logger
	if sensorScale != "" {
		sc, err := lenscurve.ParseSensorScale(sensorScale)
		if err != nil {
			return err
		}
		opts.SensorScale = sc
	}
	if withTable {
		opts.IncludeTable = true
	}

	data, err := lenscurve.LoadDataFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load chart data: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	charts, err := lenscurve.Build(ctx, data, opts)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	jsonData, err := output.ChartsToJSON(charts, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), jsonData)
}

func runTicks(cmd *cobra.Command, args []string) error {
	var ticks []models.TickDefinition
	switch axisName {
	case "focal":
		refs := projector.ParseReferenceLabels(cfg.Chart.ReferenceLabels, logger)
		ticks = axis.FocalTicks(refs)
	case "sensor":
		ticks = axis.SensorTicks()
	case "sensor-log":
		ticks = axis.CuratedSensorTicks()
	default:
		return fmt.Errorf("invalid axis: %s (must be focal, sensor, or sensor-log)", axisName)
	}

	jsonData, err := output.TicksToJSON(ticks, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), jsonData)
}

// writeOutput writes data to the --output file, or to w when unset.
func writeOutput(w io.Writer, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Debug("Wrote output", zap.String("path", outputPath), zap.Int("bytes", len(data)))
		return nil
	}
	_, err := fmt.Fprintln(w, string(data))
	return err
}
