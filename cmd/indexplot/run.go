package main

import (
	"context"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/eth-easl/indexplot/pkg/chart"
	"github.com/eth-easl/indexplot/pkg/config"
	"github.com/eth-easl/indexplot/pkg/metric"
	"github.com/eth-easl/indexplot/pkg/trace"
	"github.com/eth-easl/indexplot/pkg/viewer"
)

var showChart = viewer.Show

// run parses both result files, composes the chart and writes it. Any
// failure stops before the chart file is written.
func run(ctx context.Context, cfg *config.PlotConfiguration) error {
	records, err := trace.ParseRuntimeFile(cfg.RuntimeFile)
	if err != nil {
		return err
	}

	buckets := metric.NewMemoryBuckets()
	if err := trace.ParseMemoryFile(cfg.MemoryFile, buckets); err != nil {
		return err
	}

	fig, err := chart.Compose(records, buckets)
	if err != nil {
		return err
	}
	fig.Title = cfg.Title

	logSummary(fig)

	width := vg.Length(cfg.WidthInch) * vg.Inch
	height := vg.Length(cfg.HeightInch) * vg.Inch
	if err := chart.Save(fig, cfg.Output, width, height, chart.RenderOptions{ErrorBars: cfg.ErrorBars}); err != nil {
		return err
	}
	log.Infof("Chart written to %s", cfg.Output)

	if cfg.TablePrefix != "" {
		if err := chart.ExportTables(fig, cfg.TablePrefix); err != nil {
			return err
		}
	}

	if cfg.Show {
		if err := showChart(ctx, cfg.Output); err != nil {
			log.Warnf("Could not display the chart: %v", err)
		}
	}

	return nil
}

func logSummary(fig *chart.Figure) {
	for _, s := range chart.Summarize(fig) {
		log.Infof("Benchmark %s: fastest %.3f ms at chunk size %d, mean %.3f ms, geometric mean %.3f ms",
			s.Benchmark, s.MinRuntime, s.FastestChunkSize, s.MeanRuntime, s.GeoMeanRuntime)
	}

	chunkSize, total := chart.PeakMemory(fig)
	log.Infof("Peak memory %s at chunk size %d", humanize.Bytes(uint64(total)), chunkSize)
}
