package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

type memoryRow struct {
	Jumps     int   `csv:"jumps"`
	ChunkSize int   `csv:"chunk_size"`
	Memory    int64 `csv:"memory"`
	Bottom    int64 `csv:"bottom"`
	Top       int64 `csv:"top"`
}

type runtimeRow struct {
	Benchmark    string  `csv:"benchmark"`
	ChunkSize    int     `csv:"chunk_size"`
	Runtime      float64 `csv:"runtime_ms"`
	RuntimeError float64 `csv:"runtime_error_ms"`
}

// WriteMemoryTable writes one row per drawn bar segment, layer by layer.
func WriteMemoryTable(w io.Writer, fig *Figure) error {
	var rows []memoryRow
	for _, layer := range fig.Bars {
		for _, s := range layer.Segments {
			rows = append(rows, memoryRow{
				Jumps:     layer.Jumps,
				ChunkSize: s.ChunkSize,
				Memory:    s.Memory,
				Bottom:    s.Bottom,
				Top:       s.Top,
			})
		}
	}
	return gocsv.Marshal(&rows, w)
}

// WriteRuntimeTable writes one row per point of every runtime line.
func WriteRuntimeTable(w io.Writer, fig *Figure) error {
	var rows []runtimeRow
	for _, series := range fig.Lines {
		for _, pt := range series.Points {
			rows = append(rows, runtimeRow{
				Benchmark:    series.Benchmark,
				ChunkSize:    pt.ChunkSize,
				Runtime:      pt.Runtime,
				RuntimeError: pt.RuntimeError,
			})
		}
	}
	return gocsv.Marshal(&rows, w)
}

// ExportTables writes <prefix>_memory.csv and <prefix>_runtime.csv with the
// values that were plotted.
func ExportTables(fig *Figure, prefix string) error {
	tables := []struct {
		path  string
		write func(io.Writer, *Figure) error
	}{
		{path: prefix + "_memory.csv", write: WriteMemoryTable},
		{path: prefix + "_runtime.csv", write: WriteRuntimeTable},
	}

	for _, table := range tables {
		f, err := os.Create(table.path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", table.path, err)
		}
		if err := table.write(f, fig); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", table.path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Infof("Plot data written to %s", table.path)
	}

	return nil
}
