package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/eth-easl/indexplot/pkg/common"
)

func testFigure(t *testing.T) *Figure {
	fig, err := Compose(runtimeRecords("A", "B"), alignedBuckets(t))
	require.NoError(t, err)
	fig.Title = "benchmark index"
	return fig
}

func TestWriteToFormats(t *testing.T) {
	tests := []struct {
		format string
		magic  []byte
	}{
		{format: "png", magic: []byte("\x89PNG")},
		{format: "svg", magic: []byte("<?xml")},
		{format: "pdf", magic: []byte("%PDF")},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteTo(&buf, testFigure(t), 6*vg.Inch, 4*vg.Inch, tt.format, RenderOptions{})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), tt.magic), "unexpected %s header", tt.format)
		})
	}
}

func TestSaveWithErrorBars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")

	require.NoError(t, Save(testFigure(t), path, 8*vg.Inch, 6*vg.Inch, RenderOptions{ErrorBars: true}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.bmp")

	assert.Error(t, Save(testFigure(t), path, 8*vg.Inch, 6*vg.Inch, RenderOptions{}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRenderOutOfRangeRuntimes(t *testing.T) {
	records := runtimeRecords("A")
	records[0].Runtime = 0
	records[4].Runtime = -1
	records[9].Runtime = 250
	records[9].RuntimeError = 500

	fig, err := Compose(records, alignedBuckets(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteTo(&buf, fig, 6*vg.Inch, 4*vg.Inch, "png", RenderOptions{ErrorBars: true}))
}

func TestPositiveRuns(t *testing.T) {
	points := make([]LinePoint, len(common.ChunkSizeAxis))
	for i, chunkSize := range common.ChunkSizeAxis {
		points[i] = LinePoint{ChunkSize: chunkSize, Runtime: 1}
	}
	points[0].Runtime = 0
	points[4].Runtime = -2
	points[5].Runtime = 0

	runs := positiveRuns(points)

	require.Len(t, runs, 2)
	assert.Equal(t, points[1:4], runs[0])
	assert.Equal(t, points[6:], runs[1])
	assert.Empty(t, positiveRuns([]LinePoint{{ChunkSize: 1, Runtime: 0}}))
}

func TestInfiniteRuntimeBreaksLine(t *testing.T) {
	records := runtimeRecords("A")
	records[3].Runtime = math.Inf(1)
	fig, err := Compose(records, alignedBuckets(t))
	require.NoError(t, err)

	runs := positiveRuns(fig.Lines[0].Points)
	require.Len(t, runs, 2)
	assert.Len(t, runs[0], 3)
	assert.Len(t, runs[1], len(common.ChunkSizeAxis)-4)

	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, fig, 4*vg.Inch, 3*vg.Inch, "png", RenderOptions{ErrorBars: true}))
	assert.NotZero(t, buf.Len())
}

func TestErrorBarPoints(t *testing.T) {
	_, _, runtimeAxis := defaultAxes()
	points := []LinePoint{
		{ChunkSize: 1, Runtime: 1, RuntimeError: 0.1},
		{ChunkSize: 2, Runtime: 0.05, RuntimeError: 0.5},
		{ChunkSize: 4, Runtime: 90, RuntimeError: 20},
		{ChunkSize: 8, Runtime: 500, RuntimeError: 1},
		{ChunkSize: 16, Runtime: 2, RuntimeError: -0.5},
	}

	got := errorBarPoints(points, runtimeAxis)

	require.Len(t, got.XYs, 4)
	require.Len(t, got.YErrors, 4)
	assert.InDelta(t, 0.1, got.YErrors[0].Low, 1e-12)
	assert.InDelta(t, 0.1, got.YErrors[0].High, 1e-12)
	assert.InDelta(t, 0.04, got.YErrors[1].Low, 1e-12)
	assert.InDelta(t, 0.5, got.YErrors[1].High, 1e-12)
	assert.InDelta(t, 20, got.YErrors[2].Low, 1e-12)
	assert.InDelta(t, 10, got.YErrors[2].High, 1e-12)
	assert.Equal(t, 16.0, got.XYs[3].X)
	assert.InDelta(t, 0.5, got.YErrors[3].Low, 1e-12)
}
