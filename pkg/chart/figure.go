/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package chart

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/eth-easl/indexplot/pkg/common"
	"github.com/eth-easl/indexplot/pkg/metric"
)

type Scale int

const (
	LinearScale Scale = iota
	LogScale
)

// Axis describes one coordinate axis of the figure. Base is only used by
// LogScale and sets where ticks are placed.
type Axis struct {
	Label string
	Scale Scale
	Base  float64
	Min   float64
	Max   float64
}

// BarSegment is the part of a stacked bar contributed by one jumps bucket.
// Width is in chunk size units and the bar spans ChunkSize +/- Width/2.
type BarSegment struct {
	ChunkSize int
	Width     float64
	Memory    int64
	Bottom    int64
	Top       int64
}

type BarLayer struct {
	Jumps    int
	Label    string
	Segments []BarSegment
}

type LinePoint struct {
	ChunkSize    int
	Runtime      float64
	RuntimeError float64
}

type LineSeries struct {
	Benchmark string
	Points    []LinePoint
}

// Figure is the composed dual-axis chart: stacked memory bars on a linear
// left axis and runtime lines on a logarithmic right axis, sharing a base-2
// logarithmic x axis. It holds copies of the input values only.
type Figure struct {
	Title string

	X       Axis
	Memory  Axis
	Runtime Axis

	Bars  []BarLayer
	Lines []LineSeries
}

func defaultAxes() (x, memory, runtime Axis) {
	x = Axis{
		Label: "chunk size",
		Scale: LogScale,
		Base:  common.ChunkSizeLogBase,
		Min:   float64(common.ChunkSizeAxis[0]),
		Max:   float64(common.ChunkSizeAxis[len(common.ChunkSizeAxis)-1]),
	}
	memory = Axis{
		Label: "memory/B",
		Scale: LinearScale,
		Min:   common.MemoryAxisMin,
		Max:   common.MemoryAxisMax,
	}
	runtime = Axis{
		Label: "runtime/ms",
		Scale: LogScale,
		Base:  10,
		Min:   common.RuntimeAxisMin,
		Max:   common.RuntimeAxisMax,
	}
	return
}

// Compose builds the figure from parsed runtime records and memory buckets.
// Nothing is returned unless the buckets line up with the chunk size axis and
// every benchmark has a runtime at every chunk size.
func Compose(records []common.RuntimeRecord, buckets *metric.MemoryBuckets) (*Figure, error) {
	axis := common.ChunkSizeAxis

	if err := buckets.Validate(axis); err != nil {
		return nil, fmt.Errorf("memory buckets do not match the chunk size axis: %w", err)
	}

	lines, err := composeLines(axis, records)
	if err != nil {
		return nil, err
	}

	fig := &Figure{
		Bars:  composeBars(axis, buckets),
		Lines: lines,
	}
	fig.X, fig.Memory, fig.Runtime = defaultAxes()

	return fig, nil
}

func composeBars(axis []int, buckets *metric.MemoryBuckets) []BarLayer {
	keys := buckets.Keys()

	layers := make([]BarLayer, len(keys))
	for k, jumps := range keys {
		layers[k] = BarLayer{
			Jumps:    jumps,
			Label:    fmt.Sprintf("jumps=%d", jumps),
			Segments: make([]BarSegment, len(axis)),
		}
	}

	for i, chunkSize := range axis {
		var bottom int64
		for k, memory := range buckets.StackedTotals(i) {
			layers[k].Segments[i] = BarSegment{
				ChunkSize: chunkSize,
				Width:     float64(chunkSize) / 2,
				Memory:    memory,
				Bottom:    bottom,
				Top:       bottom + memory,
			}
			bottom += memory
		}
	}

	return layers
}

func composeLines(axis []int, records []common.RuntimeRecord) ([]LineSeries, error) {
	var missing *multierror.Error
	var result []LineSeries

	for _, benchmark := range common.DistinctBenchmarks(records) {
		series := LineSeries{
			Benchmark: benchmark,
			Points:    make([]LinePoint, 0, len(axis)),
		}

		for _, chunkSize := range axis {
			record, ok := common.FindRuntime(records, benchmark, chunkSize)
			if !ok {
				missing = multierror.Append(missing, &common.LookupExhaustedError{
					Benchmark: benchmark,
					ChunkSize: chunkSize,
				})
				continue
			}

			series.Points = append(series.Points, LinePoint{
				ChunkSize:    chunkSize,
				Runtime:      record.Runtime,
				RuntimeError: record.RuntimeError,
			})
		}

		result = append(result, series)
	}

	if err := missing.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result, nil
}
