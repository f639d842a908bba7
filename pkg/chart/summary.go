package chart

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type SeriesSummary struct {
	Benchmark string

	FastestChunkSize int
	MinRuntime       float64
	MeanRuntime      float64
	GeoMeanRuntime   float64
}

func Summarize(fig *Figure) []SeriesSummary {
	result := make([]SeriesSummary, 0, len(fig.Lines))

	for _, series := range fig.Lines {
		if len(series.Points) == 0 {
			continue
		}

		runtimes := make([]float64, len(series.Points))
		for i, pt := range series.Points {
			runtimes[i] = pt.Runtime
		}
		fastest := floats.MinIdx(runtimes)

		result = append(result, SeriesSummary{
			Benchmark:        series.Benchmark,
			FastestChunkSize: series.Points[fastest].ChunkSize,
			MinRuntime:       runtimes[fastest],
			MeanRuntime:      stat.Mean(runtimes, nil),
			GeoMeanRuntime:   stat.GeometricMean(runtimes, nil),
		})
	}

	return result
}

// PeakMemory returns the chunk size with the tallest memory stack.
func PeakMemory(fig *Figure) (chunkSize int, total int64) {
	if len(fig.Bars) == 0 {
		return 0, 0
	}

	top := fig.Bars[len(fig.Bars)-1]
	for _, s := range top.Segments {
		if s.Top > total || chunkSize == 0 {
			chunkSize, total = s.ChunkSize, s.Top
		}
	}
	return
}
