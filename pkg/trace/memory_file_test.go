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

package trace

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/eth-easl/indexplot/pkg/common"
	"github.com/eth-easl/indexplot/pkg/metric"
)

func TestParseMemoryFile(t *testing.T) {
	buckets := metric.NewMemoryBuckets()
	require.NoError(t, ParseMemoryFile("test_data/memory.tsv", buckets))

	for _, jumps := range common.JumpsBuckets {
		assert.Equal(t, len(common.ChunkSizeAxis), buckets.Len(jumps), "jumps=%d", jumps)
		assert.Equal(t, common.ChunkSizeAxis, buckets.ChunkSizes(jumps), "jumps=%d", jumps)
	}
	assert.NoError(t, buckets.Validate(common.ChunkSizeAxis))

	assert.Equal(t, int64(1298576), buckets.Series(0)[0])
	assert.Equal(t, int64(6*512*250000+1048576), buckets.Series(5)[9])
}

func TestParseMemoryUnknownJumps(t *testing.T) {
	buckets := metric.NewMemoryBuckets()
	err := ParseMemoryFile("test_data/memory_unknown_jumps.tsv", buckets)
	require.Error(t, err)

	var bucketErr *common.UnknownBucketError
	require.True(t, errors.As(err, &bucketErr))
	assert.Equal(t, 6, bucketErr.Jumps)

	var parseErr *common.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "test_data/memory_unknown_jumps.tsv", parseErr.File)
}

func TestParseMemoryNegativeJumps(t *testing.T) {
	err := ParseMemory(strings.NewReader("1 -1 100\n"), "inline", metric.NewMemoryBuckets())

	var bucketErr *common.UnknownBucketError
	require.True(t, errors.As(err, &bucketErr))
	assert.Equal(t, -1, bucketErr.Jumps)
}

func TestParseMemoryMalformedLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "field count",
			input: "1 0\n",
			check: func(t *testing.T, err error) {
				var countErr *common.FieldCountError
				require.True(t, errors.As(err, &countErr))
				assert.Equal(t, 2, countErr.Got)
			},
		},
		{
			name:  "runtime style line",
			input: "A 1 10.0 0.5\n",
			check: func(t *testing.T, err error) {
				var countErr *common.FieldCountError
				require.True(t, errors.As(err, &countErr))
			},
		},
		{
			name:  "fractional memory",
			input: "1 0 1.5e9\n",
			check: func(t *testing.T, err error) {
				var convErr *common.NumericConversionError
				require.True(t, errors.As(err, &convErr))
				assert.Equal(t, "memory", convErr.Column)
				assert.Equal(t, "1.5e9", convErr.Value)
			},
		},
		{
			name:  "jumps not a number",
			input: "1 x 100\n",
			check: func(t *testing.T, err error) {
				var convErr *common.NumericConversionError
				require.True(t, errors.As(err, &convErr))
				assert.Equal(t, "jumps", convErr.Column)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseMemory(strings.NewReader(tt.input), "inline", metric.NewMemoryBuckets())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestMemoryRowsLandInTheirBucket(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 60).Draw(t, "rows")
		rows := make([]common.MemoryRecord, n)

		var sb strings.Builder
		sb.WriteString("# chunk_size jumps memory\n")
		for i := range rows {
			rows[i] = common.MemoryRecord{
				ChunkSize: rapid.SampledFrom(common.ChunkSizeAxis).Draw(t, "chunk_size"),
				Jumps:     rapid.IntRange(common.MinJumps, common.MaxJumps).Draw(t, "jumps"),
				Memory:    rapid.Int64Range(0, 1<<40).Draw(t, "memory"),
			}
			fmt.Fprintf(&sb, "%d\t%d\t%d\n", rows[i].ChunkSize, rows[i].Jumps, rows[i].Memory)
		}

		buckets := metric.NewMemoryBuckets()
		if err := ParseMemory(strings.NewReader(sb.String()), "generated", buckets); err != nil {
			t.Fatalf("parse: %v", err)
		}

		total := 0
		for _, jumps := range common.JumpsBuckets {
			var want []int64
			for _, r := range rows {
				if r.Jumps == jumps {
					want = append(want, r.Memory)
				}
			}

			got := buckets.Series(jumps)
			if len(got) != len(want) {
				t.Fatalf("jumps=%d has %d values, want %d", jumps, len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("jumps=%d position %d is %d, want %d", jumps, i, got[i], want[i])
				}
			}
			total += len(got)
		}

		if total != n {
			t.Fatalf("buckets hold %d values, want %d", total, n)
		}
	})
}
