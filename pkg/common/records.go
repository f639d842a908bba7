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

package common

import (
	"strconv"
)

// RuntimeRecord is one line of the runtime file. Runtime and RuntimeError are
// in milliseconds.
type RuntimeRecord struct {
	Benchmark    string
	ChunkSize    int
	Runtime      float64
	RuntimeError float64
}

// Fields renders the record back into its four columns. Floats use the
// shortest representation that parses back to the same value.
func (r RuntimeRecord) Fields() []string {
	return []string{
		r.Benchmark,
		strconv.Itoa(r.ChunkSize),
		strconv.FormatFloat(r.Runtime, 'g', -1, 64),
		strconv.FormatFloat(r.RuntimeError, 'g', -1, 64),
	}
}

type MemoryRecord struct {
	ChunkSize int
	Jumps     int
	Memory    int64
}

// DistinctBenchmarks returns benchmark names in the order they first appear.
func DistinctBenchmarks(records []RuntimeRecord) []string {
	seen := make(map[string]struct{})
	var result []string

	for _, r := range records {
		if _, ok := seen[r.Benchmark]; ok {
			continue
		}
		seen[r.Benchmark] = struct{}{}
		result = append(result, r.Benchmark)
	}

	return result
}

// FindRuntime returns the first record matching both benchmark and chunk size.
func FindRuntime(records []RuntimeRecord, benchmark string, chunkSize int) (RuntimeRecord, bool) {
	for _, r := range records {
		if r.ChunkSize == chunkSize && r.Benchmark == benchmark {
			return r, true
		}
	}

	return RuntimeRecord{}, false
}
