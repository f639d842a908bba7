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
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/eth-easl/indexplot/pkg/common"
	"github.com/eth-easl/indexplot/pkg/metric"
)

var memoryColumns = []string{"chunk_size", "jumps", "memory"}

func ParseMemoryFile(path string, buckets *metric.MemoryBuckets) error {
	log.Debugf("Parsing memory file %s", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open memory file: %w", err)
	}
	defer f.Close()

	return ParseMemory(f, path, buckets)
}

// ParseMemory appends every memory row of r to the bucket of its jumps
// value. Rows are expected in ascending chunk size order within each bucket;
// MemoryBuckets.Validate checks that afterwards.
func ParseMemory(r io.Reader, source string, buckets *metric.MemoryBuckets) error {
	rows := 0

	err := scanDataLines(r, source, func(l dataLine) error {
		if err := l.expectFields(memoryColumns); err != nil {
			return err
		}

		var values [3]int64
		for i := range values {
			v, err := l.intField(memoryColumns, i)
			if err != nil {
				return err
			}
			values[i] = v
		}

		record := common.MemoryRecord{
			ChunkSize: int(values[0]),
			Jumps:     int(values[1]),
			Memory:    values[2],
		}
		if err := buckets.Append(record); err != nil {
			return l.fail(err)
		}
		log.Tracef("Parsed memory record %+v", record)

		rows++
		return nil
	})
	if err != nil {
		return err
	}

	log.Debugf("Read %d memory rows from %s", rows, source)
	return nil
}
