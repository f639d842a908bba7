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
)

var runtimeColumns = []string{"benchmark", "chunk_size", "runtime", "runtime_error"}

func ParseRuntimeFile(path string) ([]common.RuntimeRecord, error) {
	log.Debugf("Parsing runtime file %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open runtime file: %w", err)
	}
	defer f.Close()

	return ParseRuntime(f, path)
}

// ParseRuntime reads runtime rows from r. Repeated (benchmark, chunk_size)
// pairs are all kept.
func ParseRuntime(r io.Reader, source string) ([]common.RuntimeRecord, error) {
	var result []common.RuntimeRecord

	err := scanDataLines(r, source, func(l dataLine) error {
		if err := l.expectFields(runtimeColumns); err != nil {
			return err
		}

		chunkSize, err := l.intField(runtimeColumns, 1)
		if err != nil {
			return err
		}
		runtime, err := l.floatField(runtimeColumns, 2)
		if err != nil {
			return err
		}
		runtimeError, err := l.floatField(runtimeColumns, 3)
		if err != nil {
			return err
		}

		record := common.RuntimeRecord{
			Benchmark:    l.fields[0],
			ChunkSize:    int(chunkSize),
			Runtime:      runtime,
			RuntimeError: runtimeError,
		}
		log.Tracef("Parsed runtime record %+v", record)

		result = append(result, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("Read %d runtime records from %s", len(result), source)
	return result, nil
}
