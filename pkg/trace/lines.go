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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/eth-easl/indexplot/pkg/common"
)

const maxLineLength = 1024 * 1024

type dataLine struct {
	source string
	number int
	text   string
	fields []string
}

func (l dataLine) fail(err error) error {
	return &common.ParseError{
		File: l.source,
		Line: l.number,
		Text: l.text,
		Err:  err,
	}
}

func (l dataLine) expectFields(columns []string) error {
	if len(l.fields) != len(columns) {
		return l.fail(&common.FieldCountError{Expected: columns, Got: len(l.fields)})
	}
	return nil
}

func (l dataLine) intField(columns []string, idx int) (int64, error) {
	v, err := strconv.ParseInt(l.fields[idx], 10, 64)
	if err != nil {
		return 0, l.fail(&common.NumericConversionError{Column: columns[idx], Value: l.fields[idx], Err: err})
	}
	return v, nil
}

func (l dataLine) floatField(columns []string, idx int) (float64, error) {
	v, err := strconv.ParseFloat(l.fields[idx], 64)
	if err != nil {
		return 0, l.fail(&common.NumericConversionError{Column: columns[idx], Value: l.fields[idx], Err: err})
	}
	return v, nil
}

// scanDataLines calls fn for every line that is neither blank nor a comment.
// Scanning stops at the first error returned by fn.
func scanDataLines(r io.Reader, source string, fn func(dataLine) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	number := 0
	for scanner.Scan() {
		number++
		text := scanner.Text()

		if strings.HasPrefix(text, common.CommentMarker) || strings.TrimSpace(text) == "" {
			continue
		}

		err := fn(dataLine{
			source: source,
			number: number,
			text:   text,
			fields: strings.Fields(text),
		})
		if err != nil {
			return err
		}
	}

	return scanner.Err()
}
