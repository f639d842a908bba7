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
	"fmt"
	"strings"
)

// ParseError attaches the source position to a failure while reading a
// data file.
type ParseError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v (line %q)", e.File, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type FieldCountError struct {
	Expected []string
	Got      int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("expected %d fields (%s), got %d",
		len(e.Expected), strings.Join(e.Expected, " "), e.Got)
}

type NumericConversionError struct {
	Column string
	Value  string
	Err    error
}

func (e *NumericConversionError) Error() string {
	return fmt.Sprintf("field %s: cannot convert %q to a number: %v", e.Column, e.Value, e.Err)
}

func (e *NumericConversionError) Unwrap() error {
	return e.Err
}

type UnknownBucketError struct {
	Jumps int
}

func (e *UnknownBucketError) Error() string {
	return fmt.Sprintf("jumps value %d is not one of the buckets %d..%d", e.Jumps, MinJumps, MaxJumps)
}

// LookupExhaustedError means no runtime record exists for a pair that a line
// series needs.
type LookupExhaustedError struct {
	Benchmark string
	ChunkSize int
}

func (e *LookupExhaustedError) Error() string {
	return fmt.Sprintf("no runtime measurement for benchmark %q at chunk size %d", e.Benchmark, e.ChunkSize)
}

// AlignmentError reports a memory bucket that does not line up with the chunk
// size axis. Position is -1 when the bucket length is wrong.
type AlignmentError struct {
	Jumps    int
	Position int
	Expected int
	Got      int
}

func (e *AlignmentError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("memory bucket jumps=%d has %d values, expected %d", e.Jumps, e.Got, e.Expected)
	}
	return fmt.Sprintf("memory bucket jumps=%d position %d has chunk size %d, expected %d",
		e.Jumps, e.Position, e.Got, e.Expected)
}
