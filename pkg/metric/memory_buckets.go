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

package metric

import (
	"github.com/hashicorp/go-multierror"

	"github.com/eth-easl/indexplot/pkg/common"
)

type bucket struct {
	chunkSizes []int
	memory     []int64
}

// MemoryBuckets groups memory measurements by jumps value. Each bucket is
// append-only and keeps file order; nothing is re-sorted.
type MemoryBuckets struct {
	buckets [common.MaxJumps - common.MinJumps + 1]bucket
}

func NewMemoryBuckets() *MemoryBuckets {
	return &MemoryBuckets{}
}

// Append adds one memory row to the bucket for jumps.
func (mb *MemoryBuckets) Append(record common.MemoryRecord) error {
	if !common.IsKnownJumps(record.Jumps) {
		return &common.UnknownBucketError{Jumps: record.Jumps}
	}

	b := &mb.buckets[record.Jumps-common.MinJumps]
	b.chunkSizes = append(b.chunkSizes, record.ChunkSize)
	b.memory = append(b.memory, record.Memory)

	return nil
}

func (mb *MemoryBuckets) Keys() []int {
	keys := make([]int, len(common.JumpsBuckets))
	copy(keys, common.JumpsBuckets)
	return keys
}

// Series returns a copy of the memory values appended for jumps.
func (mb *MemoryBuckets) Series(jumps int) []int64 {
	if !common.IsKnownJumps(jumps) {
		return nil
	}

	src := mb.buckets[jumps-common.MinJumps].memory
	result := make([]int64, len(src))
	copy(result, src)
	return result
}

func (mb *MemoryBuckets) ChunkSizes(jumps int) []int {
	if !common.IsKnownJumps(jumps) {
		return nil
	}

	src := mb.buckets[jumps-common.MinJumps].chunkSizes
	result := make([]int, len(src))
	copy(result, src)
	return result
}

func (mb *MemoryBuckets) Len(jumps int) int {
	if !common.IsKnownJumps(jumps) {
		return 0
	}
	return len(mb.buckets[jumps-common.MinJumps].memory)
}

// StackedTotals returns the value of every bucket at position i, in ascending
// jumps order. Buckets shorter than i+1 contribute 0; call Validate first to
// rule that out.
func (mb *MemoryBuckets) StackedTotals(i int) []int64 {
	result := make([]int64, len(mb.buckets))
	for k := range mb.buckets {
		if i >= 0 && i < len(mb.buckets[k].memory) {
			result[k] = mb.buckets[k].memory[i]
		}
	}
	return result
}

// Total is the height of the full stack at position i.
func (mb *MemoryBuckets) Total(i int) int64 {
	var sum int64
	for _, v := range mb.StackedTotals(i) {
		sum += v
	}
	return sum
}

// Validate checks that every bucket has one value per axis entry and that
// the rows were appended in axis order. All violations are reported.
func (mb *MemoryBuckets) Validate(axis []int) error {
	var result *multierror.Error

	for k := range mb.buckets {
		jumps := k + common.MinJumps
		b := &mb.buckets[k]

		if len(b.memory) != len(axis) {
			result = multierror.Append(result, &common.AlignmentError{
				Jumps:    jumps,
				Position: -1,
				Expected: len(axis),
				Got:      len(b.memory),
			})
			continue
		}

		for i, chunkSize := range b.chunkSizes {
			if chunkSize != axis[i] {
				result = multierror.Append(result, &common.AlignmentError{
					Jumps:    jumps,
					Position: i,
					Expected: axis[i],
					Got:      chunkSize,
				})
			}
		}
	}

	return result.ErrorOrNil()
}
