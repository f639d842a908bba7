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

const (
	DefaultRuntimeFile = "benchmark-index-data-runtime.tsv"
	DefaultMemoryFile  = "benchmark-index-data-memory.tsv"

	CommentMarker = "#"
)

// ChunkSizeAxis is the shared x domain of the memory bars and the runtime
// lines. Memory buckets must hold exactly one value per entry, in this order.
var ChunkSizeAxis = []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512}

// JumpsBuckets are the recognized jumps values, in stacking order.
var JumpsBuckets = []int{0, 1, 2, 3, 4, 5}

const (
	MinJumps = 0
	MaxJumps = 5

	ChunkSizeLogBase = 2

	MemoryAxisMin = 0.0
	MemoryAxisMax = 7e9

	RuntimeAxisMin = 0.01
	RuntimeAxisMax = 100.0
)

func IsKnownJumps(jumps int) bool {
	return jumps >= MinJumps && jumps <= MaxJumps
}
