// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lcs finds the longest common block of two sequences, the building block of the
// recursive diff algorithm.
//
// A block is a contiguous run of elements that appears in both sequences. Finders always look at a
// sub-rectangle [lo1, hi1) x [lo2, hi2) of the two sequences and report the longest block inside
// of it. If there are multiple longest blocks, the one that starts first in x wins and of those,
// the one that starts first in y. This tie-break is what makes the diff deterministic.
package lcs

import "slices"

// Block describes a common block: x[I:I+Len] equals y[J:J+Len].
type Block struct {
	I, J, Len int
}

// Finder finds the longest common block in a sub-rectangle of two sequences.
type Finder interface {
	// Find returns the longest common block with lo1 <= I, I+Len <= hi1, lo2 <= J and
	// J+Len <= hi2. The second return value is false if no element in x[lo1:hi1] is equal to an
	// element in y[lo2:hi2].
	Find(lo1, hi1, lo2, hi2 int) (Block, bool)
}

// Comparer bundles an element equality with a way to create Finders that agree with it.
type Comparer[T any] struct {
	Equal     func(a, b T) bool
	NewFinder func(x, y []T) Finder
}

// Comparable returns a Comparer using == for comparable types. Its Finders use an index of y to
// avoid comparing every pair of elements.
func Comparable[T comparable]() Comparer[T] {
	return Comparer[T]{
		Equal:     func(a, b T) bool { return a == b },
		NewFinder: func(x, y []T) Finder { return NewIndexed(x, y) },
	}
}

// Func returns a Comparer using eq.
func Func[T any](eq func(a, b T) bool) Comparer[T] {
	return Comparer[T]{
		Equal:     eq,
		NewFinder: func(x, y []T) Finder { return NewFunc(x, y, eq) },
	}
}

// Indexed is a Finder for comparable types.
type Indexed[T comparable] struct {
	x     []T
	index map[T][]int // positions of every element in y in increasing order
}

// NewIndexed creates a Finder for x and y. The index over y is built once and shared by all calls
// to Find.
func NewIndexed[T comparable](x, y []T) *Indexed[T] {
	index := make(map[T][]int)
	for j, e := range y {
		index[e] = append(index[e], j)
	}
	return &Indexed[T]{x: x, index: index}
}

// Find implements [Finder].
//
// For every position i in x, run[j] is the length of the common block ending at x[i-1], y[j]. This
// is the classic longest matching block algorithm, it only touches pairs of positions that
// actually match.
func (f *Indexed[T]) Find(lo1, hi1, lo2, hi2 int) (Block, bool) {
	var best Block
	run := make(map[int]int)
	next := make(map[int]int)
	for i := lo1; i < hi1; i++ {
		clear(next)
		positions := f.index[f.x[i]]
		k, _ := slices.BinarySearch(positions, lo2)
		for _, j := range positions[k:] {
			if j >= hi2 {
				break
			}
			n := run[j-1] + 1
			next[j] = n
			// Strictly greater: the first longest block found starts earliest.
			if n > best.Len {
				best = Block{I: i - n + 1, J: j - n + 1, Len: n}
			}
		}
		run, next = next, run
	}
	return best, best.Len > 0
}

// FuncFinder is a Finder for arbitrary types using an equality function.
type FuncFinder[T any] struct {
	x, y []T
	eq   func(a, b T) bool
}

// NewFunc creates a Finder for x and y using eq to compare elements.
//
// Without a way to hash elements, Find needs to compare every pair of elements in the
// sub-rectangle.
func NewFunc[T any](x, y []T, eq func(a, b T) bool) *FuncFinder[T] {
	return &FuncFinder[T]{x: x, y: y, eq: eq}
}

// Find implements [Finder].
func (f *FuncFinder[T]) Find(lo1, hi1, lo2, hi2 int) (Block, bool) {
	var best Block
	if lo2 >= hi2 {
		return best, false
	}
	// Two rolling rows: prev[k] is the length of the common block ending at x[i-1], y[lo2+k-1].
	prev := make([]int, hi2-lo2+1)
	cur := make([]int, hi2-lo2+1)
	for i := lo1; i < hi1; i++ {
		for j := lo2; j < hi2; j++ {
			k := j - lo2 + 1
			if !f.eq(f.x[i], f.y[j]) {
				cur[k] = 0
				continue
			}
			n := prev[k-1] + 1
			cur[k] = n
			if n > best.Len {
				best = Block{I: i - n + 1, J: j - n + 1, Len: n}
			}
		}
		prev, cur = cur, prev
	}
	return best, best.Len > 0
}
