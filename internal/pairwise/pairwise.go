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

// Package pairwise computes the diff between two sequences by recursively splitting them around
// their longest common block.
package pairwise

import (
	"iter"

	"znkr.io/diff3/internal/lcs"
)

// Section is one entry of a pairwise diff.
//
// An equal section describes Len1 == Len2 consecutive elements that are equal in both sequences. A
// change section replaces Len1 elements of the first sequence with Len2 elements of the second one;
// either of them may be zero for a pure deletion or insertion.
type Section struct {
	Equal      bool
	Len1, Len2 int
}

// Diff returns the sections describing the difference between x and y.
//
// The sections cover x and y from start to end without gaps. The returned sequence is lazy, each
// iteration recomputes the diff and stopping early stops the computation.
func Diff[T any](x, y []T, c lcs.Comparer[T]) iter.Seq[Section] {
	f := c.NewFinder(x, y)
	return Sections(f, 0, len(x), 0, len(y))
}

// Sections returns the sections for the sub-rectangle [lo1, hi1) x [lo2, hi2) of the sequences f
// was created for.
func Sections(f lcs.Finder, lo1, hi1, lo2, hi2 int) iter.Seq[Section] {
	return func(yield func(Section) bool) {
		generate(f, lo1, hi1, lo2, hi2, yield)
	}
}

// generate emits the sections for [lo1, hi1) x [lo2, hi2). It returns false if yield asked to
// stop.
func generate(f lcs.Finder, lo1, hi1, lo2, hi2 int, yield func(Section) bool) bool {
	switch {
	case lo1 == hi1 && lo2 == hi2:
		return true
	case lo1 == hi1:
		return yield(Section{Len2: hi2 - lo2})
	case lo2 == hi2:
		return yield(Section{Len1: hi1 - lo1})
	}

	b, ok := f.Find(lo1, hi1, lo2, hi2)
	if !ok {
		return yield(Section{Len1: hi1 - lo1, Len2: hi2 - lo2})
	}

	// Every recursive call works on a strictly smaller rectangle, because the block isn't empty.
	if !generate(f, lo1, b.I, lo2, b.J, yield) {
		return false
	}
	if !yield(Section{Equal: true, Len1: b.Len, Len2: b.Len}) {
		return false
	}
	return generate(f, b.I+b.Len, hi1, b.J+b.Len, hi2, yield)
}
