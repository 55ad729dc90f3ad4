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

package diff3

import (
	"znkr.io/diff3/internal/align"
	"znkr.io/diff3/internal/config"
	"znkr.io/diff3/internal/lcs"
	"znkr.io/diff3/internal/pairwise"
)

// AlignOp describes how an element is aligned.
type AlignOp = align.Op

const (
	Same    = align.Same    // Elements are equal
	Added   = align.Added   // Element was added to y
	Deleted = align.Deleted // Element was deleted from x
	Changed = align.Changed // Element of x was changed into an element of y
)

// Aligned describes the alignment of one element or a pair of elements.
//
//   - For Same and Changed, Index1 and Index2 are the positions in x and y.
//   - For Deleted, Index1 is the position in x and Index2 is -1.
//   - For Added, Index1 is -1 and Index2 is the position in y.
type Aligned = align.Aligned

// Align compares the contents of x and y and returns an alignment of their elements.
//
// Where x and y are equal, elements are aligned as [Same]. Inside of regions where elements of x
// were replaced by elements of y, Align pairs up elements so that the total similarity is maximal
// and the order is preserved. Only pairs with similarity > 0 are considered. A pair is reported
// as [Changed] if accept returns true for it and as [Deleted] followed by [Added] otherwise.
// Unpaired elements are reported as [Deleted] or [Added].
//
// Every element of x is part of exactly one [Same], [Deleted], or [Changed] entry and every
// element of y of exactly one [Same], [Added], or [Changed] entry, both in increasing order.
//
// The following option is supported: [diff3.AlignLimit]
func Align[T comparable](x, y []T, similarity func(a, b T) float64, accept func(a, b T) bool, opts ...Option) []Aligned {
	checkFunc(similarity == nil, "similarity")
	checkFunc(accept == nil, "accept")
	cfg := config.FromOptions(opts, config.AlignLimit)
	sections := pairwise.Diff(x, y, lcs.Comparable[T]())
	return align.Align(x, y, sections, align.Params[T]{
		Similarity: similarity,
		Accept:     accept,
		Limit:      cfg.AlignLimit,
	})
}

// AlignFunc aligns the elements of x and y using the provided equality comparison, see [Align].
//
// The following option is supported: [diff3.AlignLimit]
//
// Note that this function has generally worse performance than [Align].
func AlignFunc[T any](x, y []T, eq func(a, b T) bool, similarity func(a, b T) float64, accept func(a, b T) bool, opts ...Option) []Aligned {
	checkFunc(eq == nil, "eq")
	checkFunc(similarity == nil, "similarity")
	checkFunc(accept == nil, "accept")
	cfg := config.FromOptions(opts, config.AlignLimit)
	sections := pairwise.Diff(x, y, lcs.Func(eq))
	return align.Align(x, y, sections, align.Params[T]{
		Similarity: similarity,
		Accept:     accept,
		Limit:      cfg.AlignLimit,
	})
}
