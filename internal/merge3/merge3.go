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

// Package merge3 implements the three-way merge on top of two pairwise diffs.
//
// The merge runs in two passes. The first pass walks the diffs base->x and base->y in lock-step
// and produces provisional chunks: regions where both sides agree with base become Equal chunks,
// everything else becomes a Conflict. The second pass revisits every provisional conflict once its
// full extent is known and downgrades it to a one-sided or two-sided merge when the content allows
// it.
package merge3

import (
	"fmt"

	"znkr.io/diff3/internal/lcs"
	"znkr.io/diff3/internal/pairwise"
	"znkr.io/diff3/internal/span"
)

// ChangeType classifies a chunk of a three-way merge.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=ChangeType
type ChangeType int

const (
	Equal          ChangeType = iota // base, x, and y are equal
	MergeFrom1                       // only x changed, take x
	MergeFrom2                       // only y changed, take y
	MergeFrom1And2                   // x and y made the same change
	MergeFromBase                    // keep base; never produced by Merge
	Conflict                         // x and y made different changes
)

// BaseEquality records whether the material one side contributed to a chunk is known to be
// unchanged from base.
type BaseEquality int

const (
	Unknown        BaseEquality = iota // the side didn't contribute to the chunk
	EqualToBase                        // every contributed section was an equal section
	NotEqualToBase                     // at least one contributed section was a change
)

// and folds the equality of one more section into e.
func (e BaseEquality) and(equal bool) BaseEquality {
	switch {
	case e == NotEqualToBase || !equal:
		return NotEqualToBase
	default:
		return EqualToBase
	}
}

// combine combines the equality of two fused chunks. The second return value is false if they
// contradict each other.
func (e BaseEquality) combine(o BaseEquality) (BaseEquality, bool) {
	switch {
	case e == Unknown:
		return o, true
	case o == Unknown || o == e:
		return e, true
	default:
		return e, false
	}
}

// Chunk is one region of the merge result.
type Chunk struct {
	Type  ChangeType
	Base  span.Span // region in base
	From1 span.Span // region in x
	From2 span.Span // region in y

	// Bookkeeping for the reclassification, not part of the result.
	Eq1, Eq2 BaseEquality
}

func (c Chunk) String() string {
	return fmt.Sprintf("%v, base = %v, [1] = %v, [2] = %v", c.Type, c.Base, c.From1, c.From2)
}

// Merge computes the three-way merge of x and y, both derived from base.
func Merge[T any](base, x, y []T, c lcs.Comparer[T]) []Chunk {
	m := merger[T]{base: base, x: x, y: y, c: c}
	e1 := normalize(pairwise.Diff(base, x, c))
	e2 := normalize(pairwise.Diff(base, y, c))
	return m.reclassify(walk(e1, e2))
}
