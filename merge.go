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
	"znkr.io/diff3/internal/lcs"
	"znkr.io/diff3/internal/merge3"
)

// ChangeType describes how a chunk of a three-way merge is resolved.
type ChangeType = merge3.ChangeType

const (
	Equal          = merge3.Equal          // base, x, and y are the same
	MergeFrom1     = merge3.MergeFrom1     // only x changed base, take x
	MergeFrom2     = merge3.MergeFrom2     // only y changed base, take y
	MergeFrom1And2 = merge3.MergeFrom1And2 // x and y made the same change, take either
	MergeFromBase  = merge3.MergeFromBase  // keep base; reserved, never produced by Merge
	Conflict       = merge3.Conflict       // x and y made different changes
)

// Chunk describes one region of a three-way merge.
//
// Base, From1, and From2 are the regions in base, x, and y that the chunk covers. A side that
// doesn't contribute any elements has an invalid span. For chunks without elements in base, Base is
// an [EmptySpan] anchored at the position in base where the other sides' elements belong.
type Chunk struct {
	Type  ChangeType
	Base  Span
	From1 Span
	From2 Span
}

// CanMerge reports whether the chunk can be merged without manual intervention.
func (c Chunk) CanMerge() bool { return c.Type != Conflict }

func (c Chunk) String() string {
	return merge3.Chunk{Type: c.Type, Base: c.Base, From1: c.From1, From2: c.From2}.String()
}

// Merge computes the three-way merge of x and y, two slices derived from base.
//
// The output is a sequence of chunks that covers base, x, and y from start to end. Adjacent chunks
// never have the same [ChangeType] if their spans could be joined. If all inputs are empty, the
// output has length zero.
//
// To construct the merged slice, take From1 for Equal, MergeFrom1, and MergeFrom1And2 chunks and
// From2 for MergeFrom2 chunks. Conflict chunks need to be resolved by the caller.
func Merge[T comparable](base, x, y []T) []Chunk {
	return chunks(merge3.Merge(base, x, y, lcs.Comparable[T]()))
}

// MergeFunc computes the three-way merge of x and y using the provided equality comparison.
//
// Note that this function has generally worse performance than [Merge].
func MergeFunc[T any](base, x, y []T, eq func(a, b T) bool) []Chunk {
	checkFunc(eq == nil, "eq")
	return chunks(merge3.Merge(base, x, y, lcs.Func(eq)))
}

func chunks(in []merge3.Chunk) []Chunk {
	if len(in) == 0 {
		return nil
	}
	out := make([]Chunk, len(in))
	for i, c := range in {
		out[i] = Chunk{
			Type:  c.Type,
			Base:  c.Base,
			From1: c.From1,
			From2: c.From2,
		}
	}
	return out
}
