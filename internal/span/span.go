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

// Package span provides the inclusive index ranges used to describe regions of merged sequences.
package span

import "fmt"

// Span is an inclusive range [From, To] of indices into a sequence.
//
// A span with To < From is invalid. Invalid spans are still useful: a span created with [Empty]
// has length zero but remembers the position it's anchored at, e.g. the position in the base
// sequence where an insertion happened.
type Span struct {
	From, To int
}

// Invalid is the canonical invalid span.
var Invalid = Span{From: 0, To: -1}

// Empty returns a zero length span anchored at position at.
func Empty(at int) Span { return Span{From: at, To: at - 1} }

// Of returns the span of n elements starting at position at. For n == 0 the span is empty and
// anchored at at.
func Of(at, n int) Span { return Span{From: at, To: at + n - 1} }

// Len returns the number of elements in the span. It's <= 0 for invalid spans.
func (s Span) Len() int { return s.To - s.From + 1 }

// IsValid reports whether the span contains at least one element.
func (s Span) IsValid() bool { return s.Len() > 0 }

// End returns the exclusive end of the span, i.e. s.To+1.
func (s Span) End() int { return s.To + 1 }

// CanMergeWith reports whether o can be merged into s.
//
// Invalid spans can be merged with anything. Otherwise, the test only looks forward: o must start
// at or after s, at most one position after the end of s, and must not end before s starts.
func (s Span) CanMergeWith(o Span) bool {
	if !s.IsValid() || !o.IsValid() {
		return true
	}
	return o.From >= s.From && o.From-1 <= s.To && o.To >= s.From
}

// Merge merges b into a.
//
// If the spans can't be merged, the result is [Invalid]. If both are valid, the result is the
// smallest span covering both. If only one of them is valid, that span is returned. If neither is
// valid, a is returned unchanged so that its anchor position survives.
func Merge(a, b Span) Span {
	if !a.CanMergeWith(b) {
		return Invalid
	}
	switch av, bv := a.IsValid(), b.IsValid(); {
	case av && bv:
		return Span{From: min(a.From, b.From), To: max(a.To, b.To)}
	case bv:
		return b
	default:
		return a
	}
}

// Equal reports whether s and o describe the same range. All invalid spans are equal to each
// other, regardless of their anchor position.
func (s Span) Equal(o Span) bool {
	if !s.IsValid() || !o.IsValid() {
		return !s.IsValid() && !o.IsValid()
	}
	return s.From == o.From && s.To == o.To
}

func (s Span) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("(%d)", s.From)
	}
	return fmt.Sprintf("[%d,%d]", s.From, s.To)
}
