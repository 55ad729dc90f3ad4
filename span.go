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

import "znkr.io/diff3/internal/span"

// Span is an inclusive range [From, To] of indices into a slice. A span with To < From has no
// elements and is invalid, see [EmptySpan].
//
// Two spans are equal if both are invalid or if both are valid and have the same bounds, see
// [Span.Equal].
type Span = span.Span

// InvalidSpan is the canonical invalid span.
var InvalidSpan = span.Invalid

// EmptySpan returns an invalid span of length zero that is anchored at position at. [Merge] uses
// empty spans to mark where in base an insertion happened.
func EmptySpan(at int) Span { return span.Empty(at) }
