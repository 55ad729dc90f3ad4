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

// Package similarity provides similarity measures for [znkr.io/diff3.Align].
package similarity

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Text returns the similarity of two strings in [0, 1]. It's computed as 1 - d/n where d is the
// Levenshtein distance between a and b and n is the number of runes in the longer one. Two empty
// strings have similarity 1.
func Text(a, b string) float64 {
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if n == 0 {
		return 1
	}
	if a == b {
		return 1
	}
	dmp := diffmatchpatch.New()
	d := dmp.DiffLevenshtein(dmp.DiffMain(a, b, false))
	return max(0, 1-float64(d)/float64(n))
}

// AtLeast returns an accept function for [znkr.io/diff3.Align] that accepts a pair of elements if
// their similarity is at least threshold.
func AtLeast[T any](threshold float64, sim func(a, b T) float64) func(a, b T) bool {
	return func(a, b T) bool {
		return sim(a, b) >= threshold
	}
}
