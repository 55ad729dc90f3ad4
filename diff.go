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
	"slices"

	"znkr.io/diff3/internal/lcs"
	"znkr.io/diff3/internal/pairwise"
)

// Section describes one region of a diff.
//
//   - For an equal section, Len1 == Len2 consecutive elements are the same in x and y.
//   - For a change section, Len1 elements of x are replaced by Len2 elements of y. One of them is
//     zero for a pure deletion or insertion.
//
// Sections never have Len1 == Len2 == 0.
type Section = pairwise.Section

// Diff compares the contents of x and y and returns the sections describing the changes necessary
// to convert from one to the other.
//
// The sections cover x and y from start to end without gaps, no two adjacent sections are both
// equal or both changes. If x and y are both empty, the output has length zero.
func Diff[T comparable](x, y []T) []Section {
	return slices.Collect(pairwise.Diff(x, y, lcs.Comparable[T]()))
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns the
// sections describing the changes necessary to convert from one to the other.
//
// Note that this function has generally worse performance than [Diff].
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) []Section {
	checkFunc(eq == nil, "eq")
	return slices.Collect(pairwise.Diff(x, y, lcs.Func(eq)))
}

// checkFunc panics if a required function argument is nil.
func checkFunc(isNil bool, name string) {
	if isNil {
		panic("diff3: nil " + name + " function")
	}
}
