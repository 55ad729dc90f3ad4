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

// Package diff3 provides a generic diff and three-way merge for slices.
//
// [Diff] compares two slices by recursively splitting them around their longest common block, the
// same idea that underlies Python's difflib. [Merge] combines two slices that were both derived
// from a common base into a sequence of chunks that say, for every region, which side to take or
// whether the sides conflict. [Align] refines a diff by pairing up similar elements in replaced
// regions, which is useful to render changed lines next to each other.
//
// All functions come in two variants, one for comparable types using == and one taking an
// explicit equality function (e.g. [DiffFunc]).
//
// Performance: For comparable types, finding the longest common block is O(N·M/K) on average where
// K is the number of distinct elements. With an explicit equality function it's O(N·M). The
// recursion adds a factor that depends on the number of differences.
//
// Note: For a line-by-line merge of text, please see [znkr.io/diff3/textmerge].
//
// [znkr.io/diff3/textmerge]: https://pkg.go.dev/znkr.io/diff3/textmerge
package diff3
