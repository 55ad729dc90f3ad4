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

package benchmarks

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
	"znkr.io/diff3/textmerge"
)

type testdata struct {
	name              string
	x, y              []byte
	base, left, right []byte
}

func loadTestdata(t testing.TB) []testdata {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []testdata
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		name := strings.TrimPrefix(filename, "testdata/")
		test := testdata{
			name: name,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "base":
				test.base = f.Data
			case "left":
				test.left = f.Data
			case "right":
				test.right = f.Data
			default:
				t.Fatalf("unknown file in archive: %v", f.Name)
			}
		}
		test.x, test.y = test.base, test.left
		tests = append(tests, test)
	}
	return tests
}

func BenchmarkDiffs(b *testing.B) {
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range loadTestdata(b) {
				b.Run("name="+td.name, func(b *testing.B) {
					for b.Loop() {
						_ = impl.Diff(td.x, td.y)
					}
					b.StopTimer()

					out := impl.Diff(td.x, td.y)
					edits := 0
					for _, line := range bytes.Split(out, []byte("\n")) {
						if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
							edits++
						}
					}
					b.ReportMetric(float64(edits), "edits")
				})
			}
		})
	}
}

func BenchmarkMerges(b *testing.B) {
	for _, td := range loadTestdata(b) {
		b.Run("name="+td.name, func(b *testing.B) {
			var conflicts int
			for b.Loop() {
				_, conflicts = textmerge.Merge(td.base, td.left, td.right)
			}
			b.ReportMetric(float64(conflicts), "conflicts")
		})
	}
}
