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

package lines

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestViewString(t *testing.T) {
	str := "my string"

	got := View(str)
	if unsafe.StringData(got) != unsafe.StringData(str) {
		t.Errorf("View(str) points to different memory")
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = View(str)
		})
		if allocs > 0 {
			t.Errorf("View[string](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestViewBytes(t *testing.T) {
	bytes := []byte("my byte slice")

	got := View(bytes)
	if unsafe.StringData(got) != unsafe.SliceData(bytes) {
		t.Errorf("View(bytes) points to different memory")
	}
	if len(got) != len(bytes) {
		t.Errorf("len(View(bytes)) = %v, want %v", len(got), len(bytes))
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = View(bytes)
		})
		if allocs > 0 {
			t.Errorf("View[[]byte](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "newline-only",
			input: "\n",
			want:  []string{"\n"},
		},
		{
			name:  "missing-newline",
			input: "foo\nbar",
			want:  []string{"foo\n", "bar"},
		},
		{
			name:  "missing-newline-in-first-line",
			input: "foo",
			want:  []string{"foo"},
		},
		{
			name:  "no-missing-newline",
			input: "foo\nbar\nbaz\n",
			want:  []string{"foo\n", "bar\n", "baz\n"},
		},
		{
			name:  "empty-lines",
			input: "\n\nfoo\n\n",
			want:  []string{"\n", "\n", "foo\n", "\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) result difference [-want, +got]:\n%s", tt.input, diff)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	var b Builder[[]byte]
	b.WriteString("a")
	b.TerminateLine()
	b.TerminateLine()
	if n := b.WriteLines([]string{"b\n", "c"}); n != 3 {
		t.Errorf("WriteLines(...) = %v, want 3", n)
	}
	b.TerminateLine()

	got, want := b.Build(), []byte("a\nb\nc\n")
	if !cmp.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	got, want = b.Build(), nil
	if !cmp.Equal(got, want) {
		t.Errorf("second call to Build: got %q, want %q", got, want)
	}
}

func TestBuilderTerminateEmpty(t *testing.T) {
	var b Builder[string]
	b.TerminateLine()
	if got := b.Build(); got != "" {
		t.Errorf("TerminateLine on empty builder: got %q, want empty", got)
	}
}

func TestBuilderBuildStringAlloc(t *testing.T) {
	var b Builder[string]
	allocs := testing.AllocsPerRun(10, func() {
		b.Grow(4)
		b.WriteString("a")
		b.TerminateLine()
		b.WriteLines([]string{"b"})
		_ = b.Build()
	})
	if allocs > 1 {
		t.Errorf("Builder[...].Build() allocated %v times, want <= 1", allocs)
	}
}
