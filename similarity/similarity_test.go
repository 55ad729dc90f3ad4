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

package similarity

import (
	"math"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"empty", "", "", 1},
		{"identical", "hello", "hello", 1},
		{"one-empty", "", "hello", 0},
		{"disjoint", "abc", "xyz", 0},
		{"insertion", "hello", "hello, world", 1 - 7.0/12},
		{"substitution", "kitten", "sitten", 1 - 1.0/6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Text(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Text(tt.b, tt.a); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Text(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	accept := AtLeast(0.5, Text)
	tests := []struct {
		a, b string
		want bool
	}{
		{"hello", "hello", true},
		{"hello", "hallo", true},
		{"hello", "world", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := accept(tt.a, tt.b); got != tt.want {
			t.Errorf("AtLeast(0.5, Text)(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func BenchmarkText(b *testing.B) {
	x := "	fmt.Fprintf(os.Stderr, \"error: %v\\n\", err)"
	y := "	fmt.Fprintf(os.Stdout, \"warning: %v\\n\", err)"
	for b.Loop() {
		Text(x, y)
	}
}
