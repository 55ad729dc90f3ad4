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

// Package lines splits text into lines and builds merged text, for both string and []byte inputs.
package lines

import (
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// View returns a string that shares memory with in. The caller must not modify a []byte input
// while the view is in use.
func View[T string | []byte](in T) string {
	switch in := any(in).(type) {
	case string:
		return in
	case []byte:
		return unsafe.String(unsafe.SliceData(in), len(in))
	}
	panic("never reached")
}

// Split splits s after every '\n'. All lines include their newline character except for the last
// line if s doesn't end in a newline. An empty s has no lines.
func Split(s string) []string {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	out := make([]string, 0, n)
	for len(s) > 0 {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			out = append(out, s)
			break
		}
		out = append(out, s[:m+1])
		s = s[m+1:]
	}
	return out
}

// Builder builds a string or []byte.
type Builder[T string | []byte] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) WriteString(v string) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

// WriteLines writes all lines and returns the number of bytes written.
func (b *Builder[T]) WriteLines(lines []string) int {
	n := 0
	for _, l := range lines {
		b.buf = append(b.buf, l...)
		n += len(l)
	}
	return n
}

// TerminateLine appends a newline unless the output is empty or already ends in a newline.
func (b *Builder[T]) TerminateLine() {
	if len(b.buf) > 0 && b.buf[len(b.buf)-1] != '\n' {
		b.buf = append(b.buf, '\n')
	}
}

// Build returns the result and resets the builder.
func (b *Builder[T]) Build() T {
	defer func() {
		b.buf = nil
	}()
	switch any((*T)(nil)).(type) {
	case *string:
		return T(unsafe.String(unsafe.SliceData(b.buf), len(b.buf)))
	case *[]byte:
		return T(b.buf)
	}
	panic("never reached")
}
