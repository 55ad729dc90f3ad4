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

package merge3

import (
	"iter"

	"znkr.io/diff3/internal/pairwise"
	"znkr.io/diff3/internal/span"
)

// normalize splits every equal section into sections of length one. The two pairwise diffs are
// free to segment equal runs differently, unit sections let the walk align them on every base
// element.
func normalize(sections iter.Seq[pairwise.Section]) []pairwise.Section {
	var out []pairwise.Section
	for s := range sections {
		if !s.Equal {
			out = append(out, s)
			continue
		}
		for range s.Len1 {
			out = append(out, pairwise.Section{Equal: true, Len1: 1, Len2: 1})
		}
	}
	return out
}

// cursor tracks the progress through the diff between base and one of the modified sequences.
type cursor struct {
	sections []pairwise.Section
	next     int // next section
	base     int // position in base
	pos      int // position in the modified sequence
}

func (c *cursor) done() bool { return c.next >= len(c.sections) }

func (c *cursor) peek() pairwise.Section { return c.sections[c.next] }

// advance consumes the next section and returns the regions it covers in base and in the modified
// sequence.
func (c *cursor) advance() (base, mod span.Span, equal bool) {
	s := c.sections[c.next]
	base, mod = span.Of(c.base, s.Len1), span.Of(c.pos, s.Len2)
	c.base += s.Len1
	c.pos += s.Len2
	c.next++
	return base, mod, s.Equal
}

// walk runs the first pass: it consumes both diffs in lock-step and produces Equal chunks and
// provisional conflicts.
//
// The two cursors track their base positions independently. Whenever one side is in the middle of
// a change, the other side has to catch up until both agree on the base position again.
func walk(e1, e2 []pairwise.Section) []Chunk {
	var b builder
	c1, c2 := &cursor{sections: e1}, &cursor{sections: e2}
	for !c1.done() && !c2.done() {
		if c1.peek().Equal && c2.peek().Equal && c1.base == c2.base {
			base, from1, _ := c1.advance()
			_, from2, _ := c2.advance()
			b.push(Chunk{Type: Equal, Base: base, From1: from1, From2: from2})
			continue
		}

		ch := Chunk{Type: Conflict, Base: span.Empty(c1.base), From1: span.Invalid, From2: span.Invalid}
		for {
			advanced := false
			if !c1.done() && (!c1.peek().Equal || c1.base < c2.base) {
				base, from, equal := c1.advance()
				ch.Base = span.Merge(ch.Base, base)
				ch.From1 = span.Merge(ch.From1, from)
				ch.Eq1 = ch.Eq1.and(equal)
				advanced = true
			}
			if !c2.done() && (!c2.peek().Equal || c2.base < c1.base) {
				base, from, equal := c2.advance()
				ch.Base = span.Merge(ch.Base, base)
				ch.From2 = span.Merge(ch.From2, from)
				ch.Eq2 = ch.Eq2.and(equal)
				advanced = true
			}
			if !advanced {
				break
			}
		}
		b.push(ch)
	}

	// At most one side has sections left. They can only be insertions at the end of base.
	type1, type2 := MergeFrom1, MergeFrom2
	if !c1.done() && !c2.done() {
		type1, type2 = Conflict, Conflict
	}
	for !c1.done() {
		base, from, equal := c1.advance()
		b.push(Chunk{Type: type1, Base: base, From1: from, From2: span.Invalid, Eq1: Unknown.and(equal)})
	}
	for !c2.done() {
		base, from, equal := c2.advance()
		b.push(Chunk{Type: type2, Base: base, From1: span.Invalid, From2: from, Eq2: Unknown.and(equal)})
	}
	return b.chunks
}
