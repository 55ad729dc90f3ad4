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
	"znkr.io/diff3/internal/lcs"
	"znkr.io/diff3/internal/pairwise"
	"znkr.io/diff3/internal/span"
)

type merger[T any] struct {
	base, x, y []T
	c          lcs.Comparer[T]
	finder     lcs.Finder // finder for x and y, created on first use
}

// reclassify runs the second pass: it revisits every provisional conflict and turns it into a
// merge if the content allows it.
func (m *merger[T]) reclassify(chunks []Chunk) []Chunk {
	var b builder
	for _, c := range chunks {
		if c.Type != Conflict {
			b.push(c)
			continue
		}

		base, from1, from2 := c.Base.IsValid(), c.From1.IsValid(), c.From2.IsValid()
		switch {
		case !base && from1 && !from2:
			c.Type = MergeFrom1
		case !base && !from1 && from2:
			c.Type = MergeFrom2
		case base && !from1 && !from2:
			// Both sides deleted the same region.
			c.Type = MergeFrom1And2
		case base && from1 && !from2:
			// y deleted the region, if x didn't touch it take the deletion.
			if m.equal(m.base, c.Base, m.x, c.From1) {
				c.Type = MergeFrom2
			}
		case base && !from1 && from2:
			if m.equal(m.base, c.Base, m.y, c.From2) {
				c.Type = MergeFrom1
			}
		case !base && from1 && from2:
			// Both sides inserted at the same position. There's no base to decide which side
			// changed, diff the two insertions instead.
			m.split(&b, c)
			continue
		case base && from1 && from2:
			c.Type = m.resolve(c)
		}
		b.push(c)
	}
	return b.chunks
}

// resolve classifies a conflict where base, x, and y all contributed to the chunk.
func (m *merger[T]) resolve(c Chunk) ChangeType {
	switch {
	case c.Eq1 == EqualToBase && c.Eq2 == EqualToBase:
		// The walk only starts a conflict if at least one side has a change.
		panic("merge3: both sides of a conflict are equal to base")
	case c.Eq1 == EqualToBase:
		return MergeFrom2
	case c.Eq2 == EqualToBase:
		return MergeFrom1
	case m.equal(m.x, c.From1, m.y, c.From2):
		return MergeFrom1And2
	default:
		return Conflict
	}
}

// split replaces a conflict between two insertions at the same base position by the chunks of the
// diff between both insertions. All chunks are anchored at the base position of c.
func (m *merger[T]) split(b *builder, c Chunk) {
	if m.finder == nil {
		m.finder = m.c.NewFinder(m.x, m.y)
	}
	i, j := c.From1.From, c.From2.From
	for s := range pairwise.Sections(m.finder, c.From1.From, c.From1.End(), c.From2.From, c.From2.End()) {
		n := Chunk{Base: c.Base, From1: span.Of(i, s.Len1), From2: span.Of(j, s.Len2)}
		switch {
		case s.Equal:
			n.Type = MergeFrom1And2
		case s.Len1 == 0:
			n.Type = MergeFrom2
		default:
			// Material only x inserted, or both inserted different material.
			n.Type = Conflict
		}
		b.push(n)
		i += s.Len1
		j += s.Len2
	}
}

// equal reports whether a[sa] and b[sb] have the same content.
func (m *merger[T]) equal(a []T, sa span.Span, b []T, sb span.Span) bool {
	if sa.Len() != sb.Len() {
		return false
	}
	for k := range sa.Len() {
		if !m.c.Equal(a[sa.From+k], b[sb.From+k]) {
			return false
		}
	}
	return true
}
