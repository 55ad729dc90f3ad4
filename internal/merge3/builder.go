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

import "znkr.io/diff3/internal/span"

// builder collects chunks. Every chunk pushed is fused into the previous one if possible, this
// keeps the number of chunks minimal independent of how finely they were produced.
type builder struct {
	chunks []Chunk
}

func (b *builder) push(c Chunk) {
	if n := len(b.chunks); n > 0 {
		if fused, ok := fuse(b.chunks[n-1], c); ok {
			b.chunks[n-1] = fused
			return
		}
	}
	b.chunks = append(b.chunks, c)
}

// fuse merges c into prev. The second return value is false if the chunks can't be merged, either
// because they are of different types, aren't adjacent, or disagree on their base equality.
func fuse(prev, c Chunk) (Chunk, bool) {
	if prev.Type != c.Type {
		return prev, false
	}
	if !prev.Base.CanMergeWith(c.Base) || !prev.From1.CanMergeWith(c.From1) || !prev.From2.CanMergeWith(c.From2) {
		return prev, false
	}
	eq1, ok1 := prev.Eq1.combine(c.Eq1)
	eq2, ok2 := prev.Eq2.combine(c.Eq2)
	if !ok1 || !ok2 {
		return prev, false
	}
	return Chunk{
		Type:  prev.Type,
		Base:  span.Merge(prev.Base, c.Base),
		From1: span.Merge(prev.From1, c.From1),
		From2: span.Merge(prev.From2, c.From2),
		Eq1:   eq1,
		Eq2:   eq2,
	}, true
}
