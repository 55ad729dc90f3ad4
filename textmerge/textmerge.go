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

// Package textmerge provides a line by line three-way merge of text.
package textmerge

import (
	"znkr.io/diff3"
	"znkr.io/diff3/internal/config"
	"znkr.io/diff3/internal/lines"
)

const (
	markerLeft  = "<<<<<<<"
	markerBase  = "|||||||"
	markerSep   = "======="
	markerRight = ">>>>>>>"
)

// Merge merges the lines of left and right, two versions of the text base, and returns the merged
// text along with the number of conflicts.
//
// Changes made by only one side are applied and changes made identically by both sides are applied
// once. Where both sides made different changes, the merged text contains a conflict block:
//
//	<<<<<<< left label
//	lines from left
//	||||||| base label
//	lines from base
//	=======
//	lines from right
//	>>>>>>> right label
//
// The base block is only included with [ShowBase], labels are set using [Labels]. A line without a
// trailing newline is terminated if more output follows it, e.g. a marker.
//
// The following options are supported: [textmerge.Labels], [textmerge.ShowBase]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Merge[T string | []byte](base, left, right T, opts ...diff3.Option) (merged T, conflicts int) {
	cfg := config.FromOptions(opts, config.Labels|config.ShowBase)

	o, x, y := lines.Split(lines.View(base)), lines.Split(lines.View(left)), lines.Split(lines.View(right))

	var b lines.Builder[T]
	b.Grow(max(len(left), len(right)))
	for _, c := range diff3.Merge(o, x, y) {
		switch c.Type {
		case diff3.Equal, diff3.MergeFrom1, diff3.MergeFrom1And2:
			write(&b, x, c.From1)
		case diff3.MergeFrom2:
			write(&b, y, c.From2)
		case diff3.MergeFromBase:
			write(&b, o, c.Base)
		case diff3.Conflict:
			conflicts++
			marker(&b, markerLeft, cfg.LeftLabel)
			write(&b, x, c.From1)
			if cfg.ShowBase {
				marker(&b, markerBase, cfg.BaseLabel)
				write(&b, o, c.Base)
			}
			marker(&b, markerSep, "")
			write(&b, y, c.From2)
			marker(&b, markerRight, cfg.RightLabel)
		default:
			panic("never reached")
		}
	}
	return b.Build(), conflicts
}

func write[T string | []byte](b *lines.Builder[T], text []string, s diff3.Span) {
	if !s.IsValid() {
		return
	}
	b.TerminateLine()
	b.WriteLines(text[s.From:s.End()])
}

func marker[T string | []byte](b *lines.Builder[T], m, label string) {
	b.TerminateLine()
	b.WriteString(m)
	if label != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
	b.WriteString("\n")
}
