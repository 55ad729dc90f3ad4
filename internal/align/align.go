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

// Package align refines a pairwise diff by pairing up similar elements inside replaced regions.
//
// A plain diff reports a replaced region as "delete all of these, insert all of those". When the
// elements are, e.g., lines of text, it's often more useful to know which old line turned into
// which new line. Alignment finds an order preserving pairing of the elements in a replaced region
// that maximizes their total similarity.
package align

import (
	"iter"

	"znkr.io/diff3/internal/pairwise"
)

// Op describes how an element is aligned.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Same    Op = iota // Elements are equal
	Added             // Element was added to y
	Deleted           // Element was deleted from x
	Changed           // Element in x was changed into an element in y
)

// Aligned describes the alignment of one element of x, one element of y, or a pair of them.
type Aligned struct {
	Op     Op
	Index1 int // Index into x, -1 for Added
	Index2 int // Index into y, -1 for Deleted
}

// Params configures an alignment.
type Params[T any] struct {
	// Similarity returns how similar two elements are. Only pairs with a similarity > 0 are
	// considered for alignment.
	Similarity func(a, b T) float64

	// Accept decides whether an aligned pair is reported as Changed or as Deleted followed by
	// Added.
	Accept func(a, b T) bool

	// Limit is the maximum number of elements on either side of a replaced region that is
	// aligned. Larger regions are reported as deletions followed by insertions.
	Limit int
}

// Align aligns the elements of x and y based on sections, the pairwise diff between them.
func Align[T any](x, y []T, sections iter.Seq[pairwise.Section], p Params[T]) []Aligned {
	var out []Aligned
	s, t := 0, 0
	for sec := range sections {
		switch {
		case sec.Equal:
			for k := range sec.Len1 {
				out = append(out, Aligned{Same, s + k, t + k})
			}
		case sec.Len1 > 0 && sec.Len2 > 0 && sec.Len1 <= p.Limit && sec.Len2 <= p.Limit:
			out = p.replace(out, x[s:s+sec.Len1], y[t:t+sec.Len2], s, t)
		default:
			out = deleted(out, s, s+sec.Len1)
			out = added(out, t, t+sec.Len2)
		}
		s += sec.Len1
		t += sec.Len2
	}
	return out
}

// replace appends the alignment of the replaced region x, y starting at s, t.
func (p Params[T]) replace(out []Aligned, x, y []T, s, t int) []Aligned {
	a, b := 0, 0
	for _, pr := range pairs(x, y, p.Similarity) {
		out = deleted(out, s+a, s+pr.a)
		out = added(out, t+b, t+pr.b)
		if p.Accept(x[pr.a], y[pr.b]) {
			out = append(out, Aligned{Changed, s + pr.a, t + pr.b})
		} else {
			out = append(out, Aligned{Deleted, s + pr.a, -1}, Aligned{Added, -1, t + pr.b})
		}
		a, b = pr.a+1, pr.b+1
	}
	out = deleted(out, s+a, s+len(x))
	return added(out, t+b, t+len(y))
}

type pair struct{ a, b int }

// pairs finds the order preserving pairing of elements in x and y with the largest total
// similarity.
//
// score[a*w+b] is the best total similarity for x[a:] and y[b:]. On ties, pairing is preferred
// over skipping an element of x, which is preferred over skipping an element of y.
func pairs[T any](x, y []T, similarity func(a, b T) float64) []pair {
	n, m := len(x), len(y)
	w := m + 1
	sims := make([]float64, n*m)
	score := make([]float64, (n+1)*w)
	for a := n - 1; a >= 0; a-- {
		for b := m - 1; b >= 0; b-- {
			best := max(score[(a+1)*w+b], score[a*w+b+1])
			if sim := similarity(x[a], y[b]); sim > 0 {
				sims[a*m+b] = sim
				best = max(best, sim+score[(a+1)*w+b+1])
			}
			score[a*w+b] = best
		}
	}

	var out []pair
	for a, b := 0, 0; a < n && b < m; {
		switch cur := score[a*w+b]; {
		case sims[a*m+b] > 0 && cur == sims[a*m+b]+score[(a+1)*w+b+1]:
			out = append(out, pair{a, b})
			a++
			b++
		case cur == score[(a+1)*w+b]:
			a++
		default:
			b++
		}
	}
	return out
}

func deleted(out []Aligned, from, to int) []Aligned {
	for s := from; s < to; s++ {
		out = append(out, Aligned{Deleted, s, -1})
	}
	return out
}

func added(out []Aligned, from, to int) []Aligned {
	for t := from; t < to; t++ {
		out = append(out, Aligned{Added, -1, t})
	}
	return out
}
