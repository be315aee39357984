// Corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package move

import "strings"

// Capacity is the fixed size of a List - ample for any pseudo-legal move
// count seen in legal chess positions.
const Capacity = 256

// List is a fixed-capacity sequence of moves with an explicit count. Its
// lifetime spans one search node: it is filled by the generator, sorted by
// the search, and discarded on return from that node.
type List struct {
	moves [Capacity]Move
	// scores parallels moves for ordering; search writes it, generator ignores it.
	scores [Capacity]int32
	n      int
}

// Len returns the number of moves currently stored.
func (l *List) Len() int { return l.n }

// Reset empties the list for reuse without reallocating.
func (l *List) Reset() { l.n = 0 }

// Add appends m to the list. Caller must ensure capacity is not exceeded;
// legal chess positions never come close to Capacity pseudo-legal moves.
func (l *List) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// At returns the move at index i.
func (l *List) At(i int) Move { return l.moves[i] }

// SetScore records the ordering score for move i.
func (l *List) SetScore(i int, score int32) { l.scores[i] = score }

// Score returns the ordering score for move i.
func (l *List) Score(i int) int32 { return l.scores[i] }

// Swap exchanges moves (and their scores) at i and j.
func (l *List) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
	l.scores[i], l.scores[j] = l.scores[j], l.scores[i]
}

// SortByScoreDescending performs an in-place selection sort by descending
// score. Move lists are short (rarely over ~50), so a simple O(n^2)
// selection sort beats the overhead of sort.Interface for this hot path.
func (l *List) SortByScoreDescending() {
	for i := 0; i < l.n-1; i++ {
		best := i
		for j := i + 1; j < l.n; j++ {
			if l.scores[j] > l.scores[best] {
				best = j
			}
		}
		if best != i {
			l.Swap(i, best)
		}
	}
}

// Find returns the index of m in the list, or -1 if absent.
func (l *List) Find(m Move) int {
	for i := 0; i < l.n; i++ {
		if l.moves[i] == m {
			return i
		}
	}
	return -1
}

// String renders the list in UCI long algebraic notation, space separated.
func (l *List) String() string {
	var b strings.Builder
	for i := 0; i < l.n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.moves[i].String())
	}
	return b.String()
}
