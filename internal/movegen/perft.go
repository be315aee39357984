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

package movegen

import (
	"fmt"
	"io"

	"github.com/kiranbaskarv/corvid/internal/move"
	"github.com/kiranbaskarv/corvid/internal/position"
)

// Perft recursively counts leaf nodes reachable in depth plies, descending
// through every legal move. It exists solely to validate move generation
// and make/unmake against known node counts.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list move.List
	Generate(p, &list)

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		snap, legal := p.MakeMove(list.At(i), position.All)
		if !legal {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += Perft(p, depth-1)
		}
		p.UnmakeMove(snap)
	}
	return nodes
}

// PerftDivide runs Perft for each legal root move and writes a per-move
// subtree count to w, in the style of the classic "perft divide" debug
// report. It returns the total leaf count across all root moves.
func PerftDivide(p *position.Position, depth int, w io.Writer) uint64 {
	var list move.List
	Generate(p, &list)

	var total uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		snap, legal := p.MakeMove(m, position.All)
		if !legal {
			continue
		}
		var n uint64
		if depth <= 1 {
			n = 1
		} else {
			n = Perft(p, depth-1)
		}
		p.UnmakeMove(snap)
		total += n
		fmt.Fprintf(w, "%s: %d\n", m.String(), n)
	}
	fmt.Fprintf(w, "\nnodes: %d\n", total)
	return total
}
