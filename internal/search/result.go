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

package search

import (
	"time"

	"github.com/kiranbaskarv/corvid/internal/move"
)

// Result is what a completed (or aborted) search hands back to its caller:
// enough to emit a UCI "bestmove" line and to log a summary.
type Result struct {
	BestMove   move.Move
	PonderMove move.Move
	Score      int
	Depth      int
	Nodes      uint64
	SearchTime time.Duration
}

// Info is sent to the UCI layer once per completed iterative-deepening
// depth (and for a first depth cut short by a stop), carrying exactly what spec.md's "info score cp <s> depth <d>
// nodes <n> pv <...>" line needs.
type Info struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []move.Move
}
