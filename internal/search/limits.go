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

import "time"

// Limits carries the subset of UCI "go" parameters the root driver needs to
// decide how deep and how long to search.
type Limits struct {
	Depth      int           // fixed depth; 0 means unset
	Nodes      uint64        // "go nodes" value; 0 means unset. Run does not enforce a node budget.
	MoveTime   time.Duration // exact time to use for this move; 0 means unset
	WTime      time.Duration
	BTime      time.Duration
	WInc       time.Duration
	BInc       time.Duration
	MovesToGo  int
	Infinite   bool
	TimeControl bool // true when any clock-derived limit applies
	FirstMove  bool  // true on the game's opening move, forcing movestogo=120
}

// timeOverhead is subtracted from every clock-derived budget to leave room
// for UCI round-trip and GC pauses before the clock would flag the engine.
const timeOverhead = 150 * time.Millisecond

// TimeBudget allocates how long the root driver should spend on this move:
// clock/movestogo − timeOverhead + increment. firstMove forces movestogo to
// 120, the opening-book-free allocation a fresh game gets, whatever
// movestogo the GUI sent; on later moves an unset movestogo counts as 30.
func (l Limits) TimeBudget(sideToMoveTime, sideToMoveInc time.Duration, firstMove bool) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if !l.TimeControl {
		return 0
	}
	movesToGo := l.MovesToGo
	switch {
	case firstMove:
		movesToGo = 120
	case movesToGo <= 0:
		movesToGo = 30
	}
	budget := sideToMoveTime/time.Duration(movesToGo) - timeOverhead + sideToMoveInc
	if budget < 0 {
		budget = 0
	}
	return budget
}
