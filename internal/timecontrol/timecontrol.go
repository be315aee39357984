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

// Package timecontrol wraps the wall-clock bookkeeping a search needs:
// elapsed time since a move started, and the nodes-per-second rate that
// goes into a UCI "info" line. time.Now()/time.Since already hide the
// platform gap the original's GetTickCount/gettimeofday split had to
// bridge by hand, so this package is a thin, OS-independent layer over
// them rather than a syscall wrapper.
package timecontrol

import "time"

// Clock marks the instant a search (or any timed phase) began.
type Clock struct {
	start time.Time
}

// Start returns a Clock ticking from now.
func Start() Clock {
	return Clock{start: time.Now()}
}

// Elapsed returns the time since Start was called.
func (c Clock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Deadline returns the instant budget after this Clock's start, the value
// a search's stop-time check compares against.
func (c Clock) Deadline(budget time.Duration) time.Time {
	return c.start.Add(budget)
}

// NPS computes nodes searched per second, the rate UCI "info" lines report
// alongside node counts. Returns 0 for a non-positive elapsed duration
// instead of dividing by zero.
func NPS(nodes uint64, elapsed time.Duration) uint64 {
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(nodes) / elapsed.Seconds())
}
