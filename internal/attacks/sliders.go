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

package attacks

import "github.com/kiranbaskarv/corvid/internal/bitboard"

// relevantMask returns the "inner" ray squares for a slider at sq, excluding
// the board rim along each of its ray directions - the squares whose
// occupancy can actually change the slider's attack set.
func relevantMask(sq bitboard.Square, bishop bool) bitboard.Board {
	return slideRays(sq, 0, bishop, true)
}

// slidingAttackOnFly computes the true blocker-aware attack set for a slider
// at sq given board occupancy occ: it scans outward along each ray until a
// blocker is met, including that blocker square.
func slidingAttackOnFly(sq bitboard.Square, occ bitboard.Board, bishop bool) bitboard.Board {
	return slideRays(sq, occ, bishop, false)
}

// slideRays walks the four ray directions of a bishop or rook from sq.
// When innerOnly is true it stops one square short of the rim and ignores
// occupancy (building the relevant-occupancy mask); otherwise it scans to
// the edge of the board and stops at (and includes) the first blocker.
func slideRays(sq bitboard.Square, occ bitboard.Board, bishop, innerOnly bool) bitboard.Board {
	var attacks bitboard.Board
	row := sq.Rank()
	col := sq.File()

	type dir struct{ dr, df int }
	var dirs []dir
	if bishop {
		dirs = []dir{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	} else {
		dirs = []dir{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	}

	lo, hi := 0, 7
	if innerOnly {
		lo, hi = 1, 6
	}

	for _, d := range dirs {
		r, f := row+d.dr, col+d.df
		for r >= 0 && r <= 7 && f >= 0 && f <= 7 {
			if innerOnly && (r < lo || r > hi || f < lo || f > hi) {
				break
			}
			s := bitboard.Square(r*8 + f)
			attacks = bitboard.Set(attacks, s)
			if !innerOnly && bitboard.Test(occ, s) {
				break
			}
			r += d.dr
			f += d.df
		}
	}
	return attacks
}
