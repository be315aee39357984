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

// magic holds the per-square magic bitboard data for one slider kind.
// Taken from the classic "fancy" magic bitboard approach - see
// https://www.chessprogramming.org/Magic_Bitboards.
type magic struct {
	mask    bitboard.Board
	number  bitboard.Board
	shift   uint
	attacks []bitboard.Board
}

func (m *magic) index(occ bitboard.Board) uint {
	return uint((occ & m.mask) * m.number >> m.shift)
}

var bishopMagics [64]magic
var rookMagics [64]magic

// prng is a xorshift64star pseudo-random generator, dedicated to the public
// domain by Sebastiano Vigna (2014). Used only to search for magic numbers
// at startup; never touched again afterwards.
type prng struct{ s uint64 }

func newPRNG(seed uint64) *prng { return &prng{s: seed} }

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse returns a candidate magic number with roughly 1/8th of its bits
// set on average - such sparse numbers are disproportionately likely to be
// good magics.
func (r *prng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}

// magicSeeds are per-rank starting seeds that tend to find a working magic
// quickly, as documented in the Stockfish "fancy" magic generator.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics(bishop bool) {
	table := &bishopMagics
	if !bishop {
		table = &rookMagics
	}

	occupancy := make([]bitboard.Board, 4096)
	reference := make([]bitboard.Board, 4096)
	epoch := make([]int, 4096)
	cnt := 0

	for sq := bitboard.Square(0); sq < 64; sq++ {
		m := &table[sq]
		m.mask = relevantMask(sq, bishop)
		bits := bitboard.PopCount(m.mask)
		m.shift = uint(64 - bits)
		size := 1 << uint(bits)
		m.attacks = make([]bitboard.Board, size)

		// Enumerate every occupancy subset of the mask via the
		// carry-rippler trick and record the true attack for it.
		var b bitboard.Board
		idx := 0
		for {
			occupancy[idx] = b
			reference[idx] = slidingAttackOnFly(sq, b, bishop)
			idx++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPRNG(magicSeeds[sq.Rank()])
		for i := 0; i < idx; {
			var candidate bitboard.Board
			for {
				candidate = bitboard.Board(rng.sparse())
				if bitboard.PopCount((m.mask*candidate)&0xFF00000000000000) >= 6 {
					break
				}
			}
			cnt++
			// Verify the candidate maps every occupancy subset to a
			// collision-free index, building the attacks table as a
			// side effect. epoch[] avoids re-zeroing attacks between
			// failed attempts.
			for i = 0; i < idx; i++ {
				j := m.indexFor(occupancy[i], candidate)
				if epoch[j] < cnt {
					epoch[j] = cnt
					m.attacks[j] = reference[i]
				} else if m.attacks[j] != reference[i] {
					break
				}
			}
			if i == idx {
				m.number = candidate
			}
		}
	}
}

// indexFor computes the magic index using a candidate number, used only
// during the init-time search before m.number is finalized.
func (m *magic) indexFor(occ, candidate bitboard.Board) uint {
	return uint((occ & m.mask) * candidate >> m.shift)
}

// BishopAttacksOf returns the bishop attack set from sq given full-board
// occupancy occ.
func BishopAttacksOf(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occ)]
}

// RookAttacksOf returns the rook attack set from sq given full-board
// occupancy occ.
func RookAttacksOf(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	m := &rookMagics[sq]
	return m.attacks[m.index(occ)]
}

// QueenAttacksOf returns the union of bishop and rook attack sets from sq.
func QueenAttacksOf(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	return BishopAttacksOf(sq, occ) | RookAttacksOf(sq, occ)
}

var initialized = false

// Init computes the leaper attack tables and searches for magic numbers for
// every square. It must run once before the first move is generated; it is
// idempotent and safe to call more than once.
func Init() {
	if initialized {
		return
	}
	initLeapers()
	initMagics(true)
	initMagics(false)
	initialized = true
}
