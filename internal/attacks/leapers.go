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

// Package attacks precomputes the pawn, knight, and king leaper attack
// tables, and the magic-bitboard lookup tables for bishop and rook
// sliders. Everything here is computed once at init and read-only
// thereafter.
package attacks

import "github.com/kiranbaskarv/corvid/internal/bitboard"

// Pawn holds the two-sided pawn capture attack table, indexed [side][square].
var Pawn [2][64]bitboard.Board

// Knight holds the knight leap attack table, indexed [square].
var Knight [64]bitboard.Board

// King holds the king step attack table, indexed [square].
var King [64]bitboard.Board

// side indices into Pawn, matching types.White/types.Black.
const (
	whiteSide = 0
	blackSide = 1
)

func initLeapers() {
	for s := bitboard.Square(0); s < 64; s++ {
		b := bitboard.Set(bitboard.Board(0), s)

		// Pawn: white attacks s-7 (NE) guarded against wrap into file A,
		// s-9 (NW) guarded against wrap into file H. Black is the mirror.
		var wp, bp bitboard.Board
		if t := b >> 7; t&bitboard.NotA != 0 {
			wp |= t
		}
		if t := b >> 9; t&bitboard.NotH != 0 {
			wp |= t
		}
		if t := b << 7; t&bitboard.NotH != 0 {
			bp |= t
		}
		if t := b << 9; t&bitboard.NotA != 0 {
			bp |= t
		}
		Pawn[whiteSide][s] = wp
		Pawn[blackSide][s] = bp

		// Knight: eight L-shaped offsets, each guarded against the file(s)
		// it would otherwise wrap across.
		var kn bitboard.Board
		if t := b >> 17; t&bitboard.NotH != 0 {
			kn |= t
		}
		if t := b >> 15; t&bitboard.NotA != 0 {
			kn |= t
		}
		if t := b >> 10; t&bitboard.NotGH != 0 {
			kn |= t
		}
		if t := b >> 6; t&bitboard.NotAB != 0 {
			kn |= t
		}
		if t := b << 17; t&bitboard.NotA != 0 {
			kn |= t
		}
		if t := b << 15; t&bitboard.NotH != 0 {
			kn |= t
		}
		if t := b << 10; t&bitboard.NotAB != 0 {
			kn |= t
		}
		if t := b << 6; t&bitboard.NotGH != 0 {
			kn |= t
		}
		Knight[s] = kn

		// King: the eight adjacent squares.
		var ki bitboard.Board
		if t := b >> 8; t != 0 {
			ki |= t
		}
		if t := b << 8; t != 0 {
			ki |= t
		}
		if t := b >> 1; t&bitboard.NotH != 0 {
			ki |= t
		}
		if t := b << 1; t&bitboard.NotA != 0 {
			ki |= t
		}
		if t := b >> 9; t&bitboard.NotH != 0 {
			ki |= t
		}
		if t := b << 7; t&bitboard.NotH != 0 {
			ki |= t
		}
		if t := b >> 7; t&bitboard.NotA != 0 {
			ki |= t
		}
		if t := b << 9; t&bitboard.NotA != 0 {
			ki |= t
		}
		King[s] = ki
	}
}
