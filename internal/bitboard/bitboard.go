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

// Package bitboard holds the 64-bit board representation and the handful
// of bit-twiddling primitives (population count, lsb index, set/clear/test)
// every other package builds on.
package bitboard

import "math/bits"

// Board is a 64 bit unsigned int with one bit per square. Square numbering
// follows a8=0, h8=7, a7=8, ..., h1=63.
type Board uint64

// Square identifies one of the 64 board squares, or NoSquare.
type Square int8

// NoSquare is the sentinel for "no en-passant target" and similar absent-square values.
const NoSquare Square = -1

// File-edge masks, bits cleared on the named file(s). Computed once below.
var (
	NotA  Board
	NotH  Board
	NotAB Board
	NotGH Board
)

func init() {
	var a, b, g, h Board
	for r := 0; r < 8; r++ {
		a |= Board(1) << uint(r*8+0)
		b |= Board(1) << uint(r*8+1)
		g |= Board(1) << uint(r*8+6)
		h |= Board(1) << uint(r*8+7)
	}
	NotA = ^a
	NotH = ^h
	NotAB = ^(a | b)
	NotGH = ^(g | h)
}

// Set returns b with the bit for square s set.
func Set(b Board, s Square) Board { return b | Board(1)<<uint(s) }

// Clear returns b with the bit for square s cleared.
func Clear(b Board, s Square) Board { return b &^ (Board(1) << uint(s)) }

// Test reports whether bit s is set in b.
func Test(b Board, s Square) bool { return b&(Board(1)<<uint(s)) != 0 }

// PopCount returns the number of set bits in b.
func PopCount(b Board) int { return bits.OnesCount64(uint64(b)) }

// Lsb returns the square of the least significant set bit, or NoSquare if b is empty.
func Lsb(b Board) Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit's square.
func PopLsb(b *Board) Square {
	s := Lsb(*b)
	if s != NoSquare {
		*b = Clear(*b, s)
	}
	return s
}
