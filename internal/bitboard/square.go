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

package bitboard

import "fmt"

// File returns the 0..7 column of s (a=0 .. h=7).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the 0..7 row of s as stored (row 0 = rank 8, row 7 = rank 1).
func (s Square) Rank() int { return int(s) / 8 }

// IsValid reports whether s is a real board square.
func (s Square) IsValid() bool { return s >= 0 && s < 64 }

// String renders s in algebraic notation, e.g. "e4". Returns "-" for NoSquare.
func (s Square) String() string {
	if s == NoSquare || !s.IsValid() {
		return "-"
	}
	file := byte('a' + s.File())
	rank := byte('8' - s.Rank())
	return string([]byte{file, rank})
}

// ParseSquare parses algebraic notation ("e4") into a Square, or NoSquare for "-".
func ParseSquare(str string) (Square, error) {
	if str == "-" {
		return NoSquare, nil
	}
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("bitboard: invalid square %q", str)
	}
	file := str[0]
	rank := str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("bitboard: invalid square %q", str)
	}
	col := int(file - 'a')
	row := 7 - int(rank-'1')
	return Square(row*8 + col), nil
}
