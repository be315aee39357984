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

// Package types holds the small shared vocabulary (piece kinds, colors,
// castling rights) that position, movegen, eval and search all need
// without creating import cycles between them.
package types

// Piece indexes the twelve piece kinds in the order P, N, B, R, Q, K,
// p, n, b, r, q, k. Uppercase (white) pieces occupy 0..5, lowercase
// (black) pieces occupy 6..11.
type Piece int8

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	NoPiece Piece = -1
)

// PieceCount is the number of piece kinds (12).
const PieceCount = 12

// Color identifies the side to move.
type Color int8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// Color reports which side a piece kind belongs to.
func (p Piece) Color() Color {
	if p >= BP {
		return Black
	}
	return White
}

// glyphs are indexed by Piece and give the FEN letter for each piece kind.
var glyphs = [PieceCount]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// Glyph returns the FEN character for p.
func (p Piece) Glyph() byte { return glyphs[p] }

// PieceFromGlyph maps a FEN piece letter back to a Piece, or NoPiece if unrecognized.
func PieceFromGlyph(c byte) Piece {
	for i, g := range glyphs {
		if g == c {
			return Piece(i)
		}
	}
	return NoPiece
}

// promoGlyphs gives the output letter for a promoted piece kind, per
// spec: N/n->'n', B/b->'b', R/r->'r', Q/q->'q'.
var promoGlyphs = map[Piece]byte{
	WN: 'n', BN: 'n',
	WB: 'b', BB: 'b',
	WR: 'r', BR: 'r',
	WQ: 'q', BQ: 'q',
}

// PromoGlyph returns the UCI promotion letter for a promoted piece kind,
// or 0 if p cannot be a promotion target.
func (p Piece) PromoGlyph() byte { return promoGlyphs[p] }

// PromoPieceFromGlyph maps a UCI promotion letter ('q','r','b','n') and a
// color to the corresponding Piece.
func PromoPieceFromGlyph(c byte, side Color) Piece {
	var base Piece
	switch c {
	case 'q':
		base = WQ
	case 'r':
		base = WR
	case 'b':
		base = WB
	case 'n':
		base = WN
	default:
		return NoPiece
	}
	if side == Black {
		return base + (BP - WP)
	}
	return base
}

// PieceType strips color, returning a value 0..5 comparable across colors
// ({P,N,B,R,Q,K}). Useful for piece-square table lookups and MVV-LVA.
func (p Piece) PieceType() int {
	if p >= BP {
		return int(p - BP)
	}
	return int(p)
}

const (
	PawnType = iota
	KnightType
	BishopType
	RookType
	QueenType
	KingType
)

// Castling rights bits.
const (
	WKC = 1 << iota // white king-side
	WQC              // white queen-side
	BKC              // black king-side
	BQC              // black queen-side
)

// CastleRights is a 4-bit set of the WKC/WQC/BKC/BQC flags.
type CastleRights uint8

// Has reports whether the given bit(s) are set.
func (c CastleRights) Has(bit uint8) bool { return uint8(c)&bit != 0 }
