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

// Package move packs and unpacks the 24-bit move word used throughout the
// engine: source (6 bits), destination (6 bits), moving piece (4 bits),
// promoted piece (4 bits), and capture/double-push/en-passant/castling flags.
package move

import (
	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/types"
)

// Move is a packed move word. The zero value is not a valid move.
type Move uint32

const (
	srcShift    = 0
	dstShift    = 6
	pieceShift  = 12
	promoShift  = 16
	captureBit  = 1 << 20
	doublePushBit = 1 << 21
	epBit       = 1 << 22
	castleBit   = 1 << 23

	sqMask    = 0x3F
	pieceMask = 0xF
)

// Encode packs a move's fields into a Move word.
func Encode(src, dst bitboard.Square, piece, promoted types.Piece, capture, doublePush, enPassant, castling bool) Move {
	m := Move(uint32(src)&sqMask) << srcShift
	m |= Move(uint32(dst)&sqMask) << dstShift
	m |= Move(uint32(piece)&pieceMask) << pieceShift
	if promoted != types.NoPiece {
		m |= Move(uint32(promoted)&pieceMask) << promoShift
	}
	if capture {
		m |= captureBit
	}
	if doublePush {
		m |= doublePushBit
	}
	if enPassant {
		m |= epBit
	}
	if castling {
		m |= castleBit
	}
	return m
}

// Source returns the move's source square.
func (m Move) Source() bitboard.Square { return bitboard.Square((m >> srcShift) & sqMask) }

// Dest returns the move's destination square.
func (m Move) Dest() bitboard.Square { return bitboard.Square((m >> dstShift) & sqMask) }

// Piece returns the moving piece kind.
func (m Move) Piece() types.Piece { return types.Piece((m >> pieceShift) & pieceMask) }

// Promoted returns the promoted-to piece kind, or types.NoPiece if this is not a promotion.
// The promoted field is never legitimately a pawn (WP==0), so a zero field means "unset".
func (m Move) Promoted() types.Piece {
	if !m.IsPromotion() {
		return types.NoPiece
	}
	return types.Piece((m >> promoShift) & pieceMask)
}

// IsPromotion reports whether m carries a promoted piece.
func (m Move) IsPromotion() bool { return (m>>promoShift)&pieceMask != 0 }

// IsCapture reports whether m is a capture (including en-passant).
func (m Move) IsCapture() bool { return m&captureBit != 0 }

// IsDoublePush reports whether m is a pawn double push.
func (m Move) IsDoublePush() bool { return m&doublePushBit != 0 }

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool { return m&epBit != 0 }

// IsCastling reports whether m is a castling move.
func (m Move) IsCastling() bool { return m&castleBit != 0 }

// IsQuiet reports whether m is neither a capture nor a promotion - the
// category relevant to killer/history ordering and LMR eligibility.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// String renders m in long algebraic UCI notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.Source().String() + m.Dest().String()
	if m.IsPromotion() {
		s += string(m.Promoted().PromoGlyph())
	}
	return s
}
