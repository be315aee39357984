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

// Package position holds the board state (piece bitboards, occupancies,
// side to move, en-passant target, castling rights) and the operations
// that read it: FEN parsing/emitting, square-attacked queries, and
// snapshotting for make/unmake.
package position

import (
	"strings"

	"github.com/kiranbaskarv/corvid/internal/attacks"
	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/types"
)

// Occupancy side indices.
const (
	White = 0
	Black = 1
	Both  = 2
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the complete board state needed to generate moves, make and
// unmake them, and evaluate the resulting position.
type Position struct {
	Piece     [types.PieceCount]bitboard.Board
	Occupancy [3]bitboard.Board
	Side      types.Color
	EP        bitboard.Square
	Castle    types.CastleRights
	HalfMoves int
	FullMoves int
}

// Snapshot is a full copy of a Position taken before make_move, used to
// restore the position on illegality or on unmake.
type Snapshot struct {
	Piece     [types.PieceCount]bitboard.Board
	Occupancy [3]bitboard.Board
	Side      types.Color
	EP        bitboard.Square
	Castle    types.CastleRights
	HalfMoves int
}

// New returns an empty Position (no pieces placed, white to move).
func New() *Position {
	return &Position{EP: bitboard.NoSquare}
}

// NewStart returns the standard starting position.
func NewStart() *Position {
	p := New()
	_ = p.SetFEN(StartFEN)
	return p
}

// Snap takes a snapshot of the current state for later restoration.
func (p *Position) Snap() Snapshot {
	return Snapshot{
		Piece:     p.Piece,
		Occupancy: p.Occupancy,
		Side:      p.Side,
		EP:        p.EP,
		Castle:    p.Castle,
		HalfMoves: p.HalfMoves,
	}
}

// Restore resets the position to a previously taken Snapshot.
func (p *Position) Restore(s Snapshot) {
	p.Piece = s.Piece
	p.Occupancy = s.Occupancy
	p.Side = s.Side
	p.EP = s.EP
	p.Castle = s.Castle
	p.HalfMoves = s.HalfMoves
}

// RecomputeOccupancy rebuilds the three occupancy bitboards from the
// twelve piece bitboards. Invariant: Occupancy[White] = OR of white
// pieces, Occupancy[Black] = OR of black pieces, Occupancy[Both] = union.
func (p *Position) RecomputeOccupancy() {
	var w, b bitboard.Board
	for pc := types.WP; pc <= types.WK; pc++ {
		w |= p.Piece[pc]
	}
	for pc := types.BP; pc <= types.BK; pc++ {
		b |= p.Piece[pc]
	}
	p.Occupancy[White] = w
	p.Occupancy[Black] = b
	p.Occupancy[Both] = w | b
}

// PieceAt returns the piece kind occupying sq, or types.NoPiece if empty.
func (p *Position) PieceAt(sq bitboard.Square) types.Piece {
	if !bitboard.Test(p.Occupancy[Both], sq) {
		return types.NoPiece
	}
	for pc := types.Piece(0); pc < types.PieceCount; pc++ {
		if bitboard.Test(p.Piece[pc], sq) {
			return pc
		}
	}
	return types.NoPiece
}

// KingSquare returns the square of side's king.
func (p *Position) KingSquare(side types.Color) bitboard.Square {
	if side == types.White {
		return bitboard.Lsb(p.Piece[types.WK])
	}
	return bitboard.Lsb(p.Piece[types.BK])
}

// IsSquareAttacked reports whether sq is attacked by any piece of bySide.
func (p *Position) IsSquareAttacked(sq bitboard.Square, bySide types.Color) bool {
	occ := p.Occupancy[Both]
	if bySide == types.White {
		if attacks.Pawn[Black][sq]&p.Piece[types.WP] != 0 {
			return true
		}
		if attacks.Knight[sq]&p.Piece[types.WN] != 0 {
			return true
		}
		if attacks.King[sq]&p.Piece[types.WK] != 0 {
			return true
		}
		if attacks.BishopAttacksOf(sq, occ)&(p.Piece[types.WB]|p.Piece[types.WQ]) != 0 {
			return true
		}
		if attacks.RookAttacksOf(sq, occ)&(p.Piece[types.WR]|p.Piece[types.WQ]) != 0 {
			return true
		}
		return false
	}
	if attacks.Pawn[White][sq]&p.Piece[types.BP] != 0 {
		return true
	}
	if attacks.Knight[sq]&p.Piece[types.BN] != 0 {
		return true
	}
	if attacks.King[sq]&p.Piece[types.BK] != 0 {
		return true
	}
	if attacks.BishopAttacksOf(sq, occ)&(p.Piece[types.BB]|p.Piece[types.BQ]) != 0 {
		return true
	}
	if attacks.RookAttacksOf(sq, occ)&(p.Piece[types.BR]|p.Piece[types.BQ]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether side's king is currently attacked.
func (p *Position) InCheck(side types.Color) bool {
	return p.IsSquareAttacked(p.KingSquare(side), side.Other())
}

// String renders an ASCII board diagram plus side/castle/ep info, in the
// style of classic bitboard-engine debug output.
func (p *Position) String() string {
	var b strings.Builder
	for row := 0; row < 8; row++ {
		b.WriteString("  ")
		b.WriteByte('8' - byte(row))
		b.WriteString("  ")
		for col := 0; col < 8; col++ {
			sq := bitboard.Square(row*8 + col)
			pc := p.PieceAt(sq)
			if pc == types.NoPiece {
				b.WriteByte('.')
			} else {
				b.WriteByte(pc.Glyph())
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n      a b c d e f g h\n\n")
	if p.Side == types.White {
		b.WriteString("     side:     white\n")
	} else {
		b.WriteString("     side:     black\n")
	}
	b.WriteString("     en passant:   " + p.EP.String() + "\n")
	b.WriteString("     castling:     " + p.CastleString() + "\n")
	return b.String()
}

// CastleString renders castling rights as the FEN substring, "-" if none.
func (p *Position) CastleString() string {
	s := ""
	if p.Castle.Has(types.WKC) {
		s += "K"
	}
	if p.Castle.Has(types.WQC) {
		s += "Q"
	}
	if p.Castle.Has(types.BKC) {
		s += "k"
	}
	if p.Castle.Has(types.BQC) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
