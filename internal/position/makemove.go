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

package position

import (
	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/move"
	"github.com/kiranbaskarv/corvid/internal/types"
)

// Square constants for the castling corners, in a8=0..h1=63 numbering.
const (
	sqA1 = 56
	sqC1 = 58
	sqD1 = 59
	sqF1 = 61
	sqG1 = 62
	sqH1 = 63
	sqA8 = 0
	sqC8 = 2
	sqD8 = 3
	sqE8 = 4
	sqF8 = 5
	sqG8 = 6
	sqH8 = 7
	sqE1 = 60
)

// Mode selects which moves MakeMove is willing to apply.
type Mode int

const (
	// All accepts any pseudo-legal move.
	All Mode = iota
	// CapturesOnly rejects (without mutating the position) any move that
	// is not a capture - the mode quiescence search makes moves with.
	CapturesOnly
)

// castlingMask is AND-ed into Castle for both the source and destination
// square of every move, revoking rights when a king or rook square (or the
// square a captured rook sat on) is touched. Squares not listed pass 15
// through unchanged.
var castlingMask = func() [64]types.CastleRights {
	var m [64]types.CastleRights
	for i := range m {
		m[i] = 15
	}
	m[sqE1] = 12 // white king moves or is captured on e1: lose both white rights
	m[sqH1] = 14 // white h1 rook moves or is captured: lose WKC
	m[sqA1] = 13 // white a1 rook moves or is captured: lose WQC
	m[sqE8] = 3  // black king: lose both black rights
	m[sqH8] = 11 // black h8 rook: lose BKC
	m[sqA8] = 7  // black a8 rook: lose BQC
	return m
}()

// MakeMove applies m to the position. It snapshots first; on an illegal
// result (the mover's king left in check) or a mode mismatch it restores
// the snapshot and reports false. The caller is responsible for calling
// UnmakeMove with the returned snapshot when it is done with this node,
// regardless of legality.
func (p *Position) MakeMove(m move.Move, mode Mode) (snap Snapshot, legal bool) {
	snap = p.Snap()

	if mode == CapturesOnly && !m.IsCapture() {
		return snap, false
	}

	src := m.Source()
	dst := m.Dest()
	piece := m.Piece()
	mover := p.Side

	p.Piece[piece] = bitboard.Clear(p.Piece[piece], src)

	if m.IsEnPassant() {
		var capSq bitboard.Square
		if mover == types.White {
			capSq = dst + 8
			p.Piece[types.BP] = bitboard.Clear(p.Piece[types.BP], capSq)
		} else {
			capSq = dst - 8
			p.Piece[types.WP] = bitboard.Clear(p.Piece[types.WP], capSq)
		}
	} else if m.IsCapture() {
		p.clearEnemyAt(dst, mover)
	}

	if m.IsPromotion() {
		p.Piece[m.Promoted()] = bitboard.Set(p.Piece[m.Promoted()], dst)
	} else {
		p.Piece[piece] = bitboard.Set(p.Piece[piece], dst)
	}

	p.EP = bitboard.NoSquare
	if m.IsDoublePush() {
		if mover == types.White {
			p.EP = dst + 8
		} else {
			p.EP = dst - 8
		}
	}

	if m.IsCastling() {
		switch dst {
		case sqG1:
			p.Piece[types.WR] = bitboard.Clear(p.Piece[types.WR], sqH1)
			p.Piece[types.WR] = bitboard.Set(p.Piece[types.WR], sqF1)
		case sqC1:
			p.Piece[types.WR] = bitboard.Clear(p.Piece[types.WR], sqA1)
			p.Piece[types.WR] = bitboard.Set(p.Piece[types.WR], sqD1)
		case sqG8:
			p.Piece[types.BR] = bitboard.Clear(p.Piece[types.BR], sqH8)
			p.Piece[types.BR] = bitboard.Set(p.Piece[types.BR], sqF8)
		case sqC8:
			p.Piece[types.BR] = bitboard.Clear(p.Piece[types.BR], sqA8)
			p.Piece[types.BR] = bitboard.Set(p.Piece[types.BR], sqD8)
		}
	}

	p.Castle &= castlingMask[src]
	p.Castle &= castlingMask[dst]

	p.RecomputeOccupancy()
	p.Side = mover.Other()

	if p.IsSquareAttacked(p.KingSquare(mover), p.Side) {
		p.Restore(snap)
		return snap, false
	}
	return snap, true
}

// UnmakeMove restores the position from a snapshot previously returned by
// MakeMove.
func (p *Position) UnmakeMove(snap Snapshot) {
	p.Restore(snap)
}

// clearEnemyAt removes whichever enemy piece (of mover's opponent) sits on
// sq - scanning only the opponent's six piece kinds.
func (p *Position) clearEnemyAt(sq bitboard.Square, mover types.Color) {
	lo, hi := types.BP, types.BK
	if mover == types.Black {
		lo, hi = types.WP, types.WK
	}
	for pc := lo; pc <= hi; pc++ {
		if bitboard.Test(p.Piece[pc], sq) {
			p.Piece[pc] = bitboard.Clear(p.Piece[pc], sq)
			return
		}
	}
}
