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

// Package movegen produces pseudo-legal moves for the side to move.
// Legality (that the mover's own king is not left in check) is enforced
// later, when the move is made.
package movegen

import (
	"github.com/kiranbaskarv/corvid/internal/attacks"
	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/move"
	"github.com/kiranbaskarv/corvid/internal/position"
	"github.com/kiranbaskarv/corvid/internal/types"
)

// promoPieces lists the four promotion targets in generation order for a
// given color.
func promoPieces(side types.Color) [4]types.Piece {
	if side == types.White {
		return [4]types.Piece{types.WQ, types.WR, types.WB, types.WN}
	}
	return [4]types.Piece{types.BQ, types.BR, types.BB, types.BN}
}

// Generate appends every pseudo-legal move for the side to move in p onto list.
// list is not reset first - callers own that so quiescence generation can
// reuse a list across sibling nodes.
func Generate(p *position.Position, list *move.List) {
	genPawnMoves(p, list)
	genKnightMoves(p, list)
	genBishopMoves(p, list)
	genRookMoves(p, list)
	genQueenMoves(p, list)
	genKingMoves(p, list)
	genCastling(p, list)
}

// GenerateCaptures appends only captures (including en-passant) and
// capture-promotions - the move set quiescence search needs.
func GenerateCaptures(p *position.Position, list *move.List) {
	var all move.List
	Generate(p, &all)
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if m.IsCapture() {
			list.Add(m)
		}
	}
}

func genPawnMoves(p *position.Position, list *move.List) {
	side := p.Side
	var pawns bitboard.Board
	var forward int
	var startRow, promoSourceRow int
	var enemy bitboard.Board
	if side == types.White {
		pawns = p.Piece[types.WP]
		forward = -8
		startRow = 6
		promoSourceRow = 1
		enemy = p.Occupancy[position.Black]
	} else {
		pawns = p.Piece[types.BP]
		forward = 8
		startRow = 1
		promoSourceRow = 6
		enemy = p.Occupancy[position.White]
	}
	occAll := p.Occupancy[position.Both]

	movingPiece := types.WP
	if side == types.Black {
		movingPiece = types.BP
	}

	for b := pawns; b != 0; {
		src := bitboard.PopLsb(&b)
		row := src.Rank()
		dst := bitboard.Square(int(src) + forward)

		// Single push and promotions. Per spec: require the destination to
		// be a valid square AND the source to not already be on the
		// promotion rank before emitting a non-promotion push - the
		// reference's looser -8 bound is deliberately not replicated.
		if dst.IsValid() && row != 0 && row != 7 && !bitboard.Test(occAll, dst) {
			if row == promoSourceRow {
				for _, promo := range promoPieces(side) {
					list.Add(move.Encode(src, dst, movingPiece, promo, false, false, false, false))
				}
			} else {
				list.Add(move.Encode(src, dst, movingPiece, types.NoPiece, false, false, false, false))
				if row == startRow {
					dst2 := bitboard.Square(int(src) + 2*forward)
					if !bitboard.Test(occAll, dst2) {
						list.Add(move.Encode(src, dst2, movingPiece, types.NoPiece, false, true, false, false))
					}
				}
			}
		}

		// Captures, including en-passant.
		capTargets := attacks.Pawn[sideIndex(side)][src]
		for t := capTargets; t != 0; {
			d := bitboard.PopLsb(&t)
			if bitboard.Test(enemy, d) {
				if row == promoSourceRow {
					for _, promo := range promoPieces(side) {
						list.Add(move.Encode(src, d, movingPiece, promo, true, false, false, false))
					}
				} else {
					list.Add(move.Encode(src, d, movingPiece, types.NoPiece, true, false, false, false))
				}
			} else if p.EP != bitboard.NoSquare && d == p.EP {
				list.Add(move.Encode(src, d, movingPiece, types.NoPiece, true, false, true, false))
			}
		}
	}
}

func sideIndex(side types.Color) int {
	if side == types.White {
		return position.White
	}
	return position.Black
}

func genLeaperMoves(p *position.Position, list *move.List, piece types.Piece, table *[64]bitboard.Board) {
	own := p.Occupancy[sideIndex(p.Side)]
	enemy := p.Occupancy[1-sideIndex(p.Side)]
	for b := p.Piece[piece]; b != 0; {
		src := bitboard.PopLsb(&b)
		for t := table[src] &^ own; t != 0; {
			dst := bitboard.PopLsb(&t)
			list.Add(move.Encode(src, dst, piece, types.NoPiece, bitboard.Test(enemy, dst), false, false, false))
		}
	}
}

func genKnightMoves(p *position.Position, list *move.List) {
	if p.Side == types.White {
		genLeaperMoves(p, list, types.WN, &attacks.Knight)
	} else {
		genLeaperMoves(p, list, types.BN, &attacks.Knight)
	}
}

func genKingMoves(p *position.Position, list *move.List) {
	if p.Side == types.White {
		genLeaperMoves(p, list, types.WK, &attacks.King)
	} else {
		genLeaperMoves(p, list, types.BK, &attacks.King)
	}
}

func genSliderMoves(p *position.Position, list *move.List, piece types.Piece, lookup func(bitboard.Square, bitboard.Board) bitboard.Board) {
	own := p.Occupancy[sideIndex(p.Side)]
	enemy := p.Occupancy[1-sideIndex(p.Side)]
	occ := p.Occupancy[position.Both]
	for b := p.Piece[piece]; b != 0; {
		src := bitboard.PopLsb(&b)
		for t := lookup(src, occ) &^ own; t != 0; {
			dst := bitboard.PopLsb(&t)
			list.Add(move.Encode(src, dst, piece, types.NoPiece, bitboard.Test(enemy, dst), false, false, false))
		}
	}
}

func genBishopMoves(p *position.Position, list *move.List) {
	if p.Side == types.White {
		genSliderMoves(p, list, types.WB, attacks.BishopAttacksOf)
	} else {
		genSliderMoves(p, list, types.BB, attacks.BishopAttacksOf)
	}
}

func genRookMoves(p *position.Position, list *move.List) {
	if p.Side == types.White {
		genSliderMoves(p, list, types.WR, attacks.RookAttacksOf)
	} else {
		genSliderMoves(p, list, types.BR, attacks.RookAttacksOf)
	}
}

func genQueenMoves(p *position.Position, list *move.List) {
	if p.Side == types.White {
		genSliderMoves(p, list, types.WQ, attacks.QueenAttacksOf)
	} else {
		genSliderMoves(p, list, types.BQ, attacks.QueenAttacksOf)
	}
}

// Square constants used by castling generation, in a8=0..h1=63 numbering.
const (
	sqE1 = 60
	sqF1 = 61
	sqG1 = 62
	sqD1 = 59
	sqC1 = 58
	sqB1 = 57
	sqA1 = 56
	sqH1 = 63
	sqE8 = 4
	sqF8 = 5
	sqG8 = 6
	sqD8 = 3
	sqC8 = 2
	sqB8 = 1
	sqA8 = 0
	sqH8 = 7
)

func genCastling(p *position.Position, list *move.List) {
	occ := p.Occupancy[position.Both]
	if p.Side == types.White {
		if p.Castle.Has(types.WKC) &&
			!bitboard.Test(occ, sqF1) && !bitboard.Test(occ, sqG1) &&
			!p.IsSquareAttacked(sqE1, types.Black) && !p.IsSquareAttacked(sqF1, types.Black) {
			list.Add(move.Encode(sqE1, sqG1, types.WK, types.NoPiece, false, false, false, true))
		}
		if p.Castle.Has(types.WQC) &&
			!bitboard.Test(occ, sqD1) && !bitboard.Test(occ, sqC1) && !bitboard.Test(occ, sqB1) &&
			!p.IsSquareAttacked(sqE1, types.Black) && !p.IsSquareAttacked(sqD1, types.Black) {
			list.Add(move.Encode(sqE1, sqC1, types.WK, types.NoPiece, false, false, false, true))
		}
		return
	}
	if p.Castle.Has(types.BKC) &&
		!bitboard.Test(occ, sqF8) && !bitboard.Test(occ, sqG8) &&
		!p.IsSquareAttacked(sqE8, types.White) && !p.IsSquareAttacked(sqF8, types.White) {
		list.Add(move.Encode(sqE8, sqG8, types.BK, types.NoPiece, false, false, false, true))
	}
	if p.Castle.Has(types.BQC) &&
		!bitboard.Test(occ, sqD8) && !bitboard.Test(occ, sqC8) && !bitboard.Test(occ, sqB8) &&
		!p.IsSquareAttacked(sqE8, types.White) && !p.IsSquareAttacked(sqD8, types.White) {
		list.Add(move.Encode(sqE8, sqC8, types.BK, types.NoPiece, false, false, false, true))
	}
}
