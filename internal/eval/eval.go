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

// Package eval provides static position evaluation: material plus
// piece-square table bonuses, always returned from the side-to-move's
// perspective.
package eval

import (
	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/config"
	"github.com/kiranbaskarv/corvid/internal/position"
	"github.com/kiranbaskarv/corvid/internal/types"
)

// Material values in centipawns, white pieces only - black values are the
// negatives, applied when accumulating.
var materialValue = [6]int{100, 300, 350, 500, 1000, 10000}

// mirror maps a white-perspective square to its black-perspective
// equivalent: rank r becomes rank 7-r, same file.
var mirror [64]bitboard.Square

func init() {
	for s := bitboard.Square(0); s < 64; s++ {
		row := s.Rank()
		col := s.File()
		mirror[s] = bitboard.Square((7-row)*8 + col)
	}
}

// Evaluate returns the static evaluation of p, in centipawns, from the
// perspective of the side to move.
func Evaluate(p *position.Position) int {
	score := 0
	for pc := types.Piece(0); pc < types.PieceCount; pc++ {
		pt := pc.PieceType()
		value := materialValue[pt]
		table := pieceSquareTable(pt)
		for b := p.Piece[pc]; b != 0; {
			sq := bitboard.PopLsb(&b)
			s := value
			if config.Settings.Eval.UsePST && table != nil {
				if pc.Color() == types.White {
					s += table[sq]
				} else {
					s += table[mirror[sq]]
				}
			}
			if pc.Color() == types.Black {
				s = -s
			}
			score += s
		}
	}
	if p.Side == types.Black {
		score = -score
	}
	return score
}

// pieceSquareTable returns the white-perspective table for a piece type,
// or nil for the queen, which has none (its mobility already dominates).
func pieceSquareTable(pt int) *[64]int {
	switch pt {
	case types.PawnType:
		return &pawnTable
	case types.KnightType:
		return &knightTable
	case types.BishopType:
		return &bishopTable
	case types.RookType:
		return &rookTable
	case types.KingType:
		return &kingTable
	default:
		return nil
	}
}
