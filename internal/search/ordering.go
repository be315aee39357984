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

package search

import (
	"github.com/kiranbaskarv/corvid/internal/config"
	"github.com/kiranbaskarv/corvid/internal/move"
	"github.com/kiranbaskarv/corvid/internal/position"
	"github.com/kiranbaskarv/corvid/internal/types"
)

const (
	pvScore     = 20000
	killer1Score = 9000
	killer2Score = 8000
	mvvLvaBase  = 10000
)

// mvvLva[attackerType][victimType] - most valuable victim, least valuable
// attacker. Victim dominates the score (multiples of 100), attacker breaks
// ties (the -1..-5 per step), following the classic pawn/knight/.../king
// row layout.
var mvvLva = [6][6]int{
	{105, 205, 305, 405, 505, 605}, // attacker pawn
	{104, 204, 304, 404, 504, 604}, // attacker knight
	{103, 203, 303, 403, 503, 603}, // attacker bishop
	{102, 202, 302, 402, 502, 602}, // attacker rook
	{101, 201, 301, 401, 501, 601}, // attacker queen
	{100, 200, 300, 400, 500, 600}, // attacker king
}

// victimTypeAt identifies the piece type being captured by m, defaulting to
// a pawn when the destination square itself is empty - the en-passant case,
// where the captured pawn sits one rank behind the destination.
func victimTypeAt(p *position.Position, m move.Move) int {
	pc := p.PieceAt(m.Dest())
	if pc == types.NoPiece {
		return types.PawnType
	}
	return pc.PieceType()
}

// orderingState holds the per-ply ordering state a single search carries: killer
// moves and the PV-follow bookkeeping. history is shared across the whole
// search since it persists across plies by design.
type orderingState struct {
	killer  [2][]move.Move
	history [types.PieceCount][64]int32

	pvTable  [][]move.Move
	pvLength []int

	followPV bool
	scorePV  bool
}

func newOrderingState(maxPly int) *orderingState {
	o := &orderingState{
		killer:   [2][]move.Move{make([]move.Move, maxPly), make([]move.Move, maxPly)},
		pvTable:  make([][]move.Move, maxPly),
		pvLength: make([]int, maxPly),
	}
	for i := range o.pvTable {
		o.pvTable[i] = make([]move.Move, maxPly)
	}
	return o
}

func (o *orderingState) reset() {
	for i := range o.killer[0] {
		o.killer[0][i] = 0
		o.killer[1][i] = 0
	}
	for i := range o.history {
		for j := range o.history[i] {
			o.history[i][j] = 0
		}
	}
}

// scoreMove implements spec.md's score_move ordering function.
func (o *orderingState) scoreMove(p *position.Position, m move.Move, ply int) int32 {
	if o.scorePV && m == o.pvTable[0][ply] {
		o.scorePV = false
		return pvScore
	}
	if m.IsCapture() {
		attacker := m.Piece().PieceType()
		victim := victimTypeAt(p, m)
		return int32(mvvLva[attacker][victim] + mvvLvaBase)
	}
	if config.Settings.Search.UseKillers {
		if m == o.killer[0][ply] {
			return killer1Score
		}
		if m == o.killer[1][ply] {
			return killer2Score
		}
	}
	if config.Settings.Search.UseHistory {
		return o.history[m.Piece()][m.Dest()]
	}
	return 0
}

// storeKiller records m as the most recent killer at ply, demoting the
// previous first killer to second.
func (o *orderingState) storeKiller(m move.Move, ply int) {
	if !config.Settings.Search.UseKillers {
		return
	}
	o.killer[1][ply] = o.killer[0][ply]
	o.killer[0][ply] = m
}

// enablePVFollow scans list for the PV move recorded at this ply in the
// previous iteration; if present, ordering boosts it and clears the flag
// once consumed, exactly as spec.md describes.
func (o *orderingState) enablePVFollow(list *move.List, ply int) {
	o.followPV = false
	want := o.pvTable[0][ply]
	if want == 0 {
		return
	}
	for i := 0; i < list.Len(); i++ {
		if list.At(i) == want {
			o.followPV = true
			o.scorePV = true
			return
		}
	}
}

// savePV records m as the best move at ply and appends the continuation
// copied up from ply+1, the triangular-table update from spec.md §4.J.11.
func (o *orderingState) savePV(ply int, m move.Move) {
	o.pvTable[ply][ply] = m
	for next := ply + 1; next < o.pvLength[ply+1]; next++ {
		o.pvTable[ply][next] = o.pvTable[ply+1][next]
	}
	o.pvLength[ply] = o.pvLength[ply+1]
}

// rootPV returns the principal variation found by the most recent search,
// as recorded at ply 0.
func (o *orderingState) rootPV() []move.Move {
	n := o.pvLength[0]
	pv := make([]move.Move, n)
	copy(pv, o.pvTable[0][:n])
	return pv
}
