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

// Package search implements iterative-deepening negamax over a Position:
// aspiration windows at the root, PVS with null-move pruning and late-move
// reductions inside the tree, MVV-LVA/killer/history move ordering, a
// triangular PV table, and cooperative time/stop checks every 2048 nodes.
package search

import (
	"sync/atomic"
	"time"

	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/config"
	"github.com/kiranbaskarv/corvid/internal/eval"
	"github.com/kiranbaskarv/corvid/internal/logging"
	"github.com/kiranbaskarv/corvid/internal/move"
	"github.com/kiranbaskarv/corvid/internal/movegen"
	"github.com/kiranbaskarv/corvid/internal/position"
	"github.com/kiranbaskarv/corvid/internal/timecontrol"
	"github.com/kiranbaskarv/corvid/internal/types"
)

// ValueMate is the base checkmate score; an actual mate score is
// ValueMate - ply so that faster mates sort ahead of slower ones.
const ValueMate = 49000

// ValueInfinite bounds the search window wider than any real score.
const ValueInfinite = 50000

var log = logging.GetSearchLog()

// Search holds everything one search run needs: ordering state, node/time
// bookkeeping, and the move lists reused at each ply to avoid allocating
// inside the hot recursive path.
type Search struct {
	ord *orderingState

	maxPly int
	lists  []move.List

	nodes    uint64
	stopFlag int32 // atomic bool

	clock    timecontrol.Clock
	stopTime time.Time
	timeSet  bool

	// Communicate, when set, is polled for an external "stop"/"quit" that
	// arrived mid-search. Nil means never polled; the uci package leaves it
	// nil and calls Stop instead.
	Communicate func() bool

	// OnInfo is invoked once per completed iterative-deepening depth, and
	// also for a first depth that a stop cut short.
	OnInfo func(Info)
}

// New creates a Search sized for config.Settings.Search.MaxPly plies.
func New() *Search {
	maxPly := config.Settings.Search.MaxPly
	if maxPly <= 0 {
		maxPly = 64
	}
	return &Search{
		ord:    newOrderingState(maxPly),
		maxPly: maxPly,
		lists:  make([]move.List, maxPly),
	}
}

// Stop requests that the running search return as soon as it next polls,
// the handler for UCI's "stop" and "quit" commands.
func (s *Search) Stop() {
	atomic.StoreInt32(&s.stopFlag, 1)
}

func (s *Search) stopped() bool {
	return atomic.LoadInt32(&s.stopFlag) != 0
}

// Run performs iterative deepening on p (not mutated beyond the lifetime of
// make/unmake pairs) up to limits, reporting each completed depth through
// OnInfo and returning the final result. A stop during depth 1 still
// reports and keeps whatever that depth found; a stop during any later
// depth discards it and keeps the previous depth's result.
func (s *Search) Run(p *position.Position, limits Limits) Result {
	atomic.StoreInt32(&s.stopFlag, 0)
	s.nodes = 0
	s.ord.reset()
	s.clock = timecontrol.Start()
	log.Debugf("search starting, side to move %v", p.Side)

	maxDepth := limits.Depth
	if maxDepth <= 0 {
		maxDepth = 64
	}

	s.timeSet = false
	if limits.MoveTime > 0 {
		s.stopTime = s.clock.Deadline(limits.MoveTime)
		s.timeSet = true
	} else if limits.TimeControl && !limits.Infinite {
		var budget time.Duration
		if p.Side == types.White {
			budget = limits.TimeBudget(limits.WTime, limits.WInc, limits.FirstMove)
		} else {
			budget = limits.TimeBudget(limits.BTime, limits.BInc, limits.FirstMove)
		}
		if budget > 0 {
			s.stopTime = s.clock.Deadline(budget)
			s.timeSet = true
		}
	}

	var best Result
	score := 0
	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := -ValueInfinite, ValueInfinite
		if config.Settings.Search.UseAspiration && depth > 1 {
			window := config.Settings.Search.AspirationWindow
			alpha, beta = score-window, score+window
		}

		s.ord.followPV = true
		var value int
		for {
			value = s.negamax(p, depth, 0, alpha, beta)
			if s.stopped() {
				break
			}
			if value <= alpha || value >= beta {
				// aspiration miss: widen to the full window and redo this
				// same depth, per spec.md's re-search rule.
				alpha, beta = -ValueInfinite, ValueInfinite
				continue
			}
			break
		}

		if s.stopped() && depth > 1 {
			break
		}

		score = value
		pv := s.ord.rootPV()
		if len(pv) > 0 {
			best = Result{
				BestMove: pv[0],
				Score:    score,
				Depth:    depth,
				Nodes:    s.nodes,
			}
			if len(pv) > 1 {
				best.PonderMove = pv[1]
			}
		}

		if s.OnInfo != nil {
			s.OnInfo(Info{
				Depth: depth,
				Score: score,
				Nodes: s.nodes,
				Time:  s.clock.Elapsed(),
				PV:    pv,
			})
		}

		if s.stopped() {
			break
		}
	}

	best.SearchTime = s.clock.Elapsed()
	best.Nodes = s.nodes
	log.Debugf("search finished: depth=%d score=%d nodes=%d time=%s", best.Depth, best.Score, best.Nodes, best.SearchTime)
	return best
}

// checkStop polls time and the communicate hook every
// config.Settings.Search.NodesPerCommunicate nodes, refreshing the stop
// flag as spec.md §4.J.1 describes.
func (s *Search) checkStop() bool {
	interval := uint64(config.Settings.Search.NodesPerCommunicate)
	if interval == 0 {
		interval = 2048
	}
	if s.nodes%interval == 0 {
		if s.timeSet && time.Now().After(s.stopTime) {
			s.Stop()
		}
		if s.Communicate != nil && s.Communicate() {
			s.Stop()
		}
	}
	return s.stopped()
}

// negamax implements spec.md §4.J's negamax with PVS, null-move pruning,
// and late-move reductions.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta int) int {
	s.ord.pvLength[ply] = ply

	if s.checkStop() {
		return 0
	}

	if depth == 0 {
		if config.Settings.Search.UseQuiescence {
			return s.quiescence(p, ply, alpha, beta)
		}
		return eval.Evaluate(p)
	}
	if ply >= s.maxPly-1 {
		return eval.Evaluate(p)
	}

	s.nodes++

	isCheck := p.InCheck(p.Side)
	if isCheck {
		depth++
	}

	// Null-move pruning.
	if config.Settings.Search.UseNullMove && depth >= 3 && !isCheck && ply > 0 {
		snap := p.Snap()
		p.Side = p.Side.Other()
		p.EP = bitboard.NoSquare
		r := config.Settings.Search.NullMoveReduction
		nd := depth - 1 - r
		if nd < 0 {
			nd = 0
		}
		value := -s.negamax(p, nd, ply+1, -beta, -beta+1)
		p.Restore(snap)
		if s.stopped() {
			return 0
		}
		if value >= beta {
			return beta
		}
	}

	list := &s.lists[ply]
	list.Reset()
	movegen.Generate(p, list)

	if s.ord.followPV {
		s.ord.enablePVFollow(list, ply)
	}
	for i := 0; i < list.Len(); i++ {
		list.SetScore(i, s.ord.scoreMove(p, list.At(i), ply))
	}
	list.SortByScoreDescending()

	bestValue := -ValueInfinite
	movesSearched := 0

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)

		snap, legal := p.MakeMove(m, position.All)
		if !legal {
			p.UnmakeMove(snap)
			continue
		}

		var value int
		if movesSearched == 0 || !config.Settings.Search.UsePVS {
			value = -s.negamax(p, depth-1, ply+1, -beta, -alpha)
		} else {
			reduced := false
			provisional := alpha + 1
			if config.Settings.Search.UseLMR &&
				movesSearched >= config.Settings.Search.LMRMinMovesSearched &&
				depth >= config.Settings.Search.LMRMinDepth &&
				!isCheck && m.IsQuiet() {
				reduced = true
				provisional = -s.negamax(p, depth-2, ply+1, -alpha-1, -alpha)
			}
			if provisional > alpha {
				value = -s.negamax(p, depth-1, ply+1, -alpha-1, -alpha)
				if value > alpha && value < beta {
					value = -s.negamax(p, depth-1, ply+1, -beta, -alpha)
				}
			} else {
				value = provisional
			}
		}

		movesSearched++
		p.UnmakeMove(snap)

		if s.stopped() {
			return 0
		}

		if value > bestValue {
			bestValue = value
		}

		if value >= beta {
			if m.IsQuiet() {
				s.ord.storeKiller(m, ply)
			}
			return beta
		}
		if value > alpha {
			if m.IsQuiet() && config.Settings.Search.UseHistory {
				s.ord.history[m.Piece()][m.Dest()] += int32(depth)
			}
			alpha = value
			s.ord.savePV(ply, m)
		}
	}

	if movesSearched == 0 {
		if isCheck {
			return -ValueMate + ply
		}
		return 0
	}

	return alpha
}

// quiescence implements spec.md §4.J's quiescence search: stand-pat plus
// captures only, to stabilize the evaluation of a leaf before it is trusted.
func (s *Search) quiescence(p *position.Position, ply int, alpha, beta int) int {
	if s.checkStop() {
		return 0
	}
	s.nodes++

	standPat := eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if ply >= s.maxPly-1 {
		return alpha
	}

	list := &s.lists[ply]
	list.Reset()
	movegen.GenerateCaptures(p, list)
	for i := 0; i < list.Len(); i++ {
		list.SetScore(i, s.ord.scoreMove(p, list.At(i), ply))
	}
	list.SortByScoreDescending()

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		snap, legal := p.MakeMove(m, position.CapturesOnly)
		if !legal {
			p.UnmakeMove(snap)
			continue
		}
		value := -s.quiescence(p, ply+1, -beta, -alpha)
		p.UnmakeMove(snap)

		if s.stopped() {
			return 0
		}
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}
