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

// Package engine packages position, attack tables and search state into the
// single long-lived object the UCI loop drives: attack tables are
// initialized once at construction, and every "position"/"go" command
// mutates or searches the same Position and Search instance.
package engine

import (
	"github.com/kiranbaskarv/corvid/internal/attacks"
	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/logging"
	"github.com/kiranbaskarv/corvid/internal/move"
	"github.com/kiranbaskarv/corvid/internal/movegen"
	"github.com/kiranbaskarv/corvid/internal/position"
	"github.com/kiranbaskarv/corvid/internal/search"
)

var log = logging.GetLog("corvid")

// Engine is the UCI loop's single persistent handle onto the running game:
// the current position and the search instance that operates on it.
type Engine struct {
	Position *position.Position
	Search   *search.Search

	// plyPlayed counts moves applied since the last NewGame or
	// SetPositionFEN, used to tell
	// Go whether this is the game's opening move for time allocation.
	plyPlayed int
}

// New constructs an Engine at the start position. attacks.Init is
// idempotent and safe to call here unconditionally, matching spec.md §9's
// "initialization must complete before the first UCI command after uci".
func New() *Engine {
	attacks.Init()
	log.Info("attack tables initialized")
	return &Engine{
		Position: position.NewStart(),
		Search:   search.New(),
	}
}

// NewGame resets the engine to the start position and clears any
// search-carried state (killers/history are already cleared per-search by
// search.Run, so this only resets the board).
func (e *Engine) NewGame() {
	e.Position = position.NewStart()
	e.plyPlayed = 0
}

// SetPositionFEN replaces the current position with the one described by
// fen. On a malformed FEN it logs the error and resets to the start
// position, matching spec.md §7's documented-assumption guidance.
func (e *Engine) SetPositionFEN(fen string) {
	e.plyPlayed = 0
	p := position.New()
	if err := p.SetFEN(fen); err != nil {
		log.Warningf("malformed FEN %q (%v), resetting to start position", fen, err)
		e.Position = position.NewStart()
		return
	}
	e.Position = p
}

// ApplyMoves applies each long-algebraic move token (e.g. "e2e4", "e7e8q")
// in order. Parsing stops at the first token that is not a legal move in
// the current position; moves already applied remain applied, per spec.md
// §7's error-handling rule for "position ... moves ...".
func (e *Engine) ApplyMoves(tokens []string) {
	for _, tok := range tokens {
		m, ok := findMove(e.Position, tok)
		if !ok {
			log.Warningf("stopping move application at unmatched token %q", tok)
			return
		}
		snap, legal := e.Position.MakeMove(m, position.All)
		if !legal {
			log.Warningf("stopping move application at illegal token %q", tok)
			e.Position.UnmakeMove(snap)
			return
		}
		e.plyPlayed++
	}
}

// AtGameStart reports whether no move has yet been applied since the last
// NewGame or SetPositionFEN, the "first move of a game" spec.md's time policy treats
// specially.
func (e *Engine) AtGameStart() bool {
	return e.plyPlayed == 0
}

// findMove looks up the pseudo-legal move matching a UCI long-algebraic
// token against the moves generated for p.
func findMove(p *position.Position, tok string) (move.Move, bool) {
	if len(tok) < 4 || len(tok) > 5 {
		return 0, false
	}
	from, err := bitboard.ParseSquare(tok[0:2])
	if err != nil {
		return 0, false
	}
	to, err := bitboard.ParseSquare(tok[2:4])
	if err != nil {
		return 0, false
	}
	var promo byte
	if len(tok) == 5 {
		promo = tok[4]
	}

	var list move.List
	movegen.Generate(p, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Source() != from || m.Dest() != to {
			continue
		}
		if m.IsPromotion() {
			if promo == 0 || m.Promoted().PromoGlyph() != promo {
				continue
			}
		} else if promo != 0 {
			continue
		}
		return m, true
	}
	return 0, false
}

// Go starts a search from the current position using limits and reports
// the final result; onInfo (if non-nil) is wired to search.Search.OnInfo
// for the caller to forward as UCI "info" lines.
func (e *Engine) Go(limits search.Limits, onInfo func(search.Info)) search.Result {
	limits.FirstMove = e.AtGameStart()
	e.Search.OnInfo = onInfo
	return e.Search.Run(e.Position, limits)
}

// Stop requests the running search to return as soon as possible.
func (e *Engine) Stop() {
	e.Search.Stop()
}

// String renders the current position, for debug/log output.
func (e *Engine) String() string {
	return e.Position.String()
}
