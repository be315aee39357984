package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kiranbaskarv/corvid/internal/config"
	"github.com/kiranbaskarv/corvid/internal/search"
)

func init() {
	config.Setup()
}

func TestNewStartsAtStartPosition(t *testing.T) {
	e := New()
	assert.Equal(t, startFEN, e.Position.FEN())
}

func TestApplyMovesAppliesLongAlgebraicTokens(t *testing.T) {
	e := New()
	e.ApplyMoves([]string{"e2e4", "e7e5", "g1f3"})
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1", e.Position.FEN())
}

func TestApplyMovesStopsAtUnmatchedToken(t *testing.T) {
	e := New()
	e.ApplyMoves([]string{"e2e4", "bogus", "e7e5"})
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", e.Position.FEN())
}

func TestSetPositionFENResetsOnMalformedInput(t *testing.T) {
	e := New()
	e.SetPositionFEN("not a fen")
	assert.Equal(t, startFEN, e.Position.FEN())
}

func TestGoReturnsLegalBestMove(t *testing.T) {
	e := New()
	result := e.Go(search.Limits{Depth: 2}, nil)
	assert.NotZero(t, result.BestMove)
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
