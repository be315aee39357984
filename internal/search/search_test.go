package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranbaskarv/corvid/internal/attacks"
	"github.com/kiranbaskarv/corvid/internal/config"
	"github.com/kiranbaskarv/corvid/internal/position"
)

func init() {
	attacks.Init()
	config.Setup()
}

func TestBackRankMateInOne(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))
	s := New()
	result := s.Run(p, Limits{Depth: 4})
	assert.GreaterOrEqual(t, result.Score, ValueMate-1)
	assert.Equal(t, 0, result.BestMove.Dest().Rank(), "mating move should land the rook on the eighth rank")
}

func TestStalemateScoresZero(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("7k/5Q2/5K2/8/8/8/8/8 b - - 0 1"))
	s := New()
	value := s.negamax(p, 1, 0, -ValueInfinite, ValueInfinite)
	assert.Equal(t, 0, value)
}

func TestSearchFindsLegalMoveFromStartPosition(t *testing.T) {
	p := position.NewStart()
	s := New()
	result := s.Run(p, Limits{Depth: 3})
	assert.NotZero(t, result.BestMove)
}

func TestAspirationResearchConverges(t *testing.T) {
	p := position.NewStart()
	s := New()
	first := s.Run(p, Limits{Depth: 2})
	second := s.Run(p, Limits{Depth: 3})
	assert.NotZero(t, first.BestMove)
	assert.NotZero(t, second.BestMove)
}

func TestCommunicateHookAbortsSearch(t *testing.T) {
	p := position.NewStart()
	s := New()
	s.Communicate = func() bool { return true }
	result := s.Run(p, Limits{Depth: 64})
	assert.Less(t, result.Depth, 10, "an always-stop communicate hook should cut the search short")
}
