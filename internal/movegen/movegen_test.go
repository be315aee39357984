package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranbaskarv/corvid/internal/move"
	"github.com/kiranbaskarv/corvid/internal/position"
)

func TestGeneratedMovesObeySourcePieceAndCaptureLaws(t *testing.T) {
	p := position.NewStart()
	var list move.List
	Generate(p, &list)
	assert.Equal(t, 20, list.Len())

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		pc := p.PieceAt(m.Source())
		assert.Equal(t, m.Piece(), pc, "move %s source square should hold declared piece", m)

		isEmpty := p.PieceAt(m.Dest()) == -1
		wantEmpty := !m.IsCapture() && !m.IsCastling()
		assert.Equal(t, wantEmpty, isEmpty, "move %s destination-empty mismatch", m)
	}
}

func TestEnPassantGeneration(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"))
	var list move.List
	Generate(p, &list)
	found := false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.IsEnPassant() {
			found = true
			dst, _ := m.Dest(), 0
			_ = dst
			assert.Equal(t, p.EP, m.Dest())
		}
	}
	assert.True(t, found, "expected an en-passant capture to be generated")
}

func TestPromotionGeneration(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("8/4P3/8/8/8/8/8/4k2K w - - 0 1"))
	var list move.List
	Generate(p, &list)
	count := 0
	for i := 0; i < list.Len(); i++ {
		if list.At(i).IsPromotion() {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestStalemateGeneratesNoLegalMoves(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("7k/5Q2/5K2/8/8/8/8/8 b - - 0 1"))
	var list move.List
	Generate(p, &list)
	legalCount := 0
	for i := 0; i < list.Len(); i++ {
		snap, legal := p.MakeMove(list.At(i), position.All)
		if legal {
			legalCount++
		}
		p.UnmakeMove(snap)
	}
	assert.Equal(t, 0, legalCount)
}
