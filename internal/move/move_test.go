package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kiranbaskarv/corvid/internal/bitboard"
	"github.com/kiranbaskarv/corvid/internal/types"
)

func TestEncodeDecode(t *testing.T) {
	src, _ := bitboard.ParseSquare("e2")
	dst, _ := bitboard.ParseSquare("e4")
	m := Encode(src, dst, types.WP, types.NoPiece, false, true, false, false)
	assert.Equal(t, src, m.Source())
	assert.Equal(t, dst, m.Dest())
	assert.Equal(t, types.WP, m.Piece())
	assert.False(t, m.IsCapture())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, "e2e4", m.String())
}

func TestPromotionEncoding(t *testing.T) {
	src, _ := bitboard.ParseSquare("e7")
	dst, _ := bitboard.ParseSquare("e8")
	m := Encode(src, dst, types.WP, types.WQ, false, false, false, false)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, types.WQ, m.Promoted())
	assert.Equal(t, "e7e8q", m.String())
}

func TestListSortByScore(t *testing.T) {
	var l List
	l.Add(Move(1))
	l.Add(Move(2))
	l.Add(Move(3))
	l.SetScore(0, 5)
	l.SetScore(1, 50)
	l.SetScore(2, 10)
	l.SortByScoreDescending()
	assert.Equal(t, Move(2), l.At(0))
	assert.Equal(t, Move(3), l.At(1))
	assert.Equal(t, Move(1), l.At(2))
}
