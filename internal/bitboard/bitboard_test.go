package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetClearTest(t *testing.T) {
	var b Board
	b = Set(b, 0)
	assert.True(t, Test(b, 0))
	b = Set(b, 63)
	assert.True(t, Test(b, 63))
	assert.False(t, Test(b, 1))
	b = Clear(b, 0)
	assert.False(t, Test(b, 0))
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, PopCount(0))
	assert.Equal(t, 1, PopCount(1))
	assert.Equal(t, 64, PopCount(^Board(0)))
}

func TestLsbPopLsb(t *testing.T) {
	assert.Equal(t, NoSquare, Lsb(0))
	b := Set(Set(Board(0), 10), 20)
	assert.EqualValues(t, 10, Lsb(b))
	s := PopLsb(&b)
	assert.EqualValues(t, 10, s)
	assert.EqualValues(t, 20, Lsb(b))
}

func TestSquareStringRoundtrip(t *testing.T) {
	for _, str := range []string{"a8", "h8", "e4", "a1", "h1"} {
		sq, err := ParseSquare(str)
		assert.NoError(t, err)
		assert.Equal(t, str, sq.String())
	}
	sq, err := ParseSquare("-")
	assert.NoError(t, err)
	assert.Equal(t, NoSquare, sq)
}

func TestFileEdgeMasks(t *testing.T) {
	// a8 is square 0, file 0
	assert.False(t, Test(NotA, 0))
	assert.True(t, Test(NotA, 1))
	// h8 is square 7, file 7
	assert.False(t, Test(NotH, 7))
	assert.True(t, Test(NotH, 6))
}
