package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranbaskarv/corvid/internal/attacks"
	"github.com/kiranbaskarv/corvid/internal/position"
)

func init() {
	attacks.Init()
}

func TestPerftStartPosition(t *testing.T) {
	p := position.NewStart()
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Perft(p, c.depth), "depth %d", c.depth)
	}
}

func TestPerftStartPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in -short mode")
	}
	p := position.NewStart()
	assert.Equal(t, uint64(4865609), Perft(p, 5))
}

func TestPerftKiwipete(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Perft(p, c.depth), "depth %d", c.depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"))
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Perft(p, c.depth), "depth %d", c.depth)
	}
}

func TestPerftPosition4(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1"))
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 6},
		{2, 264},
		{3, 9467},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Perft(p, c.depth), "depth %d", c.depth)
	}
}

func TestPerftPosition5(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"))
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 44},
		{2, 1486},
		{3, 62379},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Perft(p, c.depth), "depth %d", c.depth)
	}
}
