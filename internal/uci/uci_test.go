package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kiranbaskarv/corvid/internal/config"
)

func TestMain(m *testing.M) {
	config.Setup()
	m.Run()
}

func TestUciCommandAnnouncesIdentityAndOk(t *testing.T) {
	h := NewHandler()
	result := h.Command("uci")
	assert.Contains(t, result, "id name Corvid")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	h := NewHandler()
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestLoopStopsAtQuit(t *testing.T) {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestPositionStartposThenGoReturnsBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle("go depth 2")
	_ = h.searching.Wait()
	assert.Contains(t, buf.String(), "bestmove")
}

func TestPositionWithMovesAppliesThemBeforeSearch(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1", h.eng.Position.FEN())
}

func TestPositionFenAppliesGivenFen(t *testing.T) {
	h := NewHandler()
	h.Command("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.Equal(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", h.eng.Position.FEN())
}

func TestGoWithNoLimitsDefaultsToDepth64(t *testing.T) {
	limits, ok := parseLimits([]string{"go"})
	assert.True(t, ok)
	assert.Equal(t, 64, limits.Depth)
}

func TestGoWithDepthOnlyHasNoTimeControl(t *testing.T) {
	limits, ok := parseLimits([]string{"go", "depth", "6"})
	assert.True(t, ok)
	assert.Equal(t, 6, limits.Depth)
	assert.False(t, limits.TimeControl)
}

func TestGoMovetimeSetsTimeControl(t *testing.T) {
	limits, ok := parseLimits([]string{"go", "movetime", "500"})
	assert.True(t, ok)
	assert.True(t, limits.TimeControl)
	assert.EqualValues(t, 500_000_000, limits.MoveTime)
}

func TestGoMalformedDepthIsRejected(t *testing.T) {
	_, ok := parseLimits([]string{"go", "depth", "not-a-number"})
	assert.False(t, ok)
}

func TestStopInterruptsRunningSearch(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	h.Command("go infinite")
	final := h.Command("stop")
	assert.Contains(t, final, "bestmove", "stop should wait for the interrupted search to report its result")
}
