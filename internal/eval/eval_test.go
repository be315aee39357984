package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranbaskarv/corvid/internal/config"
	"github.com/kiranbaskarv/corvid/internal/position"
)

func init() {
	config.Setup()
}

func TestStartPositionIsBalanced(t *testing.T) {
	p := position.NewStart()
	assert.Equal(t, 0, Evaluate(p))
}

func TestMaterialAdvantageFavorsSideUp(t *testing.T) {
	p := position.New()
	require.NoError(t, p.SetFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1"))
	assert.Greater(t, Evaluate(p), 0)
}

func TestScoreIsFromSideToMovePerspective(t *testing.T) {
	white := position.New()
	require.NoError(t, white.SetFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1"))
	black := position.New()
	require.NoError(t, black.SetFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1"))
	assert.Equal(t, Evaluate(white), -Evaluate(black))
}
