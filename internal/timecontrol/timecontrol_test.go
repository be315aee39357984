package timecontrol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedGrowsAfterStart(t *testing.T) {
	c := Start()
	time.Sleep(time.Millisecond)
	assert.Greater(t, c.Elapsed(), time.Duration(0))
}

func TestDeadlineAddsBudgetToStart(t *testing.T) {
	c := Start()
	deadline := c.Deadline(10 * time.Second)
	assert.True(t, deadline.After(time.Now()))
}

func TestNPSComputesRate(t *testing.T) {
	assert.EqualValues(t, 1000, NPS(1000, time.Second))
}

func TestNPSZeroElapsedReturnsZero(t *testing.T) {
	assert.EqualValues(t, 0, NPS(1000, 0))
}
