package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.2, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.3, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.46, RoundTo(0.4649, 2))
	assert.Equal(t, 3.0, RoundTo(2.6, 0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 45, Percent(0.449))
	assert.Equal(t, 70, Percent(0.696))
	assert.Equal(t, 100, Percent(1))
}
