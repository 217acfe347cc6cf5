package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineWidthClamped(t *testing.T) {
	defer SetLineWidth(GetLineWidth())

	SetLineWidth(0)
	assert.Equal(t, float32(1), GetLineWidth())
	SetLineWidth(100)
	assert.Equal(t, float32(8), GetLineWidth())
	SetLineWidth(3)
	assert.Equal(t, float32(3), GetLineWidth())
}

func TestToggleWireframe(t *testing.T) {
	defer SetWireframe(GetWireframe())

	SetWireframe(false)
	assert.True(t, ToggleWireframe())
	assert.True(t, GetWireframe())
	assert.False(t, ToggleWireframe())
}

func TestFPSLimit(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-10)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(144)
	assert.Equal(t, 144, GetFPSLimit())
}
