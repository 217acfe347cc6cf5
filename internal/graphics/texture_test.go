package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerImage(t *testing.T) {
	img, err := CheckerImage(64, 8)
	require.NoError(t, err)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	// 8x8 pixels per cell
	assert.Equal(t, CheckerMarker, img.RGBAAt(0, 0))
	assert.Equal(t, CheckerMarker, img.RGBAAt(7, 63))
	assert.Equal(t, CheckerDark, img.RGBAAt(8, 0))
	assert.Equal(t, CheckerLight, img.RGBAAt(16, 0))
	assert.Equal(t, CheckerLight, img.RGBAAt(8, 8))
	assert.Equal(t, CheckerDark, img.RGBAAt(63, 0))
}

func TestCheckerImageRejectsBadSizes(t *testing.T) {
	_, err := CheckerImage(4, 8)
	assert.Error(t, err)
	_, err = CheckerImage(64, 0)
	assert.Error(t, err)
}
