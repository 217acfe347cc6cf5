package main

import (
	"os"
	"strings"
	"testing"

	"glshapes/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshStatsDefaultScene(t *testing.T) {
	lines, err := meshStats(config.Default())
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "axes"))
	assert.Contains(t, lines[0], "lines=3")
	assert.Contains(t, lines[1], "tris=2")
	assert.Contains(t, lines[2], "tris=12")
	// 2 * 32 * (16 - 1)
	assert.Contains(t, lines[3], "tris=960")
}

func TestMeshStatsReportsBadShape(t *testing.T) {
	scene, err := config.Parse(strings.NewReader("[[shape]]\nkind = \"sphere\"\nlongitude_segments = 2\n"))
	require.NoError(t, err)

	_, err = meshStats(scene)
	assert.ErrorContains(t, err, "shape 0 (sphere)")
}

func TestDemoSceneLoads(t *testing.T) {
	if _, err := os.Stat("../../scenes/demo.toml"); err != nil {
		t.Skip("demo scene not found")
	}
	scene, err := config.Load("../../scenes/demo.toml")
	require.NoError(t, err)

	lines, err := meshStats(scene)
	require.NoError(t, err)
	assert.Len(t, lines, len(scene.Shapes))
}
