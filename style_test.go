package mnvplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStyleDefaults(t *testing.T) {
	s, err := LoadStyle("")
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), s)

	s, err = LoadStyle(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), s)
}

func TestLoadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Nuclear Targets
ratio_min: 0.8
ratio_max: 1.2
layout:
  bottom_fraction: 0.3
palette: [black, "#0072b2"]
`), 0o644))

	s, err := LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, "Nuclear Targets", s.Title)
	assert.Equal(t, 0.8, s.RatioMin)
	assert.Equal(t, 1.2, s.RatioMax)
	assert.Equal(t, 0.3, s.Layout.BottomFraction)
	assert.Equal(t, DefaultLayout.Margin, s.Layout.Margin, "unset keys keep their defaults")
	assert.Equal(t, 7.0, s.Width)

	pal, err := s.Colors()
	require.NoError(t, err)
	assert.Len(t, pal, 2)
}

func TestLoadStyleInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1"), 0o644))
	_, err := LoadStyle(bad)
	assert.Error(t, err)

	inverted := filepath.Join(dir, "inverted.yaml")
	require.NoError(t, os.WriteFile(inverted, []byte("ratio_min: 2\nratio_max: 1\n"), 0o644))
	_, err = LoadStyle(inverted)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("ratio_min: 1\nratio_max: 1\n"), 0o644))
	_, err = LoadStyle(empty)
	assert.Error(t, err)

	color := filepath.Join(dir, "color.yaml")
	require.NoError(t, os.WriteFile(color, []byte("palette: [chartreuse, notacolor]\n"), 0o644))
	_, err = LoadStyle(color)
	assert.Error(t, err)
}

func TestAutoRatio(t *testing.T) {
	s := DefaultStyle()
	assert.False(t, s.AutoRatio())

	s.RatioMin, s.RatioMax = 0, 0
	assert.True(t, s.AutoRatio())
	assert.NoError(t, s.Validate())

	s.RatioMax = -1
	assert.False(t, s.AutoRatio())
	assert.Error(t, s.Validate())
}
