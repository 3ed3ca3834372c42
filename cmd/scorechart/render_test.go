package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/scorechart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargets(t *testing.T) {
	list, err := targets([]string{"a/x.csv", "b/y.csv"}, "out", ".png")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("out", "x.png"), filepath.Join("out", "y.png")}, list)

	_, err = targets([]string{"a/x.csv", "b/x.csv"}, "out", ".png")
	assert.ErrorIs(t, err, scorechart.ErrInvalidInput)

	_, err = targets([]string{"a/x.csv", "a/x.tsv"}, "out", ".svg")
	assert.ErrorIs(t, err, scorechart.ErrInvalidInput)
}

func TestWriteImage(t *testing.T) {
	opts := testOptions()
	ch, err := opts.chart([]float64{1, 2, 3}, "Score", 0)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "score.png")
	require.NoError(t, writeImage(opts, ch, target))
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	opts.Engine = "canvas"
	failed := filepath.Join(t.TempDir(), "failed.png")
	assert.Error(t, writeImage(opts, ch, failed))
	assert.NoFileExists(t, failed)
}

func TestRenderFile(t *testing.T) {
	var (
		dir    = t.TempDir()
		input  = filepath.Join(dir, "laps.csv")
		target = filepath.Join(dir, "laps.png")
	)
	require.NoError(t, os.WriteFile(input, []byte("i,v\n0,1\n1,2\n"), 0o644))
	require.NoError(t, renderFile(testOptions(), input, target, 0))
	assert.FileExists(t, target)

	opts := testOptions()
	opts.Engine = "canvas"
	broken := filepath.Join(dir, "broken.png")
	assert.Error(t, renderFile(opts, input, broken, 0))
	assert.NoFileExists(t, broken)
}
