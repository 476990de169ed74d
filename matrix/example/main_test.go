package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/webbmaffian/go-zorder/matrix"
)

func TestRunMapped(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "m.zmat")
	snapshot := filepath.Join(dir, "m.snap")

	require.NoError(t, run(zerolog.Nop(), 4, mapPath, snapshot))

	m, err := matrix.OpenRO[float64](mapPath)
	require.NoError(t, err)
	require.Equal(t, 4*2+3.0, m.Get(2, 3))
	require.NoError(t, m.Close())

	f, err := os.Open(snapshot)
	require.NoError(t, err)
	defer f.Close()

	s, err := matrix.ReadFrom[float64](f)
	require.NoError(t, err)
	require.Equal(t, 4*3+1.0, s.Get(3, 1))
}

func TestRunBadRank(t *testing.T) {
	err := run(zerolog.Nop(), 3, "", "")
	require.ErrorIs(t, err, matrix.ErrRankNotPowerOfTwo)
}
