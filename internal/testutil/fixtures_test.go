package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/simgroup/internal/param"
	"github.com/roach88/simgroup/internal/sim"
)

func TestNewSimulation(t *testing.T) {
	s := NewSimulation(t, FormatID(1), "run-a", true, map[string]any{"nu": 0.001, "nxgrid": 64})

	assert.Equal(t, "run-a", s.Name)
	assert.True(t, s.Started())
	v, ok := s.Value("nxgrid")
	require.True(t, ok)
	assert.Equal(t, param.Int(64), v)
	assert.Equal(t, 6.2832, s.DomainSize()[0])
}

func TestWriteFileAndMarkStarted(t *testing.T) {
	dir := t.TempDir()

	path := WriteFile(t, dir, "nested/runs.yaml", "simulations: []\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "simulations: []\n", string(data))

	run := filepath.Join(dir, "run-a")
	assert.False(t, sim.DetectStarted(run))
	MarkStarted(t, run)
	assert.True(t, sim.DetectStarted(run))
}
