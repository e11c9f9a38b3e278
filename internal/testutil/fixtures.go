package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/simgroup/internal/param"
	"github.com/roach88/simgroup/internal/sim"
)

// NewSimulation builds a simulation with a cubic 2π domain.
// params is converted with param.FromMap and must be valid.
func NewSimulation(t testing.TB, id, name string, started bool, params map[string]any) *sim.Simulation {
	t.Helper()

	p, err := param.FromMap(params)
	require.NoError(t, err)

	return &sim.Simulation{
		ID:         id,
		Name:       name,
		Path:       filepath.Join("runs", name),
		HasStarted: started,
		Lxyz:       [3]float64{6.2832, 6.2832, 6.2832},
		Params:     p,
	}
}

// WriteFile writes content to dir/name and returns the path.
// Parent directories are created as needed.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// MarkStarted creates the time series file that makes dir count as a
// started run.
func MarkStarted(t testing.TB, dir string) {
	t.Helper()
	WriteFile(t, dir, sim.TimeSeriesFile, "# it t dt\n")
}
