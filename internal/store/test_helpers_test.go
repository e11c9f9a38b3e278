package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/simgroup/internal/param"
	"github.com/roach88/simgroup/internal/sim"
)

// createTestStore creates a new temp-dir store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestSimulation creates a started simulation with one parameter.
func createTestSimulation(id, name string, nu float64) *sim.Simulation {
	return &sim.Simulation{
		ID:         id,
		Name:       name,
		Path:       "runs/" + name,
		HasStarted: true,
		Lxyz:       [3]float64{6.2832, 6.2832, 6.2832},
		Params:     param.Params{"nu": param.Float(nu)},
	}
}
