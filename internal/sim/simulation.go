package sim

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/roach88/simgroup/internal/param"
)

// TimeSeriesFile is the file whose presence marks a run as started,
// relative to the run directory.
var TimeSeriesFile = filepath.Join("data", "time_series.dat")

// Simulation is one simulation run and its parameters.
type Simulation struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Path       string       `json:"path,omitempty"`
	HasStarted bool         `json:"started"`
	Lxyz       [3]float64   `json:"lxyz"`
	Params     param.Params `json:"params"`
}

// Started reports whether the run has begun producing output.
func (s *Simulation) Started() bool {
	return s.HasStarted
}

// Value looks up a run parameter by exact name.
func (s *Simulation) Value(name string) (param.Value, bool) {
	return s.Params.Get(name)
}

// DomainSize returns the box extents along x, y and z.
func (s *Simulation) DomainSize() [3]float64 {
	return s.Lxyz
}

// DetectStarted reports whether the run directory contains a time series.
func DetectStarted(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, TimeSeriesFile))
	return err == nil && !info.IsDir()
}

// IDGenerator produces simulation IDs for manifest entries without one.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 simulation IDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined IDs in order, then falls back to
// UUIDv7 once they run out. Used for deterministic tests.
//
// Thread-safety: FixedGenerator is safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		return UUIDv7Generator{}.Generate()
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
