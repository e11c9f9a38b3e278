package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs generates predictable simulation IDs for tests:
// 00000000-0000-0000-0000-000000000001, ...000002, and so on.
//
// It satisfies sim.IDGenerator. Unlike sim.FixedGenerator it never runs out
// and can be reset, so the same manifest loads to identical IDs every run.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialIDs struct {
	mu  sync.Mutex
	seq int64
}

// NewSequentialIDs creates a generator whose first ID ends in 1.
func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{}
}

// Generate returns the next ID.
func (g *SequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return FormatID(g.seq)
}

// Current returns how many IDs have been generated.
func (g *SequentialIDs) Current() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}

// Reset restarts the sequence. The next Generate returns FormatID(1).
func (g *SequentialIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}

// FormatID returns the n-th ID in UUID layout.
func FormatID(n int64) string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
}
