package sim

import "slices"

// Collection is a named set of simulations, typically one manifest.
//
// The grouper only accepts a plain slice; Records converts.
type Collection struct {
	Name        string
	Source      string
	Simulations []*Simulation
}

// Records returns the simulations as an ordered slice.
func (c *Collection) Records() []*Simulation {
	return slices.Clone(c.Simulations)
}

// Started returns only the simulations that have started.
func (c *Collection) Started() []*Simulation {
	out := make([]*Simulation, 0, len(c.Simulations))
	for _, s := range c.Simulations {
		if s.Started() {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the simulation with the given name.
func (c *Collection) Find(name string) (*Simulation, bool) {
	for _, s := range c.Simulations {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Len returns the number of simulations.
func (c *Collection) Len() int {
	return len(c.Simulations)
}
