package group

import (
	"iter"
	"slices"
)

// Strategy identifies how group keys were derived.
type Strategy int

const (
	// StrategyAttribute keys records by a looked-up attribute value.
	StrategyAttribute Strategy = iota + 1

	// StrategyDomainSize keys records by the first domain-size component.
	StrategyDomainSize
)

// String returns a stable name for logs and CLI output.
func (s Strategy) String() string {
	switch s {
	case StrategyAttribute:
		return "attribute"
	case StrategyDomainSize:
		return "domain_size"
	default:
		return "unknown"
	}
}

// Groups is an ordered mapping from group key to the records sharing it.
type Groups[R Record] struct {
	// By is the attribute the records were grouped by.
	By string

	// Strategy records which key derivation was used.
	Strategy Strategy

	keys    []string
	members map[string][]R
}

func newGroups[R Record](by string, strategy Strategy) *Groups[R] {
	return &Groups[R]{
		By:       by,
		Strategy: strategy,
		members:  make(map[string][]R),
	}
}

func (g *Groups[R]) add(key string, rec R) {
	if _, ok := g.members[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.members[key] = append(g.members[key], rec)
}

// Keys returns the group keys in iteration order.
func (g *Groups[R]) Keys() []string {
	return slices.Clone(g.keys)
}

// Get returns the records of one group.
func (g *Groups[R]) Get(key string) ([]R, bool) {
	recs, ok := g.members[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(recs), true
}

// Len returns the number of groups.
func (g *Groups[R]) Len() int {
	return len(g.keys)
}

// Size returns the number of records across all groups.
func (g *Groups[R]) Size() int {
	n := 0
	for _, recs := range g.members {
		n += len(recs)
	}
	return n
}

// All iterates groups in order.
func (g *Groups[R]) All() iter.Seq2[string, []R] {
	return func(yield func(string, []R) bool) {
		for _, k := range g.keys {
			if !yield(k, slices.Clone(g.members[k])) {
				return
			}
		}
	}
}
