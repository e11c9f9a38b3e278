package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/roach88/simgroup/internal/sim"
)

// Filter narrows ReadSimulations. The zero value matches everything.
type Filter struct {
	OnlyStarted bool
	NamePrefix  string
	Collection  string
}

const selectSimulation = `
	SELECT id, name, path, started, lxyz, params
	FROM simulations`

// ReadSimulations returns catalog entries matching f.
// Results are ordered deterministically: ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ReadSimulations(ctx context.Context, f Filter) ([]*sim.Simulation, error) {
	var (
		where []string
		args  []any
	)
	if f.OnlyStarted {
		where = append(where, "started = 1")
	}
	if f.NamePrefix != "" {
		where = append(where, "instr(name, ?) = 1")
		args = append(args, f.NamePrefix)
	}
	if f.Collection != "" {
		where = append(where, "collection = ?")
		args = append(args, f.Collection)
	}

	query := selectSimulation
	if len(where) > 0 {
		query += "\n\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\tORDER BY seq ASC, id COLLATE BINARY ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query simulations: %w", err)
	}
	defer rows.Close()

	sims := []*sim.Simulation{}
	for rows.Next() {
		sm, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		sims = append(sims, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate simulations: %w", err)
	}

	return sims, nil
}

// ReadSimulation retrieves a single simulation by name.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadSimulation(ctx context.Context, name string) (*sim.Simulation, error) {
	row := s.db.QueryRowContext(ctx, selectSimulation+"\n\tWHERE name = ?", name)
	return scanSimulation(row)
}

// ReadCollection loads one imported collection back as a sim.Collection.
func (s *Store) ReadCollection(ctx context.Context, name string) (*sim.Collection, error) {
	sims, err := s.ReadSimulations(ctx, Filter{Collection: name})
	if err != nil {
		return nil, err
	}
	return &sim.Collection{Name: name, Simulations: sims}, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSimulation(row rowScanner) (*sim.Simulation, error) {
	var (
		sm         sim.Simulation
		started    int
		lxyzJSON   string
		paramsJSON string
	)
	if err := row.Scan(&sm.ID, &sm.Name, &sm.Path, &started, &lxyzJSON, &paramsJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan simulation: %w", err)
	}
	sm.HasStarted = started != 0

	lxyz, err := unmarshalLxyz(lxyzJSON)
	if err != nil {
		return nil, fmt.Errorf("simulation %q: %w", sm.Name, err)
	}
	sm.Lxyz = lxyz

	params, err := unmarshalParams(paramsJSON)
	if err != nil {
		return nil, fmt.Errorf("simulation %q: %w", sm.Name, err)
	}
	sm.Params = params

	return &sm, nil
}
