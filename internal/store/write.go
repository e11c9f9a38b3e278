package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/simgroup/internal/sim"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WriteSimulation upserts a simulation by name.
// A new name gets the next seq; an existing name keeps its id and seq and
// has every other column replaced.
func (s *Store) WriteSimulation(ctx context.Context, sm *sim.Simulation, collection string) error {
	return writeSimulation(ctx, s.db, sm, collection)
}

// WriteCollection upserts every simulation of a collection in one
// transaction, in collection order. Returns the number of rows written.
func (s *Store) WriteCollection(ctx context.Context, c *sim.Collection) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write collection: begin: %w", err)
	}
	defer tx.Rollback()

	for _, sm := range c.Simulations {
		if err := writeSimulation(ctx, tx, sm, c.Name); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write collection: commit: %w", err)
	}
	return len(c.Simulations), nil
}

// DeleteSimulation removes a simulation by name.
// Returns false if no such simulation exists.
func (s *Store) DeleteSimulation(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM simulations WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("delete simulation %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete simulation %q: %w", name, err)
	}
	return n > 0, nil
}

func writeSimulation(ctx context.Context, db execer, sm *sim.Simulation, collection string) error {
	if sm.Name == "" {
		return fmt.Errorf("write simulation: name is required")
	}
	if sm.ID == "" {
		return fmt.Errorf("write simulation %q: id is required", sm.Name)
	}

	paramsJSON, err := marshalParams(sm.Params)
	if err != nil {
		return fmt.Errorf("write simulation %q: %w", sm.Name, err)
	}
	lxyzJSON, err := marshalLxyz(sm.Lxyz)
	if err != nil {
		return fmt.Errorf("write simulation %q: %w", sm.Name, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO simulations (id, name, path, started, lxyz, params, collection, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM simulations))
		ON CONFLICT(name) DO UPDATE SET
			path       = excluded.path,
			started    = excluded.started,
			lxyz       = excluded.lxyz,
			params     = excluded.params,
			collection = excluded.collection
	`,
		sm.ID,
		sm.Name,
		sm.Path,
		sm.HasStarted,
		lxyzJSON,
		paramsJSON,
		collection,
	)
	if err != nil {
		return fmt.Errorf("write simulation %q: %w", sm.Name, err)
	}
	return nil
}
