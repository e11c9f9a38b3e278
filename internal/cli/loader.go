package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/simgroup/internal/sim"
	"github.com/roach88/simgroup/internal/store"
)

// source names where a command reads simulations from. Exactly one of
// Manifest and DB is set after resolveSource.
type source struct {
	Manifest string
	DB       string
}

// resolveSource picks the input from a positional manifest argument, the
// --db flag, or the configured catalog, in that order of precedence.
func resolveSource(args []string, dbFlag, dbConfig string) (source, error) {
	var manifest string
	if len(args) > 0 {
		manifest = args[0]
	}

	switch {
	case manifest != "" && dbFlag != "":
		return source{}, usageError("pass either a manifest or --db, not both")
	case manifest != "":
		return source{Manifest: manifest}, nil
	case dbFlag != "":
		return source{DB: dbFlag}, nil
	case dbConfig != "":
		return source{DB: dbConfig}, nil
	default:
		return source{}, usageError("a manifest path or --db is required")
	}
}

// loadCollection reads simulations from src. For catalogs, f narrows the
// query; manifests are returned whole.
func loadCollection(ctx context.Context, src source, f store.Filter) (*sim.Collection, error) {
	if src.Manifest != "" {
		return sim.LoadManifest(src.Manifest)
	}

	st, err := openCatalog(src.DB, false)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	sims, err := st.ReadSimulations(ctx, f)
	if err != nil {
		return nil, &commandError{Code: ErrCodeDatabase, Message: "read catalog", Err: err}
	}

	name := f.Collection
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(src.DB), filepath.Ext(src.DB))
	}
	return &sim.Collection{Name: name, Source: src.DB, Simulations: sims}, nil
}

// openCatalog opens the SQLite catalog at path. Unless create is set, the
// file must already exist.
func openCatalog(path string, create bool) (*store.Store, error) {
	if !create {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, &commandError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog not found: %s", path)}
			}
			return nil, &commandError{Code: ErrCodeDatabase, Message: "stat catalog", Err: err}
		}
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, &commandError{Code: ErrCodeDatabase, Message: "open catalog", Err: err}
	}
	return st, nil
}
