package group

import (
	"log/slog"

	"github.com/roach88/simgroup/internal/natsort"
	"github.com/roach88/simgroup/internal/param"
)

// Record is a simulation result that can be grouped.
type Record interface {
	// Started reports whether the simulation has begun producing output.
	Started() bool

	// Value looks up a named attribute. ok is false when the record does not
	// carry the attribute.
	Value(name string) (v param.Value, ok bool)

	// DomainSize returns the box extents along x, y and z.
	DomainSize() [3]float64
}

// Options controls filtering and ordering.
type Options struct {
	// Sort orders groups by natural order of their keys. When false, groups
	// keep first-encounter order.
	Sort bool

	// OnlyStarted drops records that have not started before any grouping
	// decision is made.
	OnlyStarted bool

	// Logger receives one diagnostic line per failure. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns sorted grouping over all records.
func DefaultOptions() Options {
	return Options{Sort: true}
}

// DomainSizeNames are the attribute names answered from the domain-size
// vector when a record has no attribute of that name.
var DomainSizeNames = map[string]bool{
	"Lx": true,
	"Ly": true,
	"Lz": true,
}

// Group buckets records by the value of groupBy.
//
// On failure it returns a *Error (see the Err* sentinels) and logs one line
// through opts.Logger. The returned Groups is never partially filled.
func Group[R Record](records []R, groupBy string, opts Options) (*Groups[R], error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g, err := group(records, groupBy, opts)
	if err != nil {
		logger.Warn("cannot group simulations",
			"code", string(err.Code),
			"by", groupBy,
			"records", len(records),
			"error", err.Message,
		)
		return nil, err
	}

	logger.Debug("grouped simulations",
		"by", groupBy,
		"strategy", g.Strategy.String(),
		"groups", g.Len(),
		"records", g.Size(),
	)
	return g, nil
}

func group[R Record](records []R, groupBy string, opts Options) (*Groups[R], *Error) {
	if opts.OnlyStarted {
		records = startedOnly(records)
	}
	if len(records) == 0 {
		return nil, newEmptyInputError(groupBy, opts.OnlyStarted)
	}

	keyOf, strategy, gerr := chooseStrategy(records[0], groupBy)
	if gerr != nil {
		return nil, gerr
	}

	g := newGroups[R](groupBy, strategy)
	for i, rec := range records {
		key, ok := keyOf(rec)
		if !ok {
			return nil, newInconsistentAttributeError(groupBy, i)
		}
		g.add(key, rec)
	}

	if opts.Sort {
		natsort.Strings(g.keys)
	}
	return g, nil
}

// chooseStrategy probes the first record and returns the key function for
// the whole input.
func chooseStrategy[R Record](first R, groupBy string) (func(R) (string, bool), Strategy, *Error) {
	if _, ok := first.Value(groupBy); ok {
		return func(rec R) (string, bool) {
			v, ok := rec.Value(groupBy)
			if !ok {
				return "", false
			}
			return param.Format(v), true
		}, StrategyAttribute, nil
	}

	if DomainSizeNames[groupBy] {
		// Always the x extent, whichever axis was named.
		return func(rec R) (string, bool) {
			return param.FormatFloat(rec.DomainSize()[0]), true
		}, StrategyDomainSize, nil
	}

	return nil, 0, newNoMatchingKeyError(groupBy)
}

func startedOnly[R Record](records []R) []R {
	out := make([]R, 0, len(records))
	for _, rec := range records {
		if rec.Started() {
			out = append(out, rec)
		}
	}
	return out
}
