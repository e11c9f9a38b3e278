// Package store provides a SQLite-backed catalog of simulations.
//
// The catalog lets a user import manifests once and group the accumulated
// runs later without re-reading every manifest. Each simulation row holds
// its parameters and domain size as JSON text.
//
// # Ordering
//
//   - Every row gets a logical seq on first insert; re-imports keep it
//   - All queries use ORDER BY seq ASC, id ASC COLLATE BINARY, so grouping
//     a catalog is as deterministic as grouping the manifests it came from
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
