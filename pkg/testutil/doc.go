// Package testutil provides utilities for testing bonsai components.
//
// Key components:
//   - TestFS: afero-backed in-memory filesystem implementing types.FS
//   - WithError: per-path, per-operation error injection
//   - WriteTree: declarative directory setup from a path → content map
//
// Usage guidelines:
//   - Core tests (rules, filter, tree) run entirely in memory
//   - All test data should be defined inline, not in external files
//   - Each test should build its own filesystem; nothing is shared
package testutil
