// Package matcher decides whether a path relative to the traversal root
// matches a single ignore rule.
//
// # Pattern Conventions
//
// Rules follow the .gitignore dialect bonsai understands:
//
//   - `build/` - Directory-only rule (trailing slash)
//   - `/config.json` - Anchored to the traversal root (leading slash)
//   - `src/*.py` - Path pattern, matched against the whole relative path
//   - `node_modules` - Bare name, matched against every path segment
//   - `src/**/*.py` - `**` spans zero or more directories in path patterns
//
// The checks are applied in exactly that order: directory suffix, then
// anchor, then separator. Wildcards are `*`, `?` and `[...]` (with `[!...]`
// accepted for negation); `*` never crosses a `/`. Matching is case
// sensitive and a malformed pattern never matches.
package matcher
