package matcher

import (
	"path"
	"strings"
)

const doubleStar = "**"

// Match reports whether relPath matches pattern. relPath is slash separated
// and relative to the traversal root; isDir tells whether it names a
// directory.
func Match(relPath, pattern string, isDir bool) bool {
	if strings.HasSuffix(pattern, "/") {
		if !isDir {
			return false
		}
		pattern = pattern[:len(pattern)-1]
	}

	if strings.HasPrefix(pattern, "/") {
		return matchPath(relPath, pattern[1:])
	}

	if strings.Contains(pattern, "/") {
		return matchPath(relPath, pattern)
	}

	for _, segment := range strings.Split(relPath, "/") {
		if glob(pattern, segment) {
			return true
		}
	}
	return false
}

// Validate returns path.ErrBadPattern if any segment of pattern is malformed.
func Validate(pattern string) error {
	for _, segment := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if segment == doubleStar {
			continue
		}
		if _, err := path.Match(normalizeClasses(segment), ""); err != nil {
			return err
		}
	}
	return nil
}

// matchPath matches the whole relative path against pattern, one segment
// at a time.
func matchPath(relPath, pattern string) bool {
	return matchSegments(strings.Split(relPath, "/"), strings.Split(pattern, "/"))
}

func matchSegments(pathSegs, patSegs []string) bool {
	for len(patSegs) > 0 {
		if patSegs[0] == doubleStar {
			rest := patSegs[1:]
			// A trailing ** needs at least one segment to swallow.
			if len(rest) == 0 {
				return len(pathSegs) > 0
			}
			for i := 0; i <= len(pathSegs); i++ {
				if matchSegments(pathSegs[i:], rest) {
					return true
				}
			}
			return false
		}
		if len(pathSegs) == 0 || !glob(patSegs[0], pathSegs[0]) {
			return false
		}
		pathSegs = pathSegs[1:]
		patSegs = patSegs[1:]
	}
	return len(pathSegs) == 0
}

// glob matches a single path segment with shell wildcards.
func glob(pattern, name string) bool {
	matched, err := path.Match(normalizeClasses(pattern), name)
	return err == nil && matched
}

// normalizeClasses rewrites a pattern into the syntax path.Match expects:
// the shell negated class `[!...]` becomes `[^...]`, and a `[` with no
// closing `]` is escaped so it matches itself, as fnmatch does.
func normalizeClasses(pattern string) string {
	if !strings.Contains(pattern, "[") {
		return pattern
	}
	var b strings.Builder
	b.Grow(len(pattern) + 2)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			b.WriteByte(c)
			i++
			b.WriteByte(pattern[i])
			continue
		}
		if c != '[' {
			b.WriteByte(c)
			continue
		}
		if !classClosed(pattern[i+1:]) {
			b.WriteString(`\[`)
			continue
		}
		b.WriteByte(c)
		if i+1 < len(pattern) && pattern[i+1] == '!' {
			b.WriteByte('^')
			i++
		}
	}
	return b.String()
}

// classClosed reports whether the text following a `[` closes the class.
// The first class character is taken literally, so `[]` alone is unclosed.
func classClosed(rest string) bool {
	if strings.HasPrefix(rest, "!") || strings.HasPrefix(rest, "^") {
		rest = rest[1:]
	}
	if rest == "" {
		return false
	}
	return strings.Contains(rest[1:], "]")
}
