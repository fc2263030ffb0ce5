package rules

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/matcher"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultFileName is the conventional rule file name
const DefaultFileName = ".gitignore"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadResult is the merged outcome of loading every discovered rule file
type LoadResult struct {
	// Rules merges the rules of every readable file
	Rules *RuleSet

	// Files lists the discovered rule files, nearest first
	Files []string
}

// Loader discovers and parses hierarchical rule files
type Loader struct {
	fs       types.FS
	fileName string
	logger   zerolog.Logger
}

// NewLoader creates a loader reading rule files named fileName through fs.
// An empty fileName selects DefaultFileName.
func NewLoader(fs types.FS, fileName string) *Loader {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Loader{
		fs:       fs,
		fileName: fileName,
		logger:   logging.GetLogger("rules.loader"),
	}
}

// Load discovers every rule file from start up to the filesystem root and
// merges their rules. Files that cannot be read contribute nothing.
func (l *Loader) Load(start string) *LoadResult {
	result := &LoadResult{
		Rules: NewRuleSet(),
		Files: l.Discover(start),
	}

	for _, path := range result.Files {
		set, err := l.ParseFile(path)
		if err != nil {
			l.logger.Debug().
				Err(err).
				Str("file", path).
				Msg("Skipping unreadable rule file")
			continue
		}
		l.logger.Debug().
			Str("file", path).
			Int("ruleCount", set.Len()).
			Msg("Loaded rule file")
		result.Rules.Merge(set)
	}

	l.logger.Debug().
		Int("fileCount", len(result.Files)).
		Int("ignoreCount", len(result.Rules.Ignores())).
		Int("overrideCount", len(result.Rules.Overrides())).
		Msg("Rule loading complete")

	return result
}

// Discover returns the rule files present in start and each of its
// ancestors, nearest first.
func (l *Loader) Discover(start string) []string {
	var files []string

	dir := filepath.Clean(start)
	for {
		candidate := filepath.Join(dir, l.fileName)
		if _, err := l.fs.Stat(candidate); err == nil {
			files = append(files, candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return files
}

// ParseFile reads and parses one rule file
func (l *Loader) ParseFile(path string) (*RuleSet, error) {
	content, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

// Parse parses rule file content. Content that is not valid UTF-8 is
// rejected as a whole.
func Parse(content []byte) (*RuleSet, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("rule file is not valid UTF-8")
	}

	set := NewRuleSet()
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	for scanner.Scan() {
		if r, ok := ParseLine(scanner.Text()); ok {
			set.Add(r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return set, nil
}

// ParseLine parses a single rule file line. Blank lines and comments
// report false.
func ParseLine(line string) (Rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false
	}

	if strings.HasPrefix(line, "!") {
		return Rule{Pattern: line[1:], Override: true}, true
	}
	return Rule{Pattern: line}, true
}

// Invalid returns the patterns of set that can never match because they
// are malformed.
func Invalid(set *RuleSet) []Rule {
	var bad []Rule
	for _, r := range append(set.Ignores(), set.Overrides()...) {
		if matcher.Validate(r.Pattern) != nil {
			bad = append(bad, r)
		}
	}
	return bad
}
