package rules

import (
	"sort"
	"strings"

	"github.com/arthur-debert/bonsai/pkg/matcher"
)

// Rule is a single parsed ignore or override pattern
type Rule struct {
	// Pattern is the rule text, without the leading ! of override rules
	Pattern string

	// Override marks a negated rule that un-hides matching entries
	Override bool
}

// DirOnly reports whether the rule only applies to directories
func (r Rule) DirOnly() bool {
	return strings.HasSuffix(r.Pattern, "/")
}

// Anchored reports whether the rule is anchored at the traversal root
func (r Rule) Anchored() bool {
	return strings.HasPrefix(r.Pattern, "/")
}

// Matches reports whether relPath matches the rule's pattern
func (r Rule) Matches(relPath string, isDir bool) bool {
	return matcher.Match(relPath, r.Pattern, isDir)
}

// String returns the rule as it would appear in a rule file
func (r Rule) String() string {
	if r.Override {
		return "!" + r.Pattern
	}
	return r.Pattern
}

// RuleSet holds deduplicated ignore and override rules.
//
// Matching is evaluated against the whole set, so the order rules were added
// in carries no meaning. Accessors return rules sorted by pattern.
type RuleSet struct {
	ignore   map[string]struct{}
	override map[string]struct{}
}

// NewRuleSet creates an empty rule set
func NewRuleSet() *RuleSet {
	return &RuleSet{
		ignore:   make(map[string]struct{}),
		override: make(map[string]struct{}),
	}
}

// Add records a rule according to its polarity
func (s *RuleSet) Add(r Rule) {
	if r.Override {
		s.override[r.Pattern] = struct{}{}
		return
	}
	s.ignore[r.Pattern] = struct{}{}
}

// AddIgnore records ignore patterns verbatim
func (s *RuleSet) AddIgnore(patterns ...string) {
	for _, p := range patterns {
		s.Add(Rule{Pattern: p})
	}
}

// AddOverride records override patterns verbatim (without a leading !)
func (s *RuleSet) AddOverride(patterns ...string) {
	for _, p := range patterns {
		s.Add(Rule{Pattern: p, Override: true})
	}
}

// Merge adds every rule of other to s
func (s *RuleSet) Merge(other *RuleSet) {
	if other == nil {
		return
	}
	for p := range other.ignore {
		s.ignore[p] = struct{}{}
	}
	for p := range other.override {
		s.override[p] = struct{}{}
	}
}

// Clone returns an independent copy of the set. A nil set clones to an
// empty one.
func (s *RuleSet) Clone() *RuleSet {
	c := NewRuleSet()
	c.Merge(s)
	return c
}

// Ignores returns the ignore rules sorted by pattern
func (s *RuleSet) Ignores() []Rule {
	return sortedRules(s.ignore, false)
}

// Overrides returns the override rules sorted by pattern
func (s *RuleSet) Overrides() []Rule {
	return sortedRules(s.override, true)
}

// Len returns the total number of distinct rules
func (s *RuleSet) Len() int {
	return len(s.ignore) + len(s.override)
}

func sortedRules(set map[string]struct{}, override bool) []Rule {
	patterns := make([]string, 0, len(set))
	for p := range set {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)

	out := make([]Rule, len(patterns))
	for i, p := range patterns {
		out[i] = Rule{Pattern: p, Override: override}
	}
	return out
}
