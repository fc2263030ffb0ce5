package filter

import (
	"strings"

	"github.com/arthur-debert/bonsai/pkg/config"
	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/rules"
	"github.com/rs/zerolog"
)

// Reason explains a visibility decision
type Reason string

const (
	ReasonHidden   Reason = "hidden"
	ReasonOverride Reason = "override"
	ReasonIgnored  Reason = "ignored"
	ReasonDefault  Reason = "default"
)

// Decision is the outcome of evaluating one entry
type Decision struct {
	Hidden bool
	Reason Reason

	// Rule is the deciding rule for override and ignored decisions
	Rule *rules.Rule
}

// Policy is an immutable visibility decision procedure
type Policy struct {
	ignores    []rules.Rule
	overrides  []rules.Rule
	showHidden bool
	logger     zerolog.Logger
}

// NewPolicy combines loaded rules with the custom patterns and hidden-file
// setting of cfg. loaded may be nil when rule files are not respected.
func NewPolicy(loaded *rules.RuleSet, cfg *config.Config) *Policy {
	combined := loaded.Clone()
	combined.AddIgnore(cfg.Filter.Ignore...)
	combined.AddOverride(cfg.Filter.Include...)

	p := &Policy{
		ignores:    combined.Ignores(),
		overrides:  combined.Overrides(),
		showHidden: cfg.Display.ShowHidden,
		logger:     logging.GetLogger("filter.policy"),
	}

	for _, r := range rules.Invalid(combined) {
		p.logger.Warn().Str("pattern", r.String()).Msg("Malformed pattern never matches")
	}

	p.logger.Debug().
		Int("ignoreCount", len(p.ignores)).
		Int("overrideCount", len(p.overrides)).
		Bool("showHidden", p.showHidden).
		Msg("Filter policy ready")

	return p
}

// ShouldHide reports whether the entry called name, at relPath below the
// traversal root, is left out of the tree
func (p *Policy) ShouldHide(name, relPath string, isDir bool) bool {
	return p.Explain(name, relPath, isDir).Hidden
}

// Explain evaluates an entry and reports why it is hidden or shown
func (p *Policy) Explain(name, relPath string, isDir bool) Decision {
	if !p.showHidden && strings.HasPrefix(name, ".") {
		return Decision{Hidden: true, Reason: ReasonHidden}
	}

	for i := range p.overrides {
		if p.overrides[i].Matches(relPath, isDir) {
			p.trace(relPath, "override", p.overrides[i].Pattern)
			return Decision{Hidden: false, Reason: ReasonOverride, Rule: &p.overrides[i]}
		}
	}

	for i := range p.ignores {
		if p.ignores[i].Matches(relPath, isDir) {
			p.trace(relPath, "ignored", p.ignores[i].Pattern)
			return Decision{Hidden: true, Reason: ReasonIgnored, Rule: &p.ignores[i]}
		}
	}

	return Decision{Hidden: false, Reason: ReasonDefault}
}

// Ignores returns the combined ignore rules
func (p *Policy) Ignores() []rules.Rule {
	return append([]rules.Rule(nil), p.ignores...)
}

// Overrides returns the combined override rules
func (p *Policy) Overrides() []rules.Rule {
	return append([]rules.Rule(nil), p.overrides...)
}

func (p *Policy) trace(relPath, reason, pattern string) {
	p.logger.Trace().
		Str("path", relPath).
		Str("reason", reason).
		Str("pattern", pattern).
		Msg("Rule matched")
}
