package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bonsai/pkg/errors"
)

// OutputFormats lists the accepted output.format values
var OutputFormats = []string{"tree", "json", "yaml", "xml", "markdown"}

// Config is the complete bonsai configuration.
//
// A Config is built once by Load and must not be modified afterwards;
// components receive it by pointer and only read from it.
type Config struct {
	// Root is the absolute traversal root
	Root string `koanf:"root" toml:"-"`

	Display   DisplayConfig   `koanf:"display" toml:"display"`
	Filter    FilterConfig    `koanf:"filter" toml:"filter"`
	Traversal TraversalConfig `koanf:"traversal" toml:"traversal"`
	Output    OutputConfig    `koanf:"output" toml:"output"`
}

// DisplayConfig holds cosmetic settings
type DisplayConfig struct {
	ShowHidden bool `koanf:"show_hidden" toml:"show_hidden"`
	Icons      bool `koanf:"icons" toml:"icons"`
	Size       bool `koanf:"size" toml:"size"`
	Color      bool `koanf:"color" toml:"color"`
}

// FilterConfig holds rule settings
type FilterConfig struct {
	RespectGitignore bool     `koanf:"respect_gitignore" toml:"respect_gitignore"`
	RuleFile         string   `koanf:"rule_file" toml:"rule_file"`
	Ignore           []string `koanf:"ignore" toml:"ignore"`
	Include          []string `koanf:"include" toml:"include"`
}

// TraversalConfig holds traversal limits
type TraversalConfig struct {
	MaxDepth int `koanf:"max_depth" toml:"max_depth"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
	File   string `koanf:"file" toml:"file"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Color: true},
		Filter: FilterConfig{
			RespectGitignore: true,
			RuleFile:         ".gitignore",
		},
		Traversal: TraversalConfig{MaxDepth: -1},
		Output:    OutputConfig{Format: "tree"},
	}
}

// HasMaxDepth reports whether traversal depth is bounded
func (c *Config) HasMaxDepth() bool {
	return c.Traversal.MaxDepth >= 0
}

// Validate checks values that cannot be expressed by types alone
func (c *Config) Validate() error {
	if !isOutputFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q (expected one of %s)",
			c.Output.Format, strings.Join(OutputFormats, ", ")).
			WithDetail("format", c.Output.Format)
	}

	name := c.Filter.RuleFile
	if name == "" || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrConfigValid, "invalid rule file name %q", name).
			WithDetail("rule_file", name)
	}

	return nil
}

// String returns a one-line summary used in debug logs
func (c *Config) String() string {
	return fmt.Sprintf("root=%s format=%s max_depth=%d hidden=%v gitignore=%v ignore=%d include=%d",
		c.Root, c.Output.Format, c.Traversal.MaxDepth, c.Display.ShowHidden,
		c.Filter.RespectGitignore, len(c.Filter.Ignore), len(c.Filter.Include))
}

func isOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
