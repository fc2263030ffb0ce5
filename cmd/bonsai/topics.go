package bonsai

import (
	"embed"

	"github.com/arthur-debert/bonsai/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics replaces cobra's help command with one that also serves the
// embedded topics. Markdown is rendered with glamour on a terminal.
func initTopics(rootCmd *cobra.Command) {
	renderer := topics.NewPlainGlamourRenderer()
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	if err := topics.InitializeWithOptions(rootCmd, topicFiles, "topics", topics.Options{
		Renderer: renderer,
	}); err != nil {
		// Topics are an extra; commands still work without them
		rootCmd.PrintErrf("Warning: could not load help topics: %v\n", err)
	}
}
