package bonsai

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Elegant directory tree visualization"
	MsgCheckShort      = "Explain why paths are shown or hidden"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgOutputWritten = "Output written to %s"
	MsgCheckLine     = "%-6s  %-8s  %-20s  %s"
	MsgCheckVia      = " (via %s)"
	MsgInterrupted   = "interrupted"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagMaxDepth    = "Maximum depth to recurse into directories (-1 for no limit)"
	MsgFlagShowHidden  = "Show hidden files and directories"
	MsgFlagIcons       = "Show file type icons"
	MsgFlagSize        = "Show file sizes"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagNoGitignore = "Don't respect .gitignore patterns"
	MsgFlagIgnore      = "Additional ignore pattern (repeatable)"
	MsgFlagInclude     = "Force include pattern (repeatable)"
	MsgFlagOutput      = "Output file path (default: stdout)"
	MsgFlagFormat      = "Output format: tree, json, yaml, xml or markdown"
	MsgFlagCheckRoot   = "Directory the paths are relative to"
	MsgFlagTemplate    = "Print the commented default configuration"
	MsgFlagWrite       = "Write the default configuration to .bonsai.toml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
