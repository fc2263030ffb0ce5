package types

// TreeResult holds the result of rendering a tree
type TreeResult struct {
	// Root is the built tree
	Root *TreeNode `json:"root"`

	// Output is the rendered tree in the requested format
	Output []byte `json:"-"`

	// RuleFiles lists the rule files that contributed rules, nearest first
	RuleFiles []string `json:"ruleFiles"`

	// Dirs and Files count the entries below the root
	Dirs  int `json:"dirs"`
	Files int `json:"files"`
}

// CheckResult holds the result of the 'check' command
type CheckResult struct {
	Root    string       `json:"root"`
	Entries []CheckEntry `json:"entries"`
}

// CheckEntry explains the visibility of a single path
type CheckEntry struct {
	// Input is the path as given by the user
	Input string `json:"input"`

	// Rel is the slash separated path relative to the root
	Rel string `json:"rel"`

	Exists bool `json:"exists"`
	IsDir  bool `json:"isDir"`
	Hidden bool `json:"hidden"`

	// Reason is one of hidden, override, ignored or default
	Reason string `json:"reason"`

	// Rule is the deciding rule as written in a rule file, if any
	Rule string `json:"rule,omitempty"`

	// Via is the ancestor directory that decided, when not the entry itself
	Via string `json:"via,omitempty"`
}
