// Package rules discovers and parses hierarchical ignore rule files.
//
// A Loader looks for a rule file (".gitignore" by default) in the traversal
// root and in every ancestor directory up to the filesystem root. Each file
// is parsed line by line:
//
//   - surrounding whitespace is stripped
//   - blank lines and lines starting with `#` are skipped
//   - `!pattern` records an override rule (one `!` removed)
//   - anything else records an ignore rule verbatim
//
// All discovered files are merged into one RuleSet with no per-directory
// scoping: a rule from a nested file applies to the whole traversal exactly
// like a rule from the root file. Unreadable files are skipped silently.
package rules
