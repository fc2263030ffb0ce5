// Package filter decides which filesystem entries are visible in a tree.
//
// A Policy is built once from the loaded rule set, the user's custom
// ignore and include patterns and the show-hidden setting. Its decision,
// first applicable branch wins:
//
//  1. hidden: the name starts with "." and show-hidden is off
//  2. override: an override (include) rule matches, so the entry is shown
//  3. ignored: an ignore rule matches
//  4. default: the entry is shown
//
// Override rules cannot un-hide dotfiles; only show-hidden can.
package filter
