// Package tree builds the in-memory tree of visible entries below a root.
//
// The Builder walks depth first, asking a filter.Policy about every child
// and honouring the configured maximum depth. Children are ordered
// directories first, then case-insensitively by name.
//
// Failures below the root are not errors: a missing path yields no node and
// an unreadable directory yields a node without children. Only BuildRoot
// reports errors, and only about the root itself.
package tree
