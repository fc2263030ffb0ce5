// Package types defines the core data types shared across bonsai:
// the in-memory TreeNode produced by a traversal and the FS abstraction
// every component reads the filesystem through.
package types
