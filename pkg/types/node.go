package types

import "strings"

// TreeNode is one filesystem entry in a built tree.
//
// Nodes are created once during a single traversal and never mutated
// afterwards. A node exclusively owns its children.
type TreeNode struct {
	// Path is the absolute path of the entry
	Path string

	// Name is the base name shown to the user
	Name string

	// IsDir reports whether the entry is a directory (symlinks are followed)
	IsDir bool

	// Size is the byte length for files, 0 for directories and unreadable files
	Size int64

	// Children holds the visible entries of a directory, directories first
	Children []*TreeNode
}

// Child returns the direct child with the given name, or nil.
func (n *TreeNode) Child(name string) *TreeNode {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Lookup follows a slash separated path of names below n.
func (n *TreeNode) Lookup(rel string) *TreeNode {
	cur := n
	for _, part := range strings.Split(rel, "/") {
		if part == "" {
			continue
		}
		cur = cur.Child(part)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// ChildNames returns the names of the direct children in order.
func (n *TreeNode) ChildNames() []string {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	return names
}

// Walk visits n and every descendant depth first, parents before children.
// Returning false from fn stops the descent below that node.
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *TreeNode) walk(fn func(node *TreeNode, depth int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of directories and files below n, excluding n.
func (n *TreeNode) Count() (dirs, files int) {
	n.Walk(func(node *TreeNode, depth int) bool {
		if depth == 0 {
			return true
		}
		if node.IsDir {
			dirs++
		} else {
			files++
		}
		return true
	})
	return dirs, files
}
