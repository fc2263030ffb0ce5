package render

import (
	"strings"

	"github.com/arthur-debert/bonsai/pkg/style"
	"github.com/arthur-debert/bonsai/pkg/types"
)

const (
	connectorMid  = "├── "
	connectorLast = "└── "
	prefixMid     = "│   "
	prefixLast    = "    "
)

// TextRenderer draws the tree with box-drawing connectors
type TextRenderer struct {
	opts Options
}

func (r *TextRenderer) Render(root *types.TreeNode) ([]byte, error) {
	var b strings.Builder
	palette := r.opts.palette()

	b.WriteString(palette.Paint(r.label(root), root.IsDir))
	b.WriteString("\n")
	r.writeChildren(&b, palette, root, "")

	return []byte(b.String()), nil
}

func (r *TextRenderer) writeChildren(b *strings.Builder, palette *style.Palette, node *types.TreeNode, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1

		connector, next := connectorMid, prefixMid
		if last {
			connector, next = connectorLast, prefixLast
		}

		b.WriteString(prefix)
		b.WriteString(palette.Paint(connector+r.label(child), child.IsDir))
		b.WriteString("\n")

		r.writeChildren(b, palette, child, prefix+next)
	}
}

// label is the decorated display name of a node
func (r *TextRenderer) label(node *types.TreeNode) string {
	name := node.Name
	if node.IsDir {
		name += "/"
	}
	if r.opts.Icons {
		name = style.Icon(node.Name, node.IsDir) + " " + name
	}
	if r.opts.Size && !node.IsDir {
		name += " (" + HumanSize(node.Size) + ")"
	}
	return name
}
