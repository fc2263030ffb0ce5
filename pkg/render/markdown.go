package render

import (
	"strings"

	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/style"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/charmbracelet/glamour"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

// MarkdownRenderer writes the tree as a nested bullet list
type MarkdownRenderer struct {
	opts Options
}

func (r *MarkdownRenderer) Render(root *types.TreeNode) ([]byte, error) {
	source := r.Source(root)

	if !r.opts.palette().Enabled() {
		return []byte(source), nil
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to create markdown renderer")
	}

	out, err := renderer.Render(source)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to render markdown")
	}
	return []byte(out), nil
}

// Source returns the undecorated Markdown text
func (r *MarkdownRenderer) Source(root *types.TreeNode) string {
	var b strings.Builder
	r.writeItem(&b, root, 0)
	return b.String()
}

func (r *MarkdownRenderer) writeItem(b *strings.Builder, node *types.TreeNode, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("- ")
	if r.opts.Icons {
		b.WriteString(style.Icon(node.Name, node.IsDir))
		b.WriteString(" ")
	}

	name := markdownEscaper.Replace(node.Name)
	if node.IsDir {
		b.WriteString("**" + name + "/**")
	} else {
		b.WriteString(name)
		if r.opts.Size {
			b.WriteString(" (" + HumanSize(node.Size) + ")")
		}
	}
	b.WriteString("\n")

	for _, c := range node.Children {
		r.writeItem(b, c, depth+1)
	}
}
