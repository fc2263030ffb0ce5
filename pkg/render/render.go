package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/style"
	"github.com/arthur-debert/bonsai/pkg/types"
)

// Format names an output format
type Format string

const (
	FormatTree     Format = "tree"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatXML      Format = "xml"
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format in display order
var Formats = []Format{FormatTree, FormatJSON, FormatYAML, FormatXML, FormatMarkdown}

// ParseFormat parses a format name, case-insensitively. An empty name
// selects the tree format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tree", "text":
		return FormatTree, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// Options control decoration of rendered entries
type Options struct {
	// Icons prefixes names with a file type icon
	Icons bool

	// Size appends human readable sizes to files
	Size bool

	// Palette colours the output; nil renders plain text
	Palette *style.Palette
}

func (o Options) palette() *style.Palette {
	if o.Palette == nil {
		return style.NewPalette(io.Discard, false)
	}
	return o.Palette
}

// Renderer converts a tree into bytes
type Renderer interface {
	Render(root *types.TreeNode) ([]byte, error)
}

// New returns the renderer for format
func New(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatTree:
		return &TextRenderer{opts: opts}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	case FormatXML:
		return &XMLRenderer{}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{opts: opts}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format).
			WithDetail("format", string(format))
	}
}

// Render renders root in the given format
func Render(root *types.TreeNode, format Format, opts Options) ([]byte, error) {
	if root == nil {
		return nil, errors.New(errors.ErrRender, "nothing to render")
	}

	r, err := New(format, opts)
	if err != nil {
		return nil, err
	}
	return r.Render(root)
}

// HumanSize formats a byte count with 1024-based units and one decimal
func HumanSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1fPB", value)
}
