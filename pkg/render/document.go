package render

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/types"
	"gopkg.in/yaml.v3"
)

// Document is the serialisable form of a TreeNode
type Document struct {
	Name     string      `json:"name" yaml:"name"`
	Path     string      `json:"path" yaml:"path"`
	IsDir    bool        `json:"is_dir" yaml:"is_dir"`
	Size     int64       `json:"size" yaml:"size"`
	Children []*Document `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewDocument converts a tree into its Document form
func NewDocument(node *types.TreeNode) *Document {
	doc := &Document{
		Name:  node.Name,
		Path:  node.Path,
		IsDir: node.IsDir,
		Size:  node.Size,
	}
	for _, c := range node.Children {
		doc.Children = append(doc.Children, NewDocument(c))
	}
	return doc
}

// JSONRenderer writes the Document as indented JSON
type JSONRenderer struct{}

func (r *JSONRenderer) Render(root *types.TreeNode) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(NewDocument(root)); err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode JSON")
	}
	return buf.Bytes(), nil
}

// YAMLRenderer writes the Document as YAML
type YAMLRenderer struct{}

func (r *YAMLRenderer) Render(root *types.TreeNode) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(NewDocument(root)); err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode YAML")
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode YAML")
	}
	return buf.Bytes(), nil
}
