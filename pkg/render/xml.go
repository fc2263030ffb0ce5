package render

import (
	"bytes"
	"strconv"

	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/beevik/etree"
)

// XMLRenderer writes the tree as nested <dir> and <file> elements
type XMLRenderer struct{}

func (r *XMLRenderer) Render(root *types.TreeNode) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	tree := doc.CreateElement("tree")
	appendNode(tree, root)

	doc.Indent(2)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode XML")
	}
	return buf.Bytes(), nil
}

func appendNode(parent *etree.Element, node *types.TreeNode) {
	tag := "file"
	if node.IsDir {
		tag = "dir"
	}

	el := parent.CreateElement(tag)
	el.CreateAttr("name", node.Name)
	el.CreateAttr("path", node.Path)
	if !node.IsDir {
		el.CreateAttr("size", strconv.FormatInt(node.Size, 10))
	}

	for _, c := range node.Children {
		appendNode(el, c)
	}
}
