package tree

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/bonsai/pkg/config"
	"github.com/arthur-debert/bonsai/pkg/filter"
	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/paths"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/rs/zerolog"
)

// Builder constructs TreeNodes for one traversal root
type Builder struct {
	fs       types.FS
	root     string
	maxDepth int
	policy   *filter.Policy
	logger   zerolog.Logger
}

// NewBuilder creates a builder for cfg.Root
func NewBuilder(fsys types.FS, cfg *config.Config, policy *filter.Policy) *Builder {
	return &Builder{
		fs:       fsys,
		root:     filepath.Clean(cfg.Root),
		maxDepth: cfg.Traversal.MaxDepth,
		policy:   policy,
		logger:   logging.GetLogger("tree.builder"),
	}
}

// Root returns the traversal root
func (b *Builder) Root() string {
	return b.root
}

// BuildRoot validates the traversal root and builds the whole tree
func (b *Builder) BuildRoot() (*types.TreeNode, error) {
	if err := paths.ValidateRoot(b.fs, b.root); err != nil {
		return nil, err
	}

	defer logging.LogOperationStart(b.logger, "build tree")()

	node := b.Build(b.root, 0)
	if node != nil {
		dirs, files := node.Count()
		b.logger.Debug().
			Str("root", b.root).
			Int("dirs", dirs).
			Int("files", files).
			Msg("Tree built")
	}
	return node, nil
}

// Build returns the node for path at the given depth below the root, or nil
// when path does not exist or lies beyond the maximum depth
func (b *Builder) Build(path string, depth int) *types.TreeNode {
	info, err := b.fs.Stat(path)
	if err != nil {
		b.logger.Debug().Err(err).Str("path", path).Msg("Skipping entry that cannot be stat'd")
		return nil
	}

	if b.maxDepth >= 0 && depth > b.maxDepth {
		return nil
	}

	node := &types.TreeNode{
		Path:  path,
		Name:  filepath.Base(path),
		IsDir: info.IsDir(),
	}
	if !node.IsDir {
		node.Size = info.Size()
		return node
	}

	if depth > 0 && b.isLink(path) {
		b.logger.Debug().Str("path", path).Msg("Not descending into symlinked directory")
		return node
	}

	entries, err := b.fs.ReadDir(path)
	if err != nil {
		b.logger.Debug().Err(err).Str("path", path).Msg("Cannot read directory")
		return node
	}

	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())

		// Entry types from ReadDir do not follow symlinks
		childIsDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			if ci, err := b.fs.Stat(childPath); err == nil {
				childIsDir = ci.IsDir()
			}
		}

		rel, ok := paths.RelativeTo(b.root, childPath)
		if !ok {
			rel = entry.Name()
		}

		if b.policy.ShouldHide(entry.Name(), rel, childIsDir) {
			continue
		}

		if child := b.Build(childPath, depth+1); child != nil {
			node.Children = append(node.Children, child)
		}
	}

	SortChildren(node.Children)
	return node
}

func (b *Builder) isLink(path string) bool {
	info, err := b.fs.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

// SortChildren orders nodes directories first, then by lowercased name,
// then by exact name so that the order is total
func SortChildren(nodes []*types.TreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, c := nodes[i], nodes[j]
		if a.IsDir != c.IsDir {
			return a.IsDir
		}
		la, lc := strings.ToLower(a.Name), strings.ToLower(c.Name)
		if la != lc {
			return la < lc
		}
		return a.Name < c.Name
	})
}
