package tree

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alucardeht/dirdoc/internal/ignore"
)

const DefaultMaxDepth = 10

// Node is one entry in the directory tree. A file node has no children;
// a folder node carries its children in directory-listing order.
type Node struct {
	Name     string
	Dir      bool
	Children []*Node
}

// Builder walks a directory tree into Nodes, skipping ignored entries
// and truncating silently below MaxDepth.
type Builder struct {
	MaxDepth int
	Ignore   *ignore.Matcher
}

func NewBuilder(maxDepth int, matcher *ignore.Matcher) *Builder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Builder{
		MaxDepth: maxDepth,
		Ignore:   matcher,
	}
}

// Build returns the top-level nodes under root. An ignored entry is
// dropped together with its entire subtree; the recursion never
// descends into it.
func (b *Builder) Build(root string) ([]*Node, error) {
	return b.children(root, 0)
}

func (b *Builder) children(dir string, depth int) ([]*Node, error) {
	if depth >= b.MaxDepth {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// A directory we may not list renders as childless. Anything
		// else aborts the build.
		if errors.Is(err, fs.ErrPermission) {
			return nil, nil
		}
		return nil, err
	}

	var nodes []*Node
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if b.Ignore != nil && b.Ignore.Match(path) {
			continue
		}

		if entry.IsDir() {
			children, err := b.children(path, depth+1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &Node{Name: entry.Name(), Dir: true, Children: children})
			continue
		}

		nodes = append(nodes, &Node{Name: entry.Name()})
	}

	return nodes, nil
}
