package tree

import (
	"fmt"
	"strings"
)

// Render serializes sibling nodes joined by newlines. Folders whose body
// renders empty, whether truly empty, fully ignored or depth-truncated,
// collapse to a self-closing tag.
func Render(nodes []*Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, renderNode(n))
	}
	return strings.Join(parts, "\n")
}

func renderNode(n *Node) string {
	if !n.Dir {
		return fmt.Sprintf("<file name='%s'/>", n.Name)
	}

	body := Render(n.Children)
	if strings.TrimSpace(body) == "" {
		return fmt.Sprintf("<folder name='%s'/>", n.Name)
	}

	return fmt.Sprintf("<folder name='%s'>\n%s</folder>", n.Name, body)
}
