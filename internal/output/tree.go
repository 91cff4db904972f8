// Package output renders crawl results as raw console text or as structured
// JSON, XML and YAML documents.
package output

import (
	"fmt"
	"io"

	"github.com/temirov/boundtree/internal/crawler"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

func treeNodeLinePrefix(prefix string, isRoot bool, isLast bool) (string, string) {
	if isRoot {
		return "", ""
	}
	connector := treeBranchConnector
	childPrefix := prefix + treeBranchPadding
	if isLast {
		connector = treeLastConnector
		childPrefix = prefix + treeLastPadding
	}
	return prefix + connector, childPrefix
}

func renderTreeNode(writer io.Writer, node *crawler.Node, prefix string, isRoot bool, isLast bool) {
	linePrefix, childPrefix := treeNodeLinePrefix(prefix, isRoot, isLast)
	fmt.Fprintf(writer, "%s%s\n", linePrefix, node.Name)
	for index, child := range node.Children {
		if child == nil {
			continue
		}
		renderTreeNode(writer, child, childPrefix, false, index == len(node.Children)-1)
	}
}

// WriteTreeRaw renders a crawled tree one line per node. The root line holds
// the full root path; every other line holds the node name behind branch glyphs.
func WriteTreeRaw(writer io.Writer, root *crawler.Node) {
	if root == nil {
		return
	}
	renderTreeNode(writer, root, "", true, true)
}
