package crawler

import "path/filepath"

// Kind records how the listing collaborator classified an entry.
type Kind int

const (
	// KindDirectory marks the root and every listed subdirectory.
	KindDirectory Kind = iota
	// KindFile marks leaf entries that are never expanded.
	KindFile
)

// String returns the lower-case kind name used in output documents.
func (kind Kind) String() string {
	if kind == KindFile {
		return "file"
	}
	return "directory"
}

// Node is one entry of a crawled tree. The root holds the full root path as
// its name; descendants hold only their own path segment.
type Node struct {
	Name     string
	Kind     Kind
	Children []*Node

	parent *Node
}

func newRootNode(rootPath string) *Node {
	return &Node{Name: rootPath, Kind: KindDirectory}
}

// addChild creates a node and attaches it to the receiver. A node is attached
// exactly once and never reparented.
func (node *Node) addChild(name string, kind Kind) *Node {
	child := &Node{Name: name, Kind: kind, parent: node}
	node.Children = append(node.Children, child)
	return child
}

// Parent returns the owning node, or nil for the root.
func (node *Node) Parent() *Node {
	return node.parent
}

// IsRoot reports whether the node has no parent.
func (node *Node) IsRoot() bool {
	return node.parent == nil
}

// Depth returns the number of parent links between the node and the root.
func (node *Node) Depth() int {
	depth := 0
	for ancestor := node.parent; ancestor != nil; ancestor = ancestor.parent {
		depth++
	}
	return depth
}

// Path joins the names of every ancestor from the root down to the node
// using the platform path separator.
func (node *Node) Path() string {
	segments := make([]string, node.Depth()+1)
	index := len(segments) - 1
	for current := node; current != nil; current = current.parent {
		segments[index] = current.Name
		index--
	}
	return filepath.Join(segments...)
}

// Child returns the direct child with the given name, or nil.
func (node *Node) Child(name string) *Node {
	for _, child := range node.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// DescendantCount returns the number of nodes below the receiver, which for
// the root equals the number of edges in the tree.
func (node *Node) DescendantCount() int {
	count := 0
	pending := append([]*Node(nil), node.Children...)
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		count++
		pending = append(pending, current.Children...)
	}
	return count
}
