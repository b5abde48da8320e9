package components

import (
	"github.com/charmbracelet/x/ansi"
)

// Rect is a cell rectangle relative to the top-left of the root node.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r. Width and height
// are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Node is one element of rendered output. Content holds the fully styled
// text of the node including its children. A nil *Node means nothing was
// rendered.
type Node struct {
	Kind     string
	Content  string
	Bounds   Rect
	Children []*Node

	onActivate func()
}

// View returns the rendered content, or "" for a nil node.
func (n *Node) View() string {
	if n == nil {
		return ""
	}
	return n.Content
}

// Text returns the content with escape sequences stripped.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return ansi.Strip(n.Content)
}

// Find returns the first node of the given kind in depth-first order.
func (n *Node) Find(kind string) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == kind {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(kind); found != nil {
			return found
		}
	}
	return nil
}

// Activate runs the node's activation callback. It reports whether the
// node had one.
func (n *Node) Activate() bool {
	if n == nil || n.onActivate == nil {
		return false
	}
	n.onActivate()
	return true
}

// Interactive reports whether the node reacts to activation.
func (n *Node) Interactive() bool {
	return n != nil && n.onActivate != nil
}

// HitTest returns the innermost node whose bounds contain (x, y). Later
// siblings are drawn on top of earlier ones and win ties. Nodes without
// bounds are never hit themselves but their children still are.
func (n *Node) HitTest(x, y int) *Node {
	if n == nil {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := n.Children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	if !n.Bounds.Empty() && n.Bounds.Contains(x, y) {
		return n
	}
	return nil
}
