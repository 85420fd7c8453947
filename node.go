package flubber

// nodeIDCounter is a plain counter (no atomic; flubber is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// NoReveal is the RevealRadius value of a node that is not clipped by a
// circular reveal.
const NoReveal = -1.0

// Node is the fundamental view element. Nodes form a tree; children are
// positioned relative to their parent and inherit its visibility and alpha.
// A single flat struct is used for every kind of view so animations can
// address fields directly.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout (local, relative to parent)
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64 // radians, around the node center

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Appearance
	Color Color
	Icon  string // icon identifier, drawn centered
	Label string // text drawn at the top-left corner

	// Circular reveal clip in world coordinates. When RevealRadius is
	// NoReveal the node is drawn unclipped.
	RevealX      float64
	RevealY      float64
	RevealRadius float64

	// OnClick fires when the node is pressed. Nil by default.
	OnClick func()

	// Resting layout shared by running layout presets.
	rest pose
	held int

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.RevealRadius = NoReveal
}

// NewContainer creates a node with no visual representation of its own.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewRect creates a solid-color rectangle of the given size.
func NewRect(name string, width, height float64, color Color) *Node {
	n := &Node{Name: name, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = color
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("flubber: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("flubber: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("flubber: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Find returns the first node named name in this subtree (depth-first,
// including n itself), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Geometry ---

// WorldPosition returns the node's top-left corner in world coordinates.
func (n *Node) WorldPosition() (float64, float64) {
	var x, y float64
	for p := n; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// Bounds returns the node's unscaled rectangle in world coordinates.
func (n *Node) Bounds() Rect {
	x, y := n.WorldPosition()
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// Center returns the world-space center of the node.
func (n *Node) Center() Vec2 {
	return n.Bounds().Center()
}

// WorldAlpha returns the node's alpha multiplied by every ancestor's alpha.
func (n *Node) WorldAlpha() float64 {
	a := 1.0
	for p := n; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// IsShown reports whether the node and all of its ancestors are visible.
func (n *Node) IsShown() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Running animations that target
// a disposed node complete on their next update without writing to it.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.OnClick = nil
}

// pose is the part of a node's layout that slide, shake and pop return to.
type pose struct {
	X, Y           float64
	ScaleX, ScaleY float64
}

// restPose returns the pose held by running layout presets, or the current
// layout when none is running.
func (n *Node) restPose() pose {
	if n.held > 0 {
		return n.rest
	}
	return pose{X: n.X, Y: n.Y, ScaleX: n.ScaleX, ScaleY: n.ScaleY}
}

// hold pins p as the resting pose until the matching release. Only the
// first hold records p; overlapping animations share it.
func (n *Node) hold(p pose) {
	if n.held == 0 {
		n.rest = p
	}
	n.held++
}

func (n *Node) release() {
	if n.held > 0 {
		n.held--
	}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
