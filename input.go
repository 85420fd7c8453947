package flubber

// --- Hit testing ---

// collectClickable walks the tree in painter order (DFS), appending nodes
// that can receive clicks to buf. Skips Visible=false subtrees. A node is
// clickable when it is Interactable, has an OnClick callback and a non-empty
// size.
func collectClickable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable && n.OnClick != nil && n.Width > 0 && n.Height > 0 {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectClickable(child, buf)
	}
	return buf
}

// HitTest finds the topmost clickable node in this subtree at the world
// point (x, y). Returns nil if nothing is hit.
func (n *Node) HitTest(x, y float64) *Node {
	hits := collectClickable(n, nil)

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(hits) - 1; i >= 0; i-- {
		if hits[i].Bounds().Contains(x, y) {
			return hits[i]
		}
	}
	return nil
}

// Click dispatches a press at the world point (x, y) to the topmost
// clickable node and reports whether one was hit.
func (n *Node) Click(x, y float64) bool {
	hit := n.HitTest(x, y)
	if hit == nil {
		return false
	}
	hit.OnClick()
	return true
}
