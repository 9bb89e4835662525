package splay

import "go.uber.org/zap"

// splay rotates h up until it becomes the root.
//
// Each step is classified only by whether h and its parent are left or right
// children:
//   - zig: the parent is the root, one rotation.
//   - zig-zig: both on the same side, rotate the grandparent then the parent.
//   - zig-zag: opposite sides, rotate the parent then the former grandparent.
func (t *Tree[K, V]) splay(h handle) {
	for {
		p := t.nodes[h].parent
		if p == nilHandle {
			return
		}
		g := t.nodes[p].parent
		isLeft := t.nodes[p].left == h

		switch {
		case g == nilHandle:
			if isLeft {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case isLeft && t.nodes[g].left == p:
			t.rotateRight(g)
			t.rotateRight(p)
		case !isLeft && t.nodes[g].right == p:
			t.rotateLeft(g)
			t.rotateLeft(p)
		case isLeft:
			t.rotateRight(p)
			t.rotateLeft(g)
		default:
			t.rotateLeft(p)
			t.rotateRight(g)
		}
	}
}

// rotateRight lifts the left child of h into h's place. It declines and
// reports false when h has no left child.
func (t *Tree[K, V]) rotateRight(h handle) bool {
	l := t.nodes[h].left
	if l == nilHandle {
		t.logger.Warn("splay rotation declined", zap.String("direction", "right"), zap.Any("key", t.nodes[h].key))
		return false
	}

	inner := t.nodes[l].right
	t.nodes[h].left = inner
	if inner != nilHandle {
		t.nodes[inner].parent = h
	}

	t.replaceChild(h, l)

	t.nodes[l].right = h
	t.nodes[h].parent = l
	return true
}

// rotateLeft lifts the right child of h into h's place. It declines and
// reports false when h has no right child.
func (t *Tree[K, V]) rotateLeft(h handle) bool {
	r := t.nodes[h].right
	if r == nilHandle {
		t.logger.Warn("splay rotation declined", zap.String("direction", "left"), zap.Any("key", t.nodes[h].key))
		return false
	}

	inner := t.nodes[r].left
	t.nodes[h].right = inner
	if inner != nilHandle {
		t.nodes[inner].parent = h
	}

	t.replaceChild(h, r)

	t.nodes[r].left = h
	t.nodes[h].parent = r
	return true
}

// replaceChild points the link that referenced old, either its parent's child
// slot or the root, at child.
func (t *Tree[K, V]) replaceChild(old, child handle) {
	p := t.nodes[old].parent
	t.nodes[child].parent = p
	switch {
	case p == nilHandle:
		t.root = child
	case t.nodes[p].left == old:
		t.nodes[p].left = child
	default:
		t.nodes[p].right = child
	}
}
