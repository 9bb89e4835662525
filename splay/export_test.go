package splay

import "fmt"

// RotateRightAt and RotateLeftAt expose rotations on the node holding key.
func (t *Tree[K, V]) RotateRightAt(key K) bool {
	return t.rotateRight(t.lookup(key))
}

func (t *Tree[K, V]) RotateLeftAt(key K) bool {
	return t.rotateLeft(t.lookup(key))
}

// CheckInvariants verifies ordering, parent back-references and the node count.
func (t *Tree[K, V]) CheckInvariants() error {
	if t.root == nilHandle {
		if t.size != 0 {
			return fmt.Errorf("empty tree reports size %d", t.size)
		}
		return nil
	}
	if p := t.nodes[t.root].parent; p != nilHandle {
		return fmt.Errorf("root has parent %d", p)
	}
	count := 0
	var walk func(h handle, lo, hi *K) error
	walk = func(h handle, lo, hi *K) error {
		if h == nilHandle {
			return nil
		}
		count++
		n := t.nodes[h]
		if lo != nil && !(*lo < n.key) {
			return fmt.Errorf("key %v not greater than lower bound %v", n.key, *lo)
		}
		if hi != nil && !(n.key < *hi) {
			return fmt.Errorf("key %v not less than upper bound %v", n.key, *hi)
		}
		for _, c := range []handle{n.left, n.right} {
			if c != nilHandle && t.nodes[c].parent != h {
				return fmt.Errorf("child %v of %v has parent %d", t.nodes[c].key, n.key, t.nodes[c].parent)
			}
		}
		if err := walk(n.left, lo, &n.key); err != nil {
			return err
		}
		return walk(n.right, &n.key, hi)
	}
	if err := walk(t.root, nil, nil); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("reachable nodes %d, size %d", count, t.size)
	}
	return nil
}
