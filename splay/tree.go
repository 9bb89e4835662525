// Package splay implements a self-adjusting binary search tree.
//
// Every Insert and every successful Find rotates the touched node to the root,
// so keys accessed with temporal locality stay near the top and a sequence of
// operations costs amortized O(log n) each.
//
// Nodes are kept in an arena and refer to each other through integer handles.
// Child handles own the subtree below them; the parent handle is only a
// back-reference used while splaying.
//
// Tree is not safe for concurrent use.
package splay

import (
	"cmp"
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type handle int32

const nilHandle handle = -1

type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   handle
	right  handle
	parent handle
}

type Tree[K cmp.Ordered, V any] struct {
	id     string
	nodes  []node[K, V]
	free   []handle
	root   handle
	size   int
	logger *zap.Logger
}

type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger that reports declined rotations.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.New().String()
	return &Tree[K, V]{
		id:     id,
		root:   nilHandle,
		logger: o.logger.With(zap.String("id", id)),
	}
}

// Insert stores value under key and splays the node holding key to the root.
// An existing key keeps its node and only has its value replaced.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nilHandle {
		t.root = t.alloc(key, value, nilHandle)
		return
	}

	cur := t.root
	for {
		n := &t.nodes[cur]
		switch {
		case key < n.key:
			if n.left == nilHandle {
				h := t.alloc(key, value, cur)
				t.nodes[cur].left = h
				t.splay(h)
				return
			}
			cur = n.left
		case key > n.key:
			if n.right == nilHandle {
				h := t.alloc(key, value, cur)
				t.nodes[cur].right = h
				t.splay(h)
				return
			}
			cur = n.right
		default:
			n.value = value
			t.splay(cur)
			return
		}
	}
}

// Find returns the value stored under key. A hit splays the node to the root;
// a miss leaves the tree unchanged.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	h := t.lookup(key)
	if h == nilHandle {
		var zero V
		return zero, false
	}
	t.splay(h)
	return t.nodes[h].value, true
}

// Delete removes key and reports whether it was present.
// The removed node's in-order predecessor becomes the root, or its right
// subtree when there is no predecessor.
func (t *Tree[K, V]) Delete(key K) bool {
	h := t.lookup(key)
	if h == nilHandle {
		return false
	}
	t.splay(h)

	left, right := t.nodes[h].left, t.nodes[h].right
	switch {
	case left == nilHandle:
		t.root = right
		if right != nilHandle {
			t.nodes[right].parent = nilHandle
		}
	default:
		t.nodes[left].parent = nilHandle
		t.root = left
		// the maximum of the left subtree has no right child once it is root
		t.splay(t.maxFrom(left))
		t.nodes[t.root].right = right
		if right != nilHandle {
			t.nodes[right].parent = t.root
		}
	}

	t.release(h)
	return true
}

func (t *Tree[K, V]) Len() int {
	return t.size
}

// Root returns the key currently at the root.
func (t *Tree[K, V]) Root() (key K, ok bool) {
	if t.root == nilHandle {
		return
	}
	return t.nodes[t.root].key, true
}

// Min returns the smallest key and its value without splaying.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if t.root == nilHandle {
		return
	}
	n := t.nodes[t.minFrom(t.root)]
	return n.key, n.value, true
}

// Max returns the largest key and its value without splaying.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if t.root == nilHandle {
		return
	}
	n := t.nodes[t.maxFrom(t.root)]
	return n.key, n.value, true
}

// All yields every entry in ascending key order. Iteration does not splay,
// and the tree must not be modified until the iteration finishes.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]handle, 0, 32)
		cur := t.root
		for cur != nilHandle || len(stack) > 0 {
			for cur != nilHandle {
				stack = append(stack, cur)
				cur = t.nodes[cur].left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.nodes[cur].key, t.nodes[cur].value) {
				return
			}
			cur = t.nodes[cur].right
		}
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	type frame struct {
		h     handle
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.h == nilHandle {
			continue
		}
		height = max(height, f.depth)
		n := t.nodes[f.h]
		stack = append(stack, frame{n.left, f.depth + 1}, frame{n.right, f.depth + 1})
	}
	return height
}

// Reset drops every node and releases the arena.
func (t *Tree[K, V]) Reset() {
	t.nodes = nil
	t.free = nil
	t.root = nilHandle
	t.size = 0
}

func (t *Tree[K, V]) lookup(key K) handle {
	cur := t.root
	for cur != nilHandle {
		n := &t.nodes[cur]
		switch {
		case key < n.key:
			cur = n.left
		case key > n.key:
			cur = n.right
		default:
			return cur
		}
	}
	return nilHandle
}

func (t *Tree[K, V]) minFrom(h handle) handle {
	for t.nodes[h].left != nilHandle {
		h = t.nodes[h].left
	}
	return h
}

func (t *Tree[K, V]) maxFrom(h handle) handle {
	for t.nodes[h].right != nilHandle {
		h = t.nodes[h].right
	}
	return h
}

func (t *Tree[K, V]) alloc(key K, value V, parent handle) handle {
	n := node[K, V]{key: key, value: value, left: nilHandle, right: nilHandle, parent: parent}
	t.size++
	if len(t.free) > 0 {
		h := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[h] = n
		return h
	}
	t.nodes = append(t.nodes, n)
	return handle(len(t.nodes) - 1)
}

func (t *Tree[K, V]) release(h handle) {
	var zero node[K, V]
	t.nodes[h] = zero
	t.nodes[h].left, t.nodes[h].right, t.nodes[h].parent = nilHandle, nilHandle, nilHandle
	t.free = append(t.free, h)
	t.size--
}
