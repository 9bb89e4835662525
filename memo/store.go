package memo

import (
	"cmp"

	"github.com/on-the-ground/memo_ive_go/lru"
	"github.com/on-the-ground/memo_ive_go/splay"
)

// Store is the table a memoized function reads from and writes to.
type Store[K comparable, V any] interface {
	Load(key K) (V, bool)
	Store(key K, value V)
}

// Pair is a composite key made of two comparable values.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

func PairOf[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

var (
	_ Store[int, int] = lruStore[int, int]{}
	_ Store[int, int] = splayStore[int, int]{}
	_ Store[int, int] = (*Unbounded[int, int])(nil)
)

type lruStore[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

// FromLRU exposes c as a Store. Loads refresh recency the same way Get does.
func FromLRU[K comparable, V any](c *lru.Cache[K, V]) Store[K, V] {
	return lruStore[K, V]{cache: c}
}

func (s lruStore[K, V]) Load(key K) (V, bool) {
	return s.cache.Get(key)
}

func (s lruStore[K, V]) Store(key K, value V) {
	s.cache.Put(key, value)
}

type splayStore[K cmp.Ordered, V any] struct {
	tree *splay.Tree[K, V]
}

// FromSplay exposes t as a Store. Loads that hit splay the key to the root.
func FromSplay[K cmp.Ordered, V any](t *splay.Tree[K, V]) Store[K, V] {
	return splayStore[K, V]{tree: t}
}

func (s splayStore[K, V]) Load(key K) (V, bool) {
	return s.tree.Find(key)
}

func (s splayStore[K, V]) Store(key K, value V) {
	s.tree.Insert(key, value)
}

// Unbounded is a plain map store that never evicts.
type Unbounded[K comparable, V any] struct {
	m map[K]V
}

func NewUnbounded[K comparable, V any]() *Unbounded[K, V] {
	return &Unbounded[K, V]{m: make(map[K]V)}
}

func (u *Unbounded[K, V]) Load(key K) (V, bool) {
	v, ok := u.m[key]
	return v, ok
}

func (u *Unbounded[K, V]) Store(key K, value V) {
	u.m[key] = value
}

func (u *Unbounded[K, V]) Len() int {
	return len(u.m)
}

// Clear drops every stored result.
func (u *Unbounded[K, V]) Clear() {
	clear(u.m)
}
