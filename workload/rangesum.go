// Package workload holds the two recomputation-heavy callers the memo stores
// were built for: range sums over a mutable array, memoized in an LRU cache,
// and Fibonacci numbers, memoized in a splay tree.
package workload

import (
	"errors"
	"fmt"
	"slices"

	"github.com/on-the-ground/memo_ive_go/lru"
)

var ErrOutOfRange = errors.New("index out of range")

// Span is an inclusive, 0-indexed range [L, R].
type Span struct {
	L, R int
}

// RangeSummer answers range-sum queries over its own copy of an array.
// Sums are cached per Span; any Update clears the whole cache because the
// cache does not track which spans contain which index.
type RangeSummer struct {
	data  []int
	cache *lru.Cache[Span, int]
}

func NewRangeSummer(data []int, capacity int, opts ...lru.Option[Span, int]) (*RangeSummer, error) {
	cache, err := lru.New(capacity, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create range sum cache: %w", err)
	}
	return &RangeSummer{
		data:  slices.Clone(data),
		cache: cache,
	}, nil
}

// Sum returns data[l] + ... + data[r].
func (s *RangeSummer) Sum(l, r int) (int, error) {
	span := Span{L: l, R: r}
	if sum, ok := s.cache.Get(span); ok {
		return sum, nil
	}
	sum, err := s.SumDirect(l, r)
	if err != nil {
		return 0, err
	}
	s.cache.Put(span, sum)
	return sum, nil
}

// Update sets data[index] to value and invalidates every cached sum.
func (s *RangeSummer) Update(index, value int) error {
	if err := s.UpdateDirect(index, value); err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

// SumDirect sums the range without consulting the cache.
func (s *RangeSummer) SumDirect(l, r int) (int, error) {
	if l < 0 || r >= len(s.data) || l > r {
		return 0, fmt.Errorf("%w: span [%d, %d] over %d elements", ErrOutOfRange, l, r, len(s.data))
	}
	sum := 0
	for _, v := range s.data[l : r+1] {
		sum += v
	}
	return sum, nil
}

// UpdateDirect sets data[index] without touching the cache. Cached sums that
// cover index become stale.
func (s *RangeSummer) UpdateDirect(index, value int) error {
	if index < 0 || index >= len(s.data) {
		return fmt.Errorf("%w: index %d over %d elements", ErrOutOfRange, index, len(s.data))
	}
	s.data[index] = value
	return nil
}

// Cached reports how many sums are currently cached.
func (s *RangeSummer) Cached() int {
	return s.cache.Len()
}
