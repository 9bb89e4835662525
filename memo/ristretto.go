package memo

import (
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

var _ Store[int, int] = (*Ristretto[int, int])(nil)

// Ristretto is a Store backed by a ristretto cache. Every result costs 1, so
// maxItems bounds the number of results kept.
//
// Ristretto may reject or drop writes under its admission policy. A dropped
// result is simply recomputed on the next call.
type Ristretto[K ristretto.Key, V any] struct {
	cache *ristretto.Cache[K, V]
}

func NewRistretto[K ristretto.Key, V any](maxItems int64) (*Ristretto[K, V], error) {
	if maxItems < 1 {
		return nil, fmt.Errorf("memo: ristretto maxItems must be at least 1, got %d", maxItems)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters:        10 * maxItems, // ~10x the expected item count, as ristretto recommends
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("memo: failed to create ristretto cache: %w", err)
	}
	return &Ristretto[K, V]{cache: cache}, nil
}

func (r *Ristretto[K, V]) Load(key K) (V, bool) {
	return r.cache.Get(key)
}

// Store waits for the write buffer to drain so the result is visible to the
// next Load.
func (r *Ristretto[K, V]) Store(key K, value V) {
	if r.cache.Set(key, value, 1) {
		r.cache.Wait()
	}
}

func (r *Ristretto[K, V]) Clear() {
	r.cache.Clear()
}

func (r *Ristretto[K, V]) Close() {
	r.cache.Close()
}
