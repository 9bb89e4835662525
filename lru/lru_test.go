package lru_test

import (
	"math/rand"
	"testing"

	"github.com/on-the-ground/memo_ive_go/lru"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type span struct {
	L, R int
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		c, err := lru.New[string, int](capacity)
		assert.ErrorIs(t, err, lru.ErrInvalidCapacity)
		assert.Nil(t, c)
	}

	assert.Panics(t, func() {
		lru.MustNew[string, int](0)
	})
}

func TestCache_GetPut(t *testing.T) {
	c := lru.MustNew[string, int](2)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	assert.False(t, c.Put("a", 1))
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	// overwrite keeps a single entry
	assert.False(t, c.Put("a", 2))
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Cap())
}

func TestCache_EvictsFirstInserted(t *testing.T) {
	var evicted []int
	c := lru.MustNew(3, lru.WithOnEvict(func(k int, _ string) {
		evicted = append(evicted, k)
	}))

	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(3, "three")
	assert.True(t, c.Put(4, "four"))

	assert.Equal(t, []int{1}, evicted)
	assert.False(t, c.Contains(1))
	assert.Equal(t, []int{2, 3, 4}, c.Keys())
}

func TestCache_GetRefreshesRecency(t *testing.T) {
	c := lru.MustNew[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", 3)
	assert.True(t, c.Contains("a"))
	assert.False(t, c.Contains("b"))
	assert.Equal(t, []string{"a", "c"}, c.Keys())
}

func TestCache_PutExistingRefreshesRecency(t *testing.T) {
	c := lru.MustNew[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)

	k, v, ok := c.Oldest()
	require.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, v)

	c.Put("c", 3)
	v, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.False(t, c.Contains("b"))
}

func TestCache_PeekDoesNotRefresh(t *testing.T) {
	c := lru.MustNew[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Peek("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("c", 3)
	assert.False(t, c.Contains("a"))

	_, ok = c.Peek("a")
	assert.False(t, ok)
}

func TestCache_Remove(t *testing.T) {
	c := lru.MustNew[string, int](2)
	c.Put("a", 1)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Equal(t, 0, c.Len())

	_, _, ok := c.Oldest()
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := lru.MustNew[span, int](4)
	for i := 0; i < 4; i++ {
		c.Put(span{i, i + 1}, i)
	}

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 4, c.Cap())
	for i := 0; i < 4; i++ {
		_, ok := c.Get(span{i, i + 1})
		assert.False(t, ok)
	}
	assert.Empty(t, c.Keys())

	// cache is reusable after clear
	c.Put(span{0, 0}, 7)
	v, ok := c.Get(span{0, 0})
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestCache_CapacityNeverExceeded(t *testing.T) {
	const capacity = 16
	c := lru.MustNew[int, int](capacity)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		k := rnd.Intn(64)
		c.Put(k, i)
		require.LessOrEqual(t, c.Len(), capacity)
	}
	assert.Equal(t, capacity, c.Len())
}

func TestCache_MatchesReferenceLRU(t *testing.T) {
	const capacity = 8
	c := lru.MustNew[int, int](capacity)
	ref, err := simplelru.NewLRU(capacity, nil)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		k := rnd.Intn(20)
		if rnd.Intn(2) == 0 {
			got, gotOK := c.Get(k)
			want, wantOK := ref.Get(k)
			require.Equal(t, wantOK, gotOK, "get %d at step %d", k, i)
			if wantOK {
				require.Equal(t, want.(int), got)
			}
			continue
		}
		require.Equal(t, ref.Add(k, i), c.Put(k, i), "put %d at step %d", k, i)
	}

	want := make([]int, 0, ref.Len())
	for _, k := range ref.Keys() {
		want = append(want, k.(int))
	}
	assert.Equal(t, want, c.Keys())
}

func TestCache_LogsEvictionAndClear(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := lru.MustNew(1, lru.WithLogger[string, int](zap.New(core)))

	c.Put("a", 1)
	c.Put("b", 2)
	c.Clear()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "lru evicted", entries[0].Message)
	assert.Equal(t, "a", entries[0].ContextMap()["key"])
	assert.NotEmpty(t, entries[0].ContextMap()["id"])
	assert.Equal(t, "lru cleared", entries[1].Message)
	assert.Equal(t, int64(1), entries[1].ContextMap()["dropped"])
}
