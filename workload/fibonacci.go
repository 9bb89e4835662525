package workload

import (
	"math/big"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/splay"
)

// Fibonacci returns F(n), consulting store before every computation and
// recording each result it had to compute. Values are arbitrary precision;
// F(93) already overflows uint64. Negative n is treated as 0.
//
// The returned value is shared with store and must not be mutated.
func Fibonacci(n int, store memo.Store[int, *big.Int]) *big.Int {
	if v, ok := store.Load(n); ok {
		return v
	}
	if n < 2 {
		v := big.NewInt(int64(max(n, 0)))
		store.Store(n, v)
		return v
	}
	a := Fibonacci(n-1, store)
	b := Fibonacci(n-2, store)
	v := new(big.Int).Add(a, b)
	store.Store(n, v)
	return v
}

// FibonacciSplay is Fibonacci memoized in tree. Reusing a tree across calls
// keeps earlier results.
func FibonacciSplay(n int, tree *splay.Tree[int, *big.Int]) *big.Int {
	return Fibonacci(n, memo.FromSplay(tree))
}

// FibonacciIterative computes F(n) bottom-up and memoizes only the final
// answer in store.
func FibonacciIterative(n int, store memo.Store[int, *big.Int]) *big.Int {
	if v, ok := store.Load(n); ok {
		return v
	}
	prev, curr := big.NewInt(0), big.NewInt(1)
	if n < 2 {
		curr.SetInt64(int64(max(n, 0)))
	} else {
		for i := 2; i <= n; i++ {
			prev.Add(prev, curr)
			prev, curr = curr, prev
		}
	}
	store.Store(n, curr)
	return curr
}
