package memo

func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	store Store[I1, O1],
) func(I1) O1 {
	return func(i1 I1) O1 {
		return tableize(store, i1, func() O1 {
			return pureFn(i1)
		})
	}
}

func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
	store Store[Pair[I1, I2], O1],
) func(I1, I2) O1 {
	return func(i1 I1, i2 I2) O1 {
		return tableize(store, PairOf(i1, i2), func() O1 {
			return pureFn(i1, i2)
		})
	}
}

// Recursive memoizes a self-recursive function. The function receives the
// memoized version of itself as self, so every recursive call consults store.
//
//	fib := memo.Recursive(func(self func(int) int, n int) int {
//		if n < 2 {
//			return n
//		}
//		return self(n-1) + self(n-2)
//	}, memo.NewUnbounded[int, int]())
func Recursive[I comparable, O any](
	pureFn func(self func(I) O, i I) O,
	store Store[I, O],
) func(I) O {
	var self func(I) O
	self = TableizeI1O1(func(i I) O {
		return pureFn(self, i)
	}, store)
	return self
}

func tableize[K comparable, V any](store Store[K, V], key K, compute func() V) V {
	v, ok := store.Load(key)
	if !ok {
		v = compute()
		store.Store(key, v)
	}
	return v
}
