// Package memo turns pure functions into memoized ones backed by a pluggable Store.
//
// Tableize asks the same question as any memoizer: is this function really
// pure? If it is, its results can be treated as a lazily filled table, and the
// table can live in whichever store suits the access pattern:
//
//   - FromLRU keeps a bounded window of recently used results (lru.Cache).
//   - FromSplay keeps every result in a splay tree, favouring keys that were
//     touched recently (splay.Tree).
//   - Unbounded keeps everything in a caller-owned map.
//   - Ristretto admits results through a frequency-aware policy.
//
// Stores are owned by the caller; nothing in this package keeps process-wide state.
//
// WARNING: Do not tableize impure functions (time, I/O, randomness).
package memo
