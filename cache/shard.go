package cache

import (
	"hash/maphash"
	"sync"
)

const shardCount = 32

// shardedMap is a fixed-size set of independently locked buckets, the
// Go equivalent of the sharded concurrent map the original cache is
// built on: callers rarely touch more than a handful of keys at once,
// so splitting the lock across shards keeps contention low without
// pulling in a third-party concurrent-map dependency for a shape this
// small.
type shardedMap[K comparable, V any] struct {
	seed   maphash.Seed
	shards [shardCount]shard[K, V]
}

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func newShardedMap[K comparable, V any]() *shardedMap[K, V] {
	sm := &shardedMap[K, V]{seed: maphash.MakeSeed()}
	for i := range sm.shards {
		sm.shards[i].m = make(map[K]V)
	}
	return sm
}

func (sm *shardedMap[K, V]) shardFor(key K) *shard[K, V] {
	var h maphash.Hash
	h.SetSeed(sm.seed)
	h.WriteString(toString(key))
	return &sm.shards[h.Sum64()%shardCount]
}

func (sm *shardedMap[K, V]) Get(key K) (V, bool) {
	s := sm.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (sm *shardedMap[K, V]) Set(key K, value V) {
	s := sm.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (sm *shardedMap[K, V]) Delete(key K) {
	s := sm.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

func (sm *shardedMap[K, V]) Len() int {
	n := 0
	for i := range sm.shards {
		sm.shards[i].mu.RLock()
		n += len(sm.shards[i].m)
		sm.shards[i].mu.RUnlock()
	}
	return n
}

func (sm *shardedMap[K, V]) Clear() {
	for i := range sm.shards {
		sm.shards[i].mu.Lock()
		sm.shards[i].m = make(map[K]V)
		sm.shards[i].mu.Unlock()
	}
}

// ForEach calls fn for every entry in the map. fn must not call back
// into the same shardedMap: each shard is held under its read lock for
// the duration of its own iteration.
func (sm *shardedMap[K, V]) ForEach(fn func(K, V)) {
	for i := range sm.shards {
		sm.shards[i].mu.RLock()
		for k, v := range sm.shards[i].m {
			fn(k, v)
		}
		sm.shards[i].mu.RUnlock()
	}
}

// toString gives every key type this package uses a stable shard
// routing string. Keys are either id.Id[K] (whose String method is
// the underlying ULID) or MemberKey; both satisfy fmt.Stringer.
func toString(key any) string {
	if s, ok := key.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}
