package npmkit

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Func is a fallible asynchronous lookup keyed by its argument.
type Func[K comparable, V any] func(K) (V, error)

// entry is an in-flight or settled call. val and err are written exactly once,
// before ready is closed, and are read only after ready is closed.
type entry[V any] struct {
	val   V
	err   error
	ready chan struct{}
}

// cache maps each key to its single in-flight or settled call.
// It is owned by the wrapper closure and holds at most one entry per key.
type cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[V]
	observer Observer
}

func newCache[K comparable, V any](opts ...Option) *cache[K, V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cache[K, V]{
		entries:  make(map[K]*entry[V]),
		observer: cfg.observer,
	}
}

func (c *cache[K, V]) emit(event Event, key K) {
	if c.observer == nil {
		return
	}
	c.observer.On(EventData{
		Event: event,
		Key:   fmt.Sprint(key),
	})
}

// do returns the value for key, running call at most once per key while its
// entry exists. The entry is registered before call runs, so a second caller
// arriving mid-flight joins the pending entry instead of triggering a new
// call. On failure the entry is deleted before the error is handed out, so
// the next call for the same key starts fresh.
func (c *cache[K, V]) do(key K, call func() (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.mu.Unlock()
		select {
		case <-e.ready:
			c.emit(EventHit, key)
		default:
			c.emit(EventDedup, key)
		}
		<-e.ready
		return e.val, e.err
	}
	e := &entry[V]{ready: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()
	c.emit(EventMiss, key)

	e.val, e.err = call()
	if e.err != nil {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.emit(EventEvict, key)
	}
	close(e.ready)
	return e.val, e.err
}

// Memoize wraps fn so that calls sharing the same key invoke fn at most once
// concurrently. Concurrent callers for a key block and receive the outcome of
// the single shared call. Successful results are cached for the lifetime of
// the wrapper; the cache is unbounded and never expires. Errors are not
// cached: a failed call is evicted before the error propagates, so the next
// call for that key invokes fn again.
//
// The wrapper has no cancellation or timeout of its own. If fn never returns
// for some key, every caller for that key blocks forever.
func Memoize[K comparable, V any](fn Func[K, V], opts ...Option) Func[K, V] {
	c := newCache[K, V](opts...)
	return func(key K) (V, error) {
		return c.do(key, func() (V, error) {
			return fn(key)
		})
	}
}

// Memoize2 is [Memoize] for a two-argument fn. Only the first argument is the
// cache key: callers passing the same key with different trailing arguments
// share one call, and the trailing argument of whichever caller ran first
// wins. Use it when the trailing argument is derived from the key.
func Memoize2[K comparable, A, V any](fn func(K, A) (V, error), opts ...Option) func(K, A) (V, error) {
	c := newCache[K, V](opts...)
	return func(key K, arg A) (V, error) {
		return c.do(key, func() (V, error) {
			return fn(key, arg)
		})
	}
}

// All resolves every key concurrently through fn and returns the values in
// the same order as keys. The first error is returned; the remaining
// goroutines are still awaited so no work is leaked. Combined with a
// memoized fn, duplicate keys cost a single underlying call.
func All[K comparable, V any](fn Func[K, V], keys []K) ([]V, error) {
	results := make([]V, len(keys))
	var g errgroup.Group
	for i, key := range keys {
		g.Go(func() error {
			v, err := fn(key)
			if err != nil {
				return err
			}
			results[i] = v // safe: each goroutine writes a unique index
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
