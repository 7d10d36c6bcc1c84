package npmkit_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	npmkit "github.com/typestrap/npmkit-go"
)

// ---------------------------------------------------------------------------
// Single-goroutine benchmarks: measure per-call latency.
// ---------------------------------------------------------------------------

// How fast is a cache hit (lock + map lookup on a settled entry)?
func BenchmarkMemoizeHit(b *testing.B) {
	memo := npmkit.Memoize(func(name string) (string, error) { return "v", nil })
	memo("left-pad")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		memo("left-pad")
	}
}

// How fast is a cache miss (entry registration + call + settle)?
func BenchmarkMemoizeMiss(b *testing.B) {
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = fmt.Sprintf("%d", i)
	}

	memo := npmkit.Memoize(func(name string) (string, error) { return "v", nil })

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		memo(keys[i])
	}
}

// Errors are not cached. Measure the register-fail-evict path.
func BenchmarkMemoizeErrorNotCached(b *testing.B) {
	fail := errors.New("fail")
	memo := npmkit.Memoize(func(name string) (string, error) { return "", fail })

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		memo("left-pad")
	}
}

// ---------------------------------------------------------------------------
// Concurrent benchmarks: measure throughput under contention.
// ---------------------------------------------------------------------------

// 1000 goroutines all requesting the same key of a fresh wrapper.
// Only one call executes; the rest wait and share the result.
func BenchmarkConcurrentSameKey(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		memo := npmkit.Memoize(func(name string) (string, error) { return "v", nil })
		var wg sync.WaitGroup
		wg.Add(1000)
		for j := 0; j < 1000; j++ {
			go func() {
				defer wg.Done()
				memo("left-pad")
			}()
		}
		wg.Wait()
	}
}

// Parallel hits on a warmed wrapper.
func BenchmarkParallelHit(b *testing.B) {
	memo := npmkit.Memoize(func(name string) (string, error) { return "v", nil })
	memo("left-pad")

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			memo("left-pad")
		}
	})
}
