package chainmap

import (
	"strconv"
	"testing"
)

var sizes = []int{
	1 << 10,
	1 << 16,
	1 << 20,
}

func BenchmarkMapGet_Hit(b *testing.B) {
	b.Run("variant=stdMap", benchSimulateLoad(benchmarkStdMapGetHit))
	b.Run("variant=chainMap", benchSimulateLoad(benchmarkChainMapGetHit))
	b.Run("variant=chainMapXXHash", benchSimulateLoad(benchmarkChainMapXXHashGetHit))
}

func BenchmarkMapGet_Miss(b *testing.B) {
	b.Run("variant=stdMap", benchSimulateLoad(benchmarkStdMapGetMiss))
	b.Run("variant=chainMap", benchSimulateLoad(benchmarkChainMapGetMiss))
}

func BenchmarkMapSet_Grow(b *testing.B) {
	b.Run("variant=stdMap", benchSimulateLoad(benchmarkStdMapSetGrow))
	b.Run("variant=chainMap", benchSimulateLoad(benchmarkChainMapSetGrow))
}

func benchmarkStdMapGetHit(b *testing.B, size int) {
	keys := genKeys(0, size)
	m := make(map[string]int)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkChainMapGetHit(b *testing.B, size int) {
	benchmarkGetHit(b, New[int](DefaultInitialSize), size)
}

func benchmarkChainMapXXHashGetHit(b *testing.B, size int) {
	benchmarkGetHit(b, New(DefaultInitialSize, WithHashFunc[int](XXHash)), size)
}

func benchmarkGetHit(b *testing.B, m *Map[int], size int) {
	keys := genKeys(0, size)
	for i, k := range keys {
		m.Set(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i%len(keys)])
	}
}

func benchmarkStdMapGetMiss(b *testing.B, size int) {
	m := make(map[string]int)
	for i, k := range genKeys(0, size) {
		m[k] = i
	}
	misses := genKeys(-size, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[misses[i%len(misses)]]
	}
}

func benchmarkChainMapGetMiss(b *testing.B, size int) {
	m := New[int](DefaultInitialSize)
	for i, k := range genKeys(0, size) {
		m.Set(k, i)
	}
	misses := genKeys(-size, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(misses[i%len(misses)])
	}
}

func benchmarkStdMapSetGrow(b *testing.B, size int) {
	keys := genKeys(0, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[string]int)
		for j, k := range keys {
			m[k] = j
		}
	}
}

func benchmarkChainMapSetGrow(b *testing.B, size int) {
	keys := genKeys(0, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := New[int](DefaultInitialSize)
		for j, k := range keys {
			m.Set(k, j)
		}
	}
}

func genKeys(start, end int) []string {
	keys := make([]string, end-start)
	for i := range keys {
		keys[i] = strconv.Itoa(start + i)
	}

	return keys
}

func benchSimulateLoad(benchFunc func(b *testing.B, size int)) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size)
			})
		}
	}
}
