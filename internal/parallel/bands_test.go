package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversEveryLineOnce(t *testing.T) {
	for _, n := range []int{0, 1, MinBand - 1, MinBand, 1000, 4097} {
		hits := make([]atomic.Int32, n)
		For(n, func(lo, hi int) {
			if lo < 0 || hi > n || lo >= hi {
				t.Errorf("n=%d: bad range [%d, %d)", n, lo, hi)
				return
			}
			for i := lo; i < hi; i++ {
				hits[i].Add(1)
			}
		})
		for i := range hits {
			if got := hits[i].Load(); got != 1 {
				t.Fatalf("n=%d: line %d visited %d times", n, i, got)
			}
		}
	}
}

func TestWorkers(t *testing.T) {
	if got := Workers(0); got != 0 {
		t.Errorf("Workers(0) = %d, want 0", got)
	}
	if got := Workers(MinBand - 1); got != 1 {
		t.Errorf("Workers(%d) = %d, want 1", MinBand-1, got)
	}
	if got := Workers(1 << 20); got < 1 {
		t.Errorf("Workers(1<<20) = %d, want >= 1", got)
	}
}

func BenchmarkFor(b *testing.B) {
	buf := make([]float32, 1024*1024)
	b.ReportAllocs()
	for b.Loop() {
		For(1024, func(lo, hi int) {
			for y := lo; y < hi; y++ {
				row := buf[y*1024 : (y+1)*1024]
				for x := range row {
					row[x]++
				}
			}
		})
	}
}
