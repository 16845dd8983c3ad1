// Package parallel splits line-oriented image work across goroutines.
//
// Canvas conversions and damping treat every row (or column) independently,
// so the work divides into contiguous bands with no shared writes.
package parallel

import (
	"runtime"
	"sync"
)

// MinBand is the smallest number of lines handed to one goroutine.
const MinBand = 32

// Workers returns the number of bands For uses for n lines.
func Workers(n int) int {
	if n <= 0 {
		return 0
	}
	return max(1, min(runtime.GOMAXPROCS(0), n/MinBand))
}

// For calls fn on disjoint ranges [lo, hi) that together cover [0, n), and
// returns once every call has finished. Small inputs run on the calling
// goroutine. fn must only touch data belonging to its own range.
func For(n int, fn func(lo, hi int)) {
	bands := Workers(n)
	if bands == 0 {
		return
	}
	if bands == 1 {
		fn(0, n)
		return
	}

	step := (n + bands - 1) / bands
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += step {
		hi := min(lo+step, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(lo, hi)
		}()
	}
	wg.Wait()
}
