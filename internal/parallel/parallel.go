// Package parallel provides chunked parallel iteration for row-oriented
// raster work.
//
// Effect layers are built from independent scanlines, so the filter passes
// split their row ranges across GOMAXPROCS goroutines. Work items must not
// touch each other's rows; with that invariant the result is byte-identical
// to the serial loop.
package parallel

import (
	"runtime"
	"sync"
)

// minParallelWork is the smallest iteration count worth fanning out.
// Below it the goroutine overhead beats the savings.
const minParallelWork = 64

// For runs fn(i) for every i in [0, n), splitting the range into one
// contiguous chunk per worker. Small ranges run inline on the caller's
// goroutine.
func For(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < minParallelWork || workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
