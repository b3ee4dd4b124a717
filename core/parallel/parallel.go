// Package parallel splits index ranges across CPU cores. The column and row
// loops behind summary statistics and transformers use it to fan out.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, n) into one contiguous span per worker and runs fn
// on every span concurrently, returning once all spans are done. Spans never
// overlap, so fn needs no locking as long as it only touches its own range.
// With one usable core, or n < 2, fn runs on the calling goroutine.
func Parallelize(n int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}

	// The first n%workers spans take one extra index, so span sizes differ
	// by at most one.
	span := n / workers
	extra := n % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for w := 0; w < workers; w++ {
		end := start + span
		if w < extra {
			end++
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
		start = end
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn in a single call on the calling
// goroutine when n is at or below threshold. Goroutine dispatch costs more
// than it saves on small inputs.
func ParallelizeWithThreshold(n, threshold int, fn func(start, end int)) {
	if n <= threshold {
		if n > 0 {
			fn(0, n)
		}
		return
	}
	Parallelize(n, fn)
}
