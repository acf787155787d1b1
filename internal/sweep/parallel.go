package sweep

import (
	"runtime"
	"sync"
)

// minChunk keeps small grids on the calling goroutine.
const minChunk = 256

// parallelFor calls fn over disjoint [start, end) chunks covering [0, n).
// Chunks write to distinct indices, so output does not depend on scheduling.
func parallelFor(n int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
