package pool

// A simple worker pool, for loops whose iterations are independent.

import(
	"runtime"
	"sync"
)

// Workers is how many goroutines Run spreads work across.
var Workers = runtime.NumCPU()

// Run calls fn(i) for each i in [0,n), using a pool of goroutines. It
// returns once every call has completed. Calls must not write to
// anything another call reads or writes.
func Run(n int, fn func(i int)) {
	nWorkers := Workers
	if nWorkers > n { nWorkers = n }

	if nWorkers <= 1 {
		for i:=0; i<n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	jobsChan := make(chan int, n)

	// Kick off worker pool
	for i:=0; i<nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobsChan {
				fn(job)
			}
		}()
	}

	// Feed in jobs
	for i:=0; i<n; i++ {
		jobsChan<- i
	}

	close(jobsChan)
	wg.Wait()
}
