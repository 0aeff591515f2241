// Package workpool runs independent, idempotent filesystem operations on a
// bounded pool of workers. Tasks carry no ordering relationship; the only
// guarantee is one outcome slot per task.
package workpool

import (
	"runtime"
	"sync"
)

// Task is a single independent unit of work.
type Task func() error

// DefaultWorkers returns the pool size used when the caller doesn't pick one:
// all cores but one, never less than one.
func DefaultWorkers() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

// Run executes all tasks on at most workers goroutines and returns the
// per-task outcomes, indexed like the input slice. A nil entry means the task
// succeeded. Run blocks until every task has finished.
func Run(workers int, tasks []Task) []error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	results := make([]error, len(tasks))
	if len(tasks) == 0 {
		return results
	}

	jobs := make(chan int, len(tasks))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = tasks[i]()
			}
		}()
	}

	for i := range tasks {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}
