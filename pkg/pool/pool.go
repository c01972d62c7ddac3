package pool

import (
	"io"
	"runtime"
	"sync"
)

// task asks a worker to evaluate a function at a single index.
type task struct {
	i    int
	f    func(int)
	done *sync.WaitGroup
}

// worker evaluates tasks until the channel is closed.
func worker(tasks <-chan task) {
	for t := range tasks {
		t.f(t.i)
		t.done.Done()
	}
}

// Pool represents a pool of workers, used for parallelizing functions.
//
// Functions needing a *Pool will work with a nil receiver, doing the equivalent
// work on the current goroutine instead.
type Pool struct {
	tasks       chan task
	workerCount int
}

// NewPool creates a new pool, with a certain number of workers.
//
// If count <= 0, this will use the number of available CPUs instead.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		tasks:       make(chan task),
		workerCount: count,
	}
	for i := 0; i < count; i++ {
		go worker(p.tasks)
	}
	return p
}

// Workers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workerCount
}

// TearDown cleanly tears down a pool. The pool must not be used afterwards.
func (p *Pool) TearDown() {
	if p != nil {
		close(p.tasks)
	}
}

// Parallelize calls f count times, passing in indices from 0..count-1.
//
// The result is [f(0), f(1), ..., f(count - 1)], whatever order the calls were made in.
func Parallelize[T any](p *Pool, count int, f func(int) T) []T {
	results := make([]T, count)
	if p == nil {
		for i := range results {
			results[i] = f(i)
		}
		return results
	}

	var wg sync.WaitGroup
	wg.Add(count)
	store := func(i int) { results[i] = f(i) }
	for i := 0; i < count; i++ {
		p.tasks <- task{i: i, f: store, done: &wg}
	}
	wg.Wait()
	return results
}

// LockedReader wraps an io.Reader to be safe for concurrent reads.
type LockedReader struct {
	reader io.Reader
	m      sync.Mutex
}

// NewLockedReader creates a LockedReader by wrapping an underlying value.
func NewLockedReader(r io.Reader) *LockedReader {
	return &LockedReader{reader: r}
}

// Read implements io.Reader, holding a lock for the duration of the underlying read.
func (r *LockedReader) Read(p []byte) (int, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.reader.Read(p)
}
