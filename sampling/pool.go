package sampling

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// runPool executes task(i) for i in [0, n) on an ants pool of the given
// size. Submission stops at the first task error or when ctx is done; the
// first error seen is returned after every submitted task has finished.
func runPool(ctx context.Context, size, n int, task func(i int) error) error {
	pool, err := ants.NewPool(size)
	if err != nil {
		return fmt.Errorf("sampling: create pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()

		return firstErr != nil
	}

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			fail(ctx.Err())
			break
		}
		if failed() {
			break
		}
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := task(i); err != nil {
				fail(err)
			}
		}); err != nil {
			wg.Done()
			fail(fmt.Errorf("sampling: submit task %d: %w", i, err))
			break
		}
	}
	wg.Wait()

	return firstErr
}
