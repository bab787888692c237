package ci

import "sync"

// cell is a compute-once container for a value-or-error pair. The first
// resolve runs fn; every later resolve returns the memoized outcome, errors
// included, so a failing VCS or API call is not re-attempted. Concurrent
// first reads issue a single call.
type cell[T any] struct {
	once sync.Once
	val  T
	err  error
}

func (c *cell[T]) resolve(fn func() (T, error)) (T, error) {
	c.once.Do(func() {
		c.val, c.err = fn()
	})
	return c.val, c.err
}
