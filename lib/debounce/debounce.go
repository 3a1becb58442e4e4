// Package debounce delays a function until calls to it have settled.
package debounce

import (
	"time"

	"github.com/bep/debounce"
)

// New returns debounced, which schedules fn(arg) to run wait after it is called.
// A later call replaces the pending one so only the last argument within a window
// is ever delivered, exactly once, on its own goroutine.
//
// cancel drops the pending invocation, if any. Both functions are safe for
// concurrent use and each New call owns a single timer.
func New[A any](fn func(A), wait time.Duration) (debounced func(A), cancel func()) {
	d := debounce.New(wait)
	debounced = func(arg A) {
		d(func() {
			fn(arg)
		})
	}
	cancel = func() {
		// Replacing the pending call with a no-op is how the underlying
		// debouncer is stopped.
		d(func() {})
	}
	return debounced, cancel
}

// NewFunc is New for functions without arguments.
func NewFunc(fn func(), wait time.Duration) (debounced func(), cancel func()) {
	d, cancel := New(func(struct{}) { fn() }, wait)
	return func() { d(struct{}{}) }, cancel
}
