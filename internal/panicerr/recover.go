package panicerr

import "runtime/debug"

// Recover calls f, converting any panic into a non-nil error return that
// retains the panic value and stack.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = panicError{name: name, e: e, stack: debug.Stack()}
		}
	}()
	return f()
}
