package stbase64

import "runtime"

// Wipe sets every byte in x to zero.
//
// The decoder uses it to discard partially decoded output so
// that a failed decode never leaves plaintext behind in the
// caller's buffer.
//
//go:noinline
func Wipe(x []byte) {
	for i := range x {
		x[i] = 0
	}
	// Keep the stores from being eliminated as dead.
	runtime.KeepAlive(x)
}
