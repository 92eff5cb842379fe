//go:build retsudebug

package retsu

// debug enables precondition checks on unchecked accessors.
const debug = true

func assertf(cond bool, msg string) {
	if !cond {
		panic("retsu: assertion failed: " + msg)
	}
}
