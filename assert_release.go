//go:build !retsudebug

package retsu

const debug = false

func assertf(bool, string) {}
