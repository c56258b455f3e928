//go:build !solverdebug

package assert

func that(cond bool, format string, args ...interface{}) {}
