//go:build solverdebug

package assert

import "fmt"

func that(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("assertion failed: " + fmt.Sprintf(format, args...))
	}
}
