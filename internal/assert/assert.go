// Package assert holds invariant checks that are compiled in only for debug
// builds (go build -tags sfdebug). In release builds they cost a branch on a
// constant and a violated invariant is undefined behaviour.
package assert

// True panics with msg when cond is false and checks are enabled.
func True(cond bool, msg string) {
	if Enabled && !cond {
		panic("assertion failed: " + msg)
	}
}
