//go:build !linux

package execution

// DebuggerAttached always reports false where no probe exists.
func DebuggerAttached() bool {
	return false
}
