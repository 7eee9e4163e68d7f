//go:build !debug_cmdkit

package memutils

// DebugEnabled reports whether contract checks are compiled in. It is true when the
// debug_cmdkit build tag is present.
const DebugEnabled = false

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_cmdkit build tag is present
func DebugValidate(validatable Validatable) {
}

// DebugAssert panics with an AssertionError carrying the formatted message when condition is false.
// This method no-ops unless the debug_cmdkit build tag is present.
func DebugAssert(condition bool, format string, args ...any) {
}
