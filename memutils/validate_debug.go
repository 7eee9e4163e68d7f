//go:build debug_cmdkit

package memutils

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
)

// DebugEnabled reports whether contract checks are compiled in. It is true when the
// debug_cmdkit build tag is present.
const DebugEnabled = true

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_cmdkit build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// DebugAssert panics with an AssertionError carrying the formatted message when condition is false.
// This method no-ops unless the debug_cmdkit build tag is present.
func DebugAssert(condition bool, format string, args ...any) {
	if !condition {
		panic(cerrors.Wrap(AssertionError, fmt.Sprintf(format, args...)))
	}
}
