package descriptor

import "github.com/cockroachdb/errors"

// ErrDescriptorHeapExhausted is returned when a commit needs more descriptors than remain in the
// context's GPU-visible heap segment. The work recorded so far cannot be completed and callers
// should treat it as an out-of-memory condition.
var ErrDescriptorHeapExhausted = errors.New("dynamic descriptor heap exhausted")
