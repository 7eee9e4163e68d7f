package cmdctx

import "github.com/cockroachdb/errors"

// ErrWrongListType is returned by AsGraphics and AsCompute when the context records a list type
// that cannot carry the requested commands
var ErrWrongListType = errors.New("command context has the wrong list type")

// ErrContextNotInUse is returned by Manager.Free for a context that is not checked out, usually
// because it has already been finished
var ErrContextNotInUse = errors.New("command context is not in use")
