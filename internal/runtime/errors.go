package runtime

import "errors"

// ErrConfigInvalid marks a startup-time configuration problem (spec.md
// §7: fatal at startup, message to stderr, exit 1).
var ErrConfigInvalid = errors.New("runtime: configuration invalid")
