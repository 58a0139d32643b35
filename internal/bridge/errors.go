package bridge

import "errors"

// Sentinel errors for the five failure kinds spec.md §4.C documents.
// MalformedSentinel is non-fatal by construction: callers observe it
// through logging, not a returned error, since the bridge recovers from
// it by itself (state forced back to Idle).
var (
	ErrWriteFailed       = errors.New("bridge: write to shell stdin failed")
	ErrReadFailed        = errors.New("bridge: read from shell output failed")
	ErrProcessTerminated = errors.New("bridge: shell process has terminated")
	ErrMalformedSentinel = errors.New("bridge: sentinel frame matched nonce but failed to parse")
	ErrShellSpawnFailed  = errors.New("bridge: failed to spawn shell process")
)
