package editor

import "errors"

var (
	// ErrTtyAcquireFailed marks a raw-mode ioctl failure on a real
	// terminal descriptor (spec.md §7: fatal in interactive mode,
	// cooked fallback elsewhere).
	ErrTtyAcquireFailed = errors.New("editor: failed to acquire raw terminal mode")
	// ErrHistoryIO marks a failure loading or persisting the history
	// file (spec.md §7: logged, interactive loop continues).
	ErrHistoryIO = errors.New("editor: history file read or write failed")
)
