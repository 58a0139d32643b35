//go:build unix

package editor

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// enterRaw puts fd into raw mode for character-at-a-time reads with
// local echo disabled, so the editor can do its own echoing (spec.md
// §4.E). It is the parent's own stdin being configured here, not a PTY
// slave, so there is no line discipline to preserve for a child — the
// child shell reads from its own FIFO, never from this descriptor.
// Returns the previous termios for restoreTerm, or nil if fd is not a
// terminal (redirected input is left untouched).
func enterRaw(fd int) (*unix.Termios, error) {
	if !isatty.IsTerminal(uintptr(fd)) {
		return nil, nil
	}

	old, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	saved := *old

	raw := *old
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}
	return &saved, nil
}

// restoreTerm writes back the termios enterRaw captured. A nil old is
// a no-op, matching enterRaw's non-terminal case.
func restoreTerm(fd int, old *unix.Termios) error {
	if old == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, old)
}
