// Package editor implements Pyc's raw-mode line editor (spec.md §4.E):
// character insertion with a live Latin preview, cursor movement,
// history navigation, reverse-incremental search, and the control
// characters the runtime driver expects back (Ctrl-C, Ctrl-D, !{n}
// recall).
package editor

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/sys/unix"

	"github.com/nick/pyc/internal/ioproc"
)

const (
	ctrlA = 1
	ctrlC = 3
	ctrlD = 4
	ctrlE = 5
	ctrlG = 7
	ctrlR = 18
	tab   = 9
	lf    = 10
	cr    = 13
	esc   = 27
	bs8   = 8
	del   = 127
)

// Result is what ReadLine returns for one editing cycle (spec.md
// §4.E).
type Result struct {
	Line      string
	Quit      bool // Ctrl-D on an empty line
	Cancelled bool // Ctrl-C: caller should re-prompt with a blank line
}

// Editor owns the raw terminal session and the line-editing state for
// one interactive run.
type Editor struct {
	inFd int
	in   *os.File
	out  *os.File
	proc *ioproc.Processor
	hist *History

	old *unix.Termios
	buf lineBuffer
}

// New returns an Editor reading from in and echoing to out.
func New(in, out *os.File, proc *ioproc.Processor, hist *History) *Editor {
	return &Editor{inFd: int(in.Fd()), in: in, out: out, proc: proc, hist: hist}
}

// Start acquires raw terminal attributes, capturing the previous state
// for Stop (spec.md §5: "terminal attributes are owned by the line
// editor under scoped acquisition").
func (e *Editor) Start() error {
	old, err := enterRaw(e.inFd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTtyAcquireFailed, err)
	}
	e.old = old
	return nil
}

// Stop restores whatever terminal state Start found. Safe to call
// more than once and safe to call from a deferred signal path.
func (e *Editor) Stop() error {
	if e.old == nil {
		return nil
	}
	err := restoreTerm(e.inFd, e.old)
	e.old = nil
	return err
}

// ReadLine reads one composed line, echoing a live expression_to_latin
// preview as the user types, and returns it once Enter, Ctrl-C, or
// Ctrl-D concludes the edit.
func (e *Editor) ReadLine(prompt string) (Result, error) {
	e.buf.reset()
	histPos := e.hist.Len()
	e.redraw(prompt)

	for {
		r, err := e.readRune()
		if err != nil {
			return Result{}, err
		}

		switch r {
		case cr, lf:
			e.out.WriteString("\r\n")
			line := e.buf.String()
			if line != "" {
				if expanded := e.hist.ExpandRecall(line); expanded != line {
					line = expanded
				} else {
					e.hist.Add(line)
				}
			}
			return Result{Line: line}, nil

		case ctrlC:
			e.buf.reset()
			e.out.WriteString("\r\n")
			return Result{Cancelled: true}, nil

		case ctrlD:
			if len(e.buf.runes) == 0 {
				e.out.WriteString("\r\n")
				return Result{Quit: true}, nil
			}

		case ctrlA:
			e.buf.home()
			e.redraw(prompt)

		case ctrlE:
			e.buf.end()
			e.redraw(prompt)

		case tab:
			e.buf.insert('\t')
			e.redraw(prompt)

		case bs8, del:
			e.buf.deleteBack()
			e.redraw(prompt)

		case ctrlR:
			accepted, err := e.reverseSearch(prompt)
			if err != nil {
				return Result{}, err
			}
			if accepted != nil {
				return *accepted, nil
			}
			e.redraw(prompt)

		case esc:
			action, err := e.readEscape()
			if err != nil {
				return Result{}, err
			}
			switch action {
			case arrowLeft:
				e.buf.left()
			case arrowRight:
				e.buf.right()
			case arrowUp:
				if histPos > 0 {
					histPos--
					if v, ok := e.hist.At(histPos); ok {
						e.buf.setText(v)
					}
				}
			case arrowDown:
				if histPos < e.hist.Len() {
					histPos++
					if v, ok := e.hist.At(histPos); ok {
						e.buf.setText(v)
					} else {
						e.buf.reset()
					}
				}
			}
			e.redraw(prompt)

		default:
			if r >= 32 || r == '\t' {
				e.buf.insert(r)
				e.redraw(prompt)
			}
		}
	}
}

// PollInterrupt makes one non-blocking check for a pending Ctrl-C on
// the input descriptor, for use by a caller driving a subprocess (the
// runtime's drain loop) that needs to notice Ctrl-C without blocking
// on a full line read (spec.md §5: "terminal read (non-blocking...)").
// It mirrors the bridge's own non-blocking-read-plus-EAGAIN shape
// rather than introducing a separate poll(2) call.
func (e *Editor) PollInterrupt() (bool, error) {
	if err := unix.SetNonblock(e.inFd, true); err != nil {
		return false, err
	}
	defer unix.SetNonblock(e.inFd, false)

	var b [1]byte
	n, err := unix.Read(e.inFd, b[:])
	if err != nil {
		if err == unix.EAGAIN {
			return false, nil
		}
		return false, err
	}
	return n > 0 && b[0] == ctrlC, nil
}

// redraw rewrites the current line in place: carriage return, clear
// to end of line, the prompt, the live Latin preview of the buffer,
// then the cursor walked back to its logical position.
func (e *Editor) redraw(prompt string) {
	preview := e.proc.ExpressionToLatin(e.buf.String())
	e.out.WriteString("\r\x1b[K")
	e.out.WriteString(prompt)
	e.out.WriteString(preview)

	tail := len(e.buf.runes) - e.buf.pos
	if tail > 0 {
		previewRunes := []rune(preview)
		back := tail
		if back > len(previewRunes) {
			back = len(previewRunes)
		}
		if back > 0 {
			e.out.WriteString("\x1b[" + itoa(back) + "D")
		}
	}
}

// readRune decodes one UTF-8 rune from raw input, reading the
// continuation bytes a multi-byte lead byte announces.
func (e *Editor) readRune() (rune, error) {
	var lead [1]byte
	if _, err := e.in.Read(lead[:]); err != nil {
		return 0, err
	}
	if lead[0] < 0x80 {
		return rune(lead[0]), nil
	}

	n := utf8.RuneLen(rune(lead[0]))
	if n <= 1 {
		return rune(lead[0]), nil
	}
	buf := make([]byte, n)
	buf[0] = lead[0]
	for i := 1; i < n; i++ {
		var b [1]byte
		if _, err := e.in.Read(b[:]); err != nil {
			return 0, err
		}
		buf[i] = b[0]
	}
	r, _ := utf8.DecodeRune(buf)
	return r, nil
}

type arrow int

const (
	arrowNone arrow = iota
	arrowUp
	arrowDown
	arrowRight
	arrowLeft
)

// readEscape parses an ANSI cursor-key sequence (ESC '[' A/B/C/D),
// mirroring the teacher pack's lineesc handling of the same four
// codes; any other terminator is silently absorbed since pyc has no
// completion or paging to dispatch it to.
func (e *Editor) readEscape() (arrow, error) {
	var b1 [1]byte
	if _, err := e.in.Read(b1[:]); err != nil {
		return arrowNone, err
	}
	if b1[0] != '[' {
		return arrowNone, nil
	}
	for {
		var b2 [1]byte
		if _, err := e.in.Read(b2[:]); err != nil {
			return arrowNone, err
		}
		switch b2[0] {
		case 'A':
			return arrowUp, nil
		case 'B':
			return arrowDown, nil
		case 'C':
			return arrowRight, nil
		case 'D':
			return arrowLeft, nil
		}
		if b2[0] >= '@' && b2[0] <= '~' {
			return arrowNone, nil
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [20]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}
