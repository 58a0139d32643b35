package bridge

import (
	"strconv"
	"strings"
)

const (
	stx = 0x02
	etx = 0x03
)

// frameResult is what one scan of the rolling buffer produced.
type frameResult struct {
	// output is the bytes the caller should receive as shell output,
	// with any consumed sentinel frame stripped out.
	output []byte
	// remainder is what must be retained in the rolling buffer for the
	// next read (a sentinel prefix seen but not yet terminated by ETX).
	remainder []byte
	// frame is non-nil when a complete, sentinel-matching frame was
	// consumed this scan.
	frame *sentinelFrame
	// malformed is true when a frame matched the sentinel nonce but its
	// payload could not be parsed (spec.md §4.C: MalformedSentinel).
	malformed bool
}

type sentinelFrame struct {
	exitStatus int
	cwd        string
}

// scanFrame implements the framer described in spec.md §4.C steps 1-4.
// buf is the full rolling buffer (prior remainder plus newly read
// bytes); nonce is the session's sentinel UUID string.
func scanFrame(buf []byte, nonce string) frameResult {
	start := indexByte(buf, stx)
	if start < 0 {
		// No STX anywhere: everything is ordinary output, buffer drained.
		return frameResult{output: buf}
	}

	end := indexByteFrom(buf, etx, start+1)
	if end < 0 {
		// STX seen, ETX not yet: fragmentation. Flush what precedes STX,
		// retain from STX onward.
		return frameResult{output: buf[:start], remainder: buf[start:]}
	}

	payload := string(buf[start+1 : end])
	before := buf[:start]
	after := buf[end+1:]
	passthrough := func() []byte {
		out := append([]byte{}, before...)
		out = append(out, buf[start:end+1]...)
		return append(out, after...)
	}
	consumed := func() []byte {
		out := append([]byte{}, before...)
		return append(out, after...)
	}

	fields := strings.Split(payload, ";")
	last := fields[len(fields)-1]
	if last != nonce {
		// Not our sentinel at all: legitimate shell output that happens
		// to contain an STX...ETX span (spec.md §4.C step 3).
		return frameResult{output: passthrough()}
	}

	// The nonce matches; the frame is ours to consume one way or
	// another, even if it fails to parse (spec.md §4.C "Errors"). A cwd
	// containing ';' only splits further, so the status is taken from
	// before the first separator, the nonce from after the last, and
	// everything between them is rejoined as the cwd.
	if len(fields) < 3 {
		return frameResult{output: consumed(), malformed: true}
	}

	status, err := strconv.Atoi(fields[0])
	if err != nil {
		return frameResult{output: consumed(), malformed: true}
	}
	cwd := strings.Join(fields[1:len(fields)-1], ";")

	return frameResult{
		output: consumed(),
		frame:  &sentinelFrame{exitStatus: status, cwd: cwd},
	}
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func indexByteFrom(b []byte, c byte, from int) int {
	for i := from; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// buildProbe renders the sentinel-emitting probe appended after every
// submitted command (spec.md §4.C). It uses printf's POSIX-portable
// octal escapes (\002, \003) rather than the literal \x02/\x03 notation
// spec.md shows, since plain /bin/sh's echo builtin does not reliably
// interpret hex escapes across shells.
func buildProbe(nonce string) string {
	return ` ; printf '\002%s;%s;` + nonce + `\003' "$?" "$(pwd)"`
}
