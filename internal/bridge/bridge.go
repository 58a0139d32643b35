// Package bridge owns the child shell process and multiplexes its
// three standard streams over named pipes (spec.md §4.C). It
// deliberately avoids a pseudo-terminal: a PTY's line discipline would
// rewrite or swallow the sentinel-framing bytes the parent depends on
// to detect idleness.
package bridge

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

const readChunk = 8192

// ShellProc is one bridged child shell: the FIFO triple, the sentinel
// nonce, and the rolling state the framer needs across reads.
type ShellProc struct {
	log *slog.Logger

	dir      string
	sentinel string

	cmd *exec.Cmd

	stdinW  *os.File // parent's write end of stdin.fifo
	stdoutR *os.File // parent's read end of stdout.fifo
	stderrR *os.File // parent's read end of stderr.fifo

	state ShellState
	props Props

	pendingStdout []byte
}

// Spawn creates the FIFOs, generates a fresh sentinel nonce, and starts
// the configured shell with its standard streams wired to them
// (spec.md §4.C "Setup").
func Spawn(log *slog.Logger, shellExec string, shellArgs []string) (*ShellProc, error) {
	dir, err := os.MkdirTemp("", "pyc-bridge-")
	if err != nil {
		return nil, wrap(ErrShellSpawnFailed, err)
	}

	stdinPath := filepath.Join(dir, "stdin.fifo")
	stdoutPath := filepath.Join(dir, "stdout.fifo")
	stderrPath := filepath.Join(dir, "stderr.fifo")
	for _, p := range []string{stdinPath, stdoutPath, stderrPath} {
		if err := unix.Mkfifo(p, 0o600); err != nil {
			os.RemoveAll(dir)
			return nil, wrap(ErrShellSpawnFailed, err)
		}
	}

	sp := &ShellProc{
		log:      log,
		dir:      dir,
		sentinel: uuid.New().String(),
		state:    Unknown,
	}

	var opened []*os.File
	fail := func(err error) (*ShellProc, error) {
		for _, f := range opened {
			f.Close()
		}
		sp.cleanupFailedSpawn()
		return nil, wrap(ErrShellSpawnFailed, err)
	}

	// A directional open() on a fresh FIFO blocks until a peer opens the
	// other direction. Forking first (as a C program would, opening the
	// child's ends after fork and before exec) sidesteps this; os/exec
	// has no such hook, so instead each FIFO is briefly opened O_RDWR
	// (which never blocks) purely to guarantee a peer exists, then the
	// real directional ends are opened against that guaranteed peer and
	// the auxiliary handle is closed. This keeps open() reference
	// counting exactly as if a real fork+dup2 had set it up: closing the
	// parent's one write (or read) end later still delivers EOF to the
	// child, which an all-O_RDWR setup would not.
	childStdin, stdinW, err := openDirectionalPair(stdinPath, unix.O_RDONLY, unix.O_WRONLY)
	if err != nil {
		return fail(err)
	}
	opened = append(opened, childStdin, stdinW)

	childStdout, stdoutR, err := openDirectionalPair(stdoutPath, unix.O_WRONLY, unix.O_RDONLY)
	if err != nil {
		return fail(err)
	}
	opened = append(opened, childStdout, stdoutR)

	childStderr, stderrR, err := openDirectionalPair(stderrPath, unix.O_WRONLY, unix.O_RDONLY)
	if err != nil {
		return fail(err)
	}
	opened = append(opened, childStderr, stderrR)

	cmd := exec.Command(shellExec, shellArgs...)
	cmd.Stdin = childStdin
	cmd.Stdout = childStdout
	cmd.Stderr = childStderr
	// Its own process group so Ctrl-C can be forwarded to the whole
	// subprocess tree (spec.md §5 "forwarded as SIGINT to the child
	// process group") without also signaling pyc itself.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return fail(err)
	}

	// The child has its own duplicated copies of these fds now; the
	// parent's references to the child-side ends are no longer needed,
	// and must be closed so the parent isn't also holding open the
	// reference that should drop to zero when the child exits or the
	// parent's own end is closed.
	childStdin.Close()
	childStdout.Close()
	childStderr.Close()

	sp.cmd = cmd
	sp.stdinW = stdinW
	sp.stdoutR = stdoutR
	sp.stderrR = stderrR
	// state stays Unknown until the first Submit (spec.md §3 lifecycle);
	// only ReadStdout observing a sentinel frame moves it to Idle.

	return sp, nil
}

// openDirectionalPair opens one FIFO from both ends: childFlag for the
// blocking end handed to the child process, unix.O_NONBLOCK|parentFlag
// for the end the parent keeps. See the comment in Spawn for why an
// auxiliary O_RDWR handle brokers this without blocking or without a
// fork.
func openDirectionalPair(path string, childFlag, parentFlag int) (childEnd, parentEnd *os.File, err error) {
	auxFd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, nil, err
	}
	defer unix.Close(auxFd)

	childFd, err := unix.Open(path, childFlag, 0)
	if err != nil {
		return nil, nil, err
	}
	parentFd, err := unix.Open(path, parentFlag|unix.O_NONBLOCK, 0)
	if err != nil {
		unix.Close(childFd)
		return nil, nil, err
	}

	return os.NewFile(uintptr(childFd), path), os.NewFile(uintptr(parentFd), path), nil
}

func (sp *ShellProc) cleanupFailedSpawn() {
	os.RemoveAll(sp.dir)
}

// State returns the bridge's current ShellState.
func (sp *ShellProc) State() ShellState { return sp.state }

// Props returns the last exit status and cwd recovered from a sentinel
// frame.
func (sp *ShellProc) Props() Props { return sp.props }

// Submit writes a command followed by the sentinel probe (spec.md
// §4.C "Submitting a command"). State transitions to SubprocessRunning.
func (sp *ShellProc) Submit(command string) error {
	if sp.state == Terminated {
		return ErrProcessTerminated
	}
	// The probe must share the command's own line, joined by the
	// semicolon it starts with: a standalone line beginning with ";"
	// is a shell syntax error, so only a single trailing newline
	// terminates the combined "command ; probe" line.
	line := command + buildProbe(sp.sentinel) + "\n"
	if err := sp.writeAll([]byte(line)); err != nil {
		return err
	}
	sp.state = SubprocessRunning
	return nil
}

// writeAll retries short/EAGAIN writes until the whole buffer is sent
// or a real error occurs.
func (sp *ShellProc) writeAll(b []byte) error {
	fd := int(sp.stdinW.Fd())
	for len(b) > 0 {
		n, err := unix.Write(fd, b)
		if err != nil {
			if err == unix.EAGAIN {
				time.Sleep(time.Millisecond)
				continue
			}
			return wrap(ErrWriteFailed, err)
		}
		b = b[n:]
	}
	return nil
}

// ReadStdout performs one non-blocking read cycle against stdout.fifo,
// running the framer over the accumulated bytes (spec.md §4.C "Reading
// and framing"). It also performs the liveness check every cycle.
func (sp *ShellProc) ReadStdout() ([]byte, error) {
	sp.reapIfExited()

	chunk := make([]byte, readChunk)
	n, err := unix.Read(int(sp.stdoutR.Fd()), chunk)
	if err != nil && err != unix.EAGAIN {
		return nil, wrap(ErrReadFailed, err)
	}

	buf := append(sp.pendingStdout, chunk[:max(n, 0)]...)
	result := scanFrame(buf, sp.sentinel)
	sp.pendingStdout = result.remainder

	if result.malformed {
		sp.log.Warn("malformed sentinel frame, forcing idle", "dir", sp.dir)
		sp.state = Idle
	} else if result.frame != nil {
		sp.props = Props{ExitStatus: result.frame.exitStatus, Cwd: result.frame.cwd}
		sp.state = Idle
	}

	return result.output, nil
}

// ReadStderr drains stderr.fifo; stderr is never sentinel-framed, so
// every byte read is returned as-is.
func (sp *ShellProc) ReadStderr() ([]byte, error) {
	chunk := make([]byte, readChunk)
	n, err := unix.Read(int(sp.stderrR.Fd()), chunk)
	if err != nil && err != unix.EAGAIN {
		return nil, wrap(ErrReadFailed, err)
	}
	return chunk[:max(n, 0)], nil
}

// Interrupt forwards SIGINT to the child's process group (spec.md §5:
// Ctrl-C during SubprocessRunning is not handled in-process). The
// bridge does not change state itself; the next sentinel frame or reap
// observes the effect.
func (sp *ShellProc) Interrupt() error {
	if sp.cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-sp.cmd.Process.Pid, syscall.SIGINT)
}

// reapIfExited performs a non-blocking reap; on a reaped child it
// records the terminal state (spec.md §4.C "Liveness check").
func (sp *ShellProc) reapIfExited() {
	if sp.state == Terminated || sp.cmd.Process == nil {
		return
	}
	var ws unix.WaitStatus
	pid, err := unix.Wait4(sp.cmd.Process.Pid, &ws, unix.WNOHANG, nil)
	if err != nil || pid == 0 {
		return
	}
	sp.state = Terminated
	sp.props.ExitStatus = ws.ExitStatus()
}

// Close tears down the bridge: close the writer (EOF to the shell),
// bounded non-blocking reap, SIGTERM, SIGKILL, then remove the FIFOs
// and temp directory on every path (spec.md §4.C "Teardown").
func (sp *ShellProc) Close() error {
	sp.stdinW.Close()

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		sp.reapIfExited()
		if sp.state == Terminated {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if sp.state != Terminated && sp.cmd.Process != nil {
		sp.cmd.Process.Signal(syscall.SIGTERM)
		deadline = time.Now().Add(500 * time.Millisecond)
		for time.Now().Before(deadline) {
			sp.reapIfExited()
			if sp.state == Terminated {
				break
			}
			time.Sleep(10 * time.Millisecond)
		}
	}

	if sp.state != Terminated && sp.cmd.Process != nil {
		sp.cmd.Process.Signal(syscall.SIGKILL)
		var ws unix.WaitStatus
		unix.Wait4(sp.cmd.Process.Pid, &ws, 0, nil)
		sp.state = Terminated
	}

	sp.stdoutR.Close()
	sp.stderrR.Close()

	return os.RemoveAll(sp.dir)
}

func wrap(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return &bridgeError{kind: kind, cause: cause}
}

type bridgeError struct {
	kind  error
	cause error
}

func (e *bridgeError) Error() string { return e.kind.Error() + ": " + e.cause.Error() }
func (e *bridgeError) Unwrap() error { return e.kind }
