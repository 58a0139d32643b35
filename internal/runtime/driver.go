// Package runtime drives Pyc's three execution modes (spec.md §4.F),
// wiring the translator, I/O processor, bridge, prompt renderer, and
// line editor together on a single cooperative loop.
package runtime

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/nick/pyc/internal/bridge"
	"github.com/nick/pyc/internal/config"
	"github.com/nick/pyc/internal/editor"
	"github.com/nick/pyc/internal/ioproc"
	"github.com/nick/pyc/internal/prompt"
	"github.com/nick/pyc/internal/translit"
)

// Options carries the process's real standard streams (or test
// doubles backed by os.Pipe) into a Driver.
type Options struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// Driver owns one bridged shell session and the components needed to
// run it in any of the three modes.
type Driver struct {
	log     *slog.Logger
	cfg     *config.Config
	lang    translit.Language
	proc    *ioproc.Processor
	shell   *bridge.ShellProc
	render  *prompt.Renderer
	aliases map[string]string

	stdin  *os.File
	stdout *os.File
	stderr *os.File

	ed *editor.Editor
}

// New resolves the configured language, spawns the bridge, and
// assembles the rest of the driver's collaborators.
func New(log *slog.Logger, cfg *config.Config, opts Options) (*Driver, error) {
	lang, err := translit.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	shell, err := bridge.Spawn(log, cfg.Shell.Exec, cfg.Shell.Args)
	if err != nil {
		return nil, err
	}

	aliases := make(map[string]string, len(cfg.Alias))
	for _, a := range cfg.Alias {
		aliases[a.Source] = a.Latin
	}

	return &Driver{
		log:     log,
		cfg:     cfg,
		lang:    lang,
		proc:    ioproc.New(lang),
		shell:   shell,
		render:  prompt.New(cfg.Prompt, lang),
		aliases: aliases,
		stdin:   opts.Stdin,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
	}, nil
}

// RunInteractive is the Interactive mode loop (spec.md §4.F): render
// prompt, read a line, translate and resolve aliases, submit, drain
// while SubprocessRunning, repeat until Terminated or user quit.
func (d *Driver) RunInteractive() (int, error) {
	histPath, err := config.HistoryPath()
	if err != nil {
		histPath = ""
	}
	hist, err := editor.LoadHistory(histPath, d.cfg.Prompt.HistorySize)
	if err != nil {
		d.log.Warn("history load failed", "err", err)
		hist = editor.NewHistory(d.cfg.Prompt.HistorySize)
	}

	ed := editor.New(d.stdin, d.stdout, d.proc, hist)
	if err := ed.Start(); err != nil {
		return 1, err
	}
	d.ed = ed

	defer func() {
		ed.Stop()
		if histPath != "" {
			if err := hist.Save(histPath); err != nil {
				d.log.Warn("history save failed", "err", err)
			}
		}
		d.shell.Close()
	}()

	var hasRun bool
	var lastExit int
	var lastElapsed time.Duration
	cwd, _ := os.Getwd()
	user := os.Getenv("USER")
	host, _ := os.Hostname()

	for {
		promptLine := d.render.Render(prompt.Input{
			User:     user,
			Hostname: host,
			Wrkdir:   cwd,
			ExitCode: lastExit,
			Elapsed:  lastElapsed,
			HasRun:   hasRun,
		})

		res, err := ed.ReadLine(promptLine)
		if err != nil {
			return 1, err
		}
		if res.Quit {
			return 0, nil
		}
		if res.Cancelled {
			continue
		}

		line := strings.TrimSpace(res.Line)
		if line == "" {
			continue
		}

		latin := resolveAlias(d.aliases, d.proc.ExpressionToLatin(line))
		if err := d.shell.Submit(latin); err != nil {
			d.log.Warn("submit failed", "err", err)
			continue
		}

		start := time.Now()
		if err := d.drain(); err != nil {
			return 255, err
		}
		lastElapsed = time.Since(start)

		props := d.shell.Props()
		lastExit = props.ExitStatus
		if props.Cwd != "" {
			cwd = props.Cwd
		}
		hasRun = true

		// The shell process itself exiting (e.g. the user ran "exit")
		// ends the interactive session cleanly; spec.md §6 reserves the
		// child's exit status for oneshot/file modes only.
		if d.shell.State() == bridge.Terminated {
			return 0, nil
		}
	}
}

// RunOneshot submits one command, drains it, and returns the shell's
// recorded exit status (spec.md §4.F "Oneshot").
func (d *Driver) RunOneshot(command string) (int, error) {
	defer d.shell.Close()

	latin := resolveAlias(d.aliases, d.proc.ExpressionToLatin(command))
	if err := d.shell.Submit(latin); err != nil {
		return 255, err
	}
	if err := d.drain(); err != nil {
		return 255, err
	}
	return d.shell.Props().ExitStatus, nil
}

// RunFile submits each line of the script at path in order, aborting
// on the first nonzero exit status (spec.md §4.F "File").
func (d *Driver) RunFile(path string) (int, error) {
	defer d.shell.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		return 1, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	var lastExit int
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		latin := resolveAlias(d.aliases, d.proc.ExpressionToLatin(line))
		if err := d.shell.Submit(latin); err != nil {
			return 255, err
		}
		if err := d.drain(); err != nil {
			return 255, err
		}

		lastExit = d.shell.Props().ExitStatus
		if lastExit != 0 || d.shell.State() == bridge.Terminated {
			break
		}
	}
	return lastExit, nil
}

// drain reads stdout/stderr until the bridge leaves SubprocessRunning,
// writing translated chunks as they arrive and escalating two
// consecutive read failures to a fatal error (spec.md §7 ShellIoError:
// "recoverable once; second consecutive failure ⇒ Terminated").
func (d *Driver) drain() error {
	failures := 0
	for d.shell.State() == bridge.SubprocessRunning {
		out, outErr := d.shell.ReadStdout()
		errBytes, errErr := d.shell.ReadStderr()

		if outErr != nil || errErr != nil {
			failures++
			d.log.Warn("shell io error", "stdoutErr", outErr, "stderrErr", errErr)
			if failures >= 2 {
				return fmt.Errorf("%w", errors.Join(outErr, errErr))
			}
		} else {
			failures = 0
		}

		if len(out) > 0 {
			d.writeTranslated(d.stdout, out)
		}
		if len(errBytes) > 0 {
			d.writeTranslated(d.stderr, errBytes)
		}

		if d.ed != nil {
			if interrupted, pollErr := d.ed.PollInterrupt(); pollErr == nil && interrupted {
				if err := d.shell.Interrupt(); err != nil {
					d.log.Warn("interrupt forward failed", "err", err)
				}
			}
		}

		time.Sleep(2 * time.Millisecond)
	}
	return nil
}

func (d *Driver) writeTranslated(w *os.File, b []byte) {
	text := string(b)
	if d.cfg.Output.Translate {
		text = d.proc.TextToSource(text)
	}
	w.WriteString(text)
}
