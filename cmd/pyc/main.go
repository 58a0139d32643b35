// Command pyc is a POSIX shell wrapper that lets its user type commands
// in their own alphabet and read the child shell's output back in it
// (spec.md §1).
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nick/pyc/internal/config"
	"github.com/nick/pyc/internal/runtime"
)

// setupLogger sends pyc's own diagnostic logging to stderr at warn
// level. It never writes to stdout; stderr is shared with the bridged
// shell's forwarded stderr output.
func setupLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func main() {
	os.Exit(run())
}

func run() int {
	cli := ParseCLI()

	if cli.ShowVersion {
		fmt.Println("pyc", version)
		return 0
	}

	log := setupLogger()

	cfg, err := config.Load(cli.ConfigFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pyc: loading config:", err)
		return 1
	}

	if cli.Language != "" {
		cfg.Language = cli.Language
	}
	if cli.Shell != "" {
		cfg.Shell.Exec = cli.Shell
	}

	drv, err := runtime.New(log, cfg, runtime.Options{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		// New can fail on either a bad configuration value (invalid
		// language) or a failed bridge spawn; exitCode already knows how
		// to tell those apart (spec.md §6: 1 for a configuration error,
		// 255 for an internal bridge failure).
		fmt.Fprintln(os.Stderr, "pyc: starting up:", err)
		return exitCode(0, err)
	}

	var code int
	switch {
	case cli.Command != "":
		code, err = drv.RunOneshot(cli.Command)
	case cli.Script != "":
		code, err = drv.RunFile(cli.Script)
	default:
		code, err = drv.RunInteractive()
	}

	if err != nil {
		log.Error("session ended with an error", "err", err)
	}
	return exitCode(code, err)
}

// exitCode applies spec.md §6's exit-code table to a mode function's
// raw return: a config error is always 1, any other error forces a
// nonzero code (255 if the mode didn't already report one), and a nil
// error passes the mode's own code through untouched.
func exitCode(code int, err error) int {
	if err == nil {
		return code
	}
	if errors.Is(err, runtime.ErrConfigInvalid) {
		return 1
	}
	if code == 0 {
		return 255
	}
	return code
}
