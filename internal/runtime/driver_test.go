//go:build unix

package runtime

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nick/pyc/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig() *config.Config {
	return &config.Config{
		Language: "ru",
		Shell:    config.ShellConfig{Exec: "/bin/sh"},
	}
}

// newTestDriver spawns a Driver against a real /bin/sh, capturing
// everything it writes to the stdout pipe. Call collect() after the
// driver is done to close the write end and retrieve the bytes.
func newTestDriver(t *testing.T, cfg *config.Config) (d *Driver, collect func() []byte) {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	var captured bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf := make([]byte, 4096)
		for {
			n, rerr := outR.Read(buf)
			if n > 0 {
				captured.Write(buf[:n])
			}
			if rerr != nil {
				close(done)
				return
			}
		}
	}()
	go func() {
		buf := make([]byte, 4096)
		for {
			if _, rerr := errR.Read(buf); rerr != nil {
				return
			}
		}
	}()

	drv, err := New(discardLogger(), cfg, Options{Stdout: outW, Stderr: errW})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Cleanup(func() {
		outR.Close()
		errR.Close()
	})

	return drv, func() []byte {
		outW.Close()
		errW.Close()
		<-done
		return captured.Bytes()
	}
}

func TestRunOneshotReturnsExitStatus(t *testing.T) {
	d, collect := newTestDriver(t, testConfig())
	defer collect()

	code, err := d.RunOneshot("(exit 3)")
	if err != nil {
		t.Fatalf("RunOneshot: %v", err)
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestRunOneshotTranslatesOutput(t *testing.T) {
	cfg := testConfig()
	cfg.Output.Translate = true
	d, collect := newTestDriver(t, cfg)

	code, err := d.RunOneshot("echo touch")
	if err != nil {
		t.Fatalf("RunOneshot: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	out := collect()
	if !bytes.Contains(out, []byte("тоуч")) {
		t.Errorf("output = %q, want it to contain the transliterated word", out)
	}
}

func TestRunOneshotLeavesOutputUntranslatedByDefault(t *testing.T) {
	d, collect := newTestDriver(t, testConfig())

	if _, err := d.RunOneshot("echo touch"); err != nil {
		t.Fatalf("RunOneshot: %v", err)
	}

	out := collect()
	if !bytes.Contains(out, []byte("touch")) {
		t.Errorf("output = %q, want plain \"touch\" with translation disabled", out)
	}
}

func TestRunOneshotResolvesAlias(t *testing.T) {
	cfg := testConfig()
	cfg.Alias = []config.AliasEntry{{Source: "ll", Latin: "echo aliased"}}
	d, collect := newTestDriver(t, cfg)

	if _, err := d.RunOneshot("ll"); err != nil {
		t.Fatalf("RunOneshot: %v", err)
	}

	out := collect()
	if !bytes.Contains(out, []byte("aliased")) {
		t.Errorf("output = %q, want the alias replacement to have run", out)
	}
}

func TestRunFileAbortsOnFirstNonzeroExit(t *testing.T) {
	d, collect := newTestDriver(t, testConfig())

	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	script := "echo one\n(exit 5)\necho two\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, err := d.RunFile(path)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if code != 5 {
		t.Errorf("exit code = %d, want 5", code)
	}

	out := collect()
	if !bytes.Contains(out, []byte("one")) {
		t.Errorf("output = %q, want it to contain \"one\"", out)
	}
	if bytes.Contains(out, []byte("two")) {
		t.Errorf("output = %q, should not contain \"two\" after abort", out)
	}
}

func TestRunFileRunsAllLinesWhenAllSucceed(t *testing.T) {
	d, collect := newTestDriver(t, testConfig())

	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	script := "echo one\necho two\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, err := d.RunFile(path)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	out := collect()
	if !bytes.Contains(out, []byte("one")) || !bytes.Contains(out, []byte("two")) {
		t.Errorf("output = %q, want both lines", out)
	}
}

func TestRunFileMissingScriptIsConfigError(t *testing.T) {
	d, collect := newTestDriver(t, testConfig())
	defer collect()

	_, err := d.RunFile(filepath.Join(t.TempDir(), "missing.sh"))
	if err == nil {
		t.Fatal("RunFile: want error for a missing script")
	}
}
