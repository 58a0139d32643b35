package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nick/pyc/internal/bridge"
	"github.com/nick/pyc/internal/runtime"
)

func TestExitCodeNilErrorPassesCodeThrough(t *testing.T) {
	if got := exitCode(3, nil); got != 3 {
		t.Errorf("exitCode(3, nil) = %d, want 3", got)
	}
}

func TestExitCodeConfigErrorIsOne(t *testing.T) {
	err := errors.New("bad language: %w")
	wrapped := errors.Join(runtime.ErrConfigInvalid, err)
	if got := exitCode(0, wrapped); got != 1 {
		t.Errorf("exitCode(0, config error) = %d, want 1", got)
	}
}

func TestExitCodeOtherErrorDefaultsTo255(t *testing.T) {
	if got := exitCode(0, errors.New("boom")); got != 255 {
		t.Errorf("exitCode(0, other error) = %d, want 255", got)
	}
}

func TestExitCodeOtherErrorKeepsNonzeroModeCode(t *testing.T) {
	if got := exitCode(7, errors.New("boom")); got != 7 {
		t.Errorf("exitCode(7, other error) = %d, want 7", got)
	}
}

func TestExitCodeShellSpawnFailureIs255(t *testing.T) {
	wrapped := fmt.Errorf("%w: exec: \"/no/such/shell\": %v", bridge.ErrShellSpawnFailed, errors.New("not found"))
	if got := exitCode(0, wrapped); got != 255 {
		t.Errorf("exitCode(0, shell spawn failure) = %d, want 255", got)
	}
}
