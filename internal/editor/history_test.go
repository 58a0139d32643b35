package editor

import (
	"path/filepath"
	"testing"
)

func TestHistoryAddCapsAtMax(t *testing.T) {
	h := NewHistory(2)
	h.Add("one")
	h.Add("two")
	h.Add("three")

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if v, _ := h.At(0); v != "two" {
		t.Errorf("At(0) = %q, want %q", v, "two")
	}
	if v, _ := h.At(1); v != "three" {
		t.Errorf("At(1) = %q, want %q", v, "three")
	}
}

func TestHistorySaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyc_history")

	h := NewHistory(10)
	h.Add("touch foo")
	h.Add("ls -la")
	if err := h.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadHistory(path, 10)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", loaded.Len())
	}
	if v, _ := loaded.At(0); v != "touch foo" {
		t.Errorf("At(0) = %q, want %q", v, "touch foo")
	}
}

func TestLoadHistoryMissingFileIsEmpty(t *testing.T) {
	h, err := LoadHistory(filepath.Join(t.TempDir(), "nope"), 10)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for a missing history file", h.Len())
	}
}

func TestExpandRecallSubstitutesOneIndexed(t *testing.T) {
	h := NewHistory(10)
	h.Add("touch foo")
	h.Add("ls -la")

	if got := h.ExpandRecall("!1"); got != "touch foo" {
		t.Errorf("ExpandRecall(!1) = %q, want %q", got, "touch foo")
	}
	if got := h.ExpandRecall("!2"); got != "ls -la" {
		t.Errorf("ExpandRecall(!2) = %q, want %q", got, "ls -la")
	}
}

func TestExpandRecallOutOfRangeLeftUnchanged(t *testing.T) {
	h := NewHistory(10)
	h.Add("touch foo")

	if got := h.ExpandRecall("!9"); got != "!9" {
		t.Errorf("ExpandRecall(!9) = %q, want unchanged", got)
	}
}

func TestExpandRecallNonRecallLineLeftUnchanged(t *testing.T) {
	h := NewHistory(10)
	h.Add("touch foo")

	if got := h.ExpandRecall("echo hi"); got != "echo hi" {
		t.Errorf("ExpandRecall() = %q, want unchanged", got)
	}
}
