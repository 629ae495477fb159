package logger

import "testing"

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) error = %v", mode, err)
		}
		l.With("k", "v").Debug("hello", "n", 1)
	}
}

func TestNewWithLevel(t *testing.T) {
	l, err := NewWithLevel("dev", "warn")
	if err != nil {
		t.Fatalf("NewWithLevel error = %v", err)
	}
	if l.SugaredLogger.Desugar().Core().Enabled(-1) {
		t.Error("debug should be disabled at warn level")
	}
	if _, err := NewWithLevel("dev", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNop(t *testing.T) {
	Nop().Error("discarded", "k", "v")
}
