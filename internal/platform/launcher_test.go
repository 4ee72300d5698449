package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOpener(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "rundll32"},
		{"darwin", "open"},
		{"linux", "xdg-open"},
	}
	for _, tt := range tests {
		got := defaultOpener(tt.goos)
		if len(got) == 0 || got[0] != tt.want {
			t.Errorf("defaultOpener(%q) = %v, want %s first", tt.goos, got, tt.want)
		}
	}
}

func TestExecLauncher_MissingExecutable(t *testing.T) {
	l := NewExecLauncher()
	err := l.Launch("pcremote-definitely-not-a-real-binary")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestExecLauncher_MissingAbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chrome.exe")
	err := NewExecLauncher().Launch(path, "--restore-last-session")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for %s, got %v", path, err)
	}
}

func TestExecLauncher_NoOpener(t *testing.T) {
	l := &ExecLauncher{}
	if err := l.OpenURL("https://example.com"); err == nil {
		t.Error("expected error without opener")
	}
}

func TestProcessTable_Self(t *testing.T) {
	name, err := NewProcessTable().ProcessName(os.Getpid())
	if err != nil {
		t.Fatalf("ProcessName(self): %v", err)
	}
	if name == "" {
		t.Error("expected non-empty process name")
	}
}
