package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"runtime"
)

// ExecLauncher starts programs with os/exec without waiting for them.
type ExecLauncher struct {
	// Opener is the command line used to open URLs; the URL is appended.
	Opener []string
}

// NewExecLauncher returns a launcher with the URL opener for the current OS.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{Opener: defaultOpener(runtime.GOOS)}
}

func defaultOpener(goos string) []string {
	switch goos {
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	case "darwin":
		return []string{"open"}
	default:
		return []string{"xdg-open"}
	}
}

func (l *ExecLauncher) Launch(exe string, args ...string) error {
	cmd := exec.Command(exe, args...)
	if err := cmd.Start(); err != nil {
		// A bare name misses the PATH search; an absolute path misses the file.
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("launch %s: %w", exe, ErrNotFound)
		}
		return fmt.Errorf("launch %s: %w", exe, err)
	}
	// Reap the child in the background; its exit status is irrelevant.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (l *ExecLauncher) OpenURL(url string) error {
	if len(l.Opener) == 0 {
		return fmt.Errorf("no URL opener configured")
	}
	args := append(append([]string{}, l.Opener[1:]...), url)
	return l.Launch(l.Opener[0], args...)
}
