package platform

import (
	"errors"

	"github.com/mj1618/pcremote/internal/model"
)

// WindowManager enumerates and manipulates top-level windows.
type WindowManager interface {
	// ListWindows returns every top-level window in OS enumeration order.
	ListWindows() ([]Window, error)
	IsMinimized(h Handle) bool
	Show(h Handle, state ShowState) error
	SetForeground(h Handle) error
	// SetBounds moves and resizes the window and brings it to the top.
	SetBounds(h Handle, b Bounds) error
	Close(h Handle) error
	// Monitors returns monitor rectangles in OS enumeration order.
	Monitors() ([]model.MonitorGeometry, error)
}

// ProcessNamer resolves a process id to its executable name.
type ProcessNamer interface {
	ProcessName(pid int) (string, error)
}

// Inputter injects synthetic keyboard and mouse events.
type Inputter interface {
	KeyDown(k Key) error
	KeyUp(k Key) error
	MoveCursor(x, y int) error
	// NudgeCursor emits a relative mouse move, enough to wake a display.
	NudgeCursor() error
}

// PowerController controls system sleep and monitor power.
type PowerController interface {
	Suspend() error
	SetMonitorPower(on bool) error
}

// Launcher starts external programs and opens URLs.
type Launcher interface {
	Launch(exe string, args ...string) error
	OpenURL(url string) error
}

// ErrNotFound is wrapped by Launcher.Launch when the executable does not exist.
var ErrNotFound = errors.New("executable not found")
