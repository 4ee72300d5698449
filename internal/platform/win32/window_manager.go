//go:build windows

package win32

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
	"golang.org/x/sys/windows"
)

// Callbacks are created once: windows.NewCallback slots are never released.
var (
	enumMu       sync.Mutex
	enumHandles  []windows.HWND
	enumMonitors []model.MonitorGeometry

	enumWindowsProc = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		enumHandles = append(enumHandles, hwnd)
		return 1
	})
	enumMonitorsProc = windows.NewCallback(func(_ uintptr, _ uintptr, rect *windows.Rect, _ uintptr) uintptr {
		enumMonitors = append(enumMonitors, model.MonitorGeometry{
			Left:   int(rect.Left),
			Top:    int(rect.Top),
			Right:  int(rect.Right),
			Bottom: int(rect.Bottom),
		})
		return 1
	})
)

// WindowManager implements platform.WindowManager with user32.
type WindowManager struct{}

// NewWindowManager creates a new Windows window manager.
func NewWindowManager() *WindowManager {
	return &WindowManager{}
}

func (wm *WindowManager) ListWindows() ([]platform.Window, error) {
	enumMu.Lock()
	enumHandles = enumHandles[:0]
	err := windows.EnumWindows(enumWindowsProc, nil)
	handles := append([]windows.HWND(nil), enumHandles...)
	enumMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("enumerate windows: %w", err)
	}

	out := make([]platform.Window, 0, len(handles))
	for _, hwnd := range handles {
		var pid uint32
		// A window can vanish between enumeration and lookup; keep it with pid 0
		// so the locator drops it on process resolution.
		_, _ = windows.GetWindowThreadProcessId(hwnd, &pid)
		out = append(out, platform.Window{
			Handle:  platform.Handle(hwnd),
			Title:   windowText(hwnd),
			Visible: windows.IsWindowVisible(hwnd),
			PID:     int(pid),
		})
	}
	return out, nil
}

func windowText(hwnd windows.HWND) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	r, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:r])
}

func (wm *WindowManager) IsMinimized(h platform.Handle) bool {
	r, _, _ := procIsIconic.Call(uintptr(h))
	return r != 0
}

func (wm *WindowManager) Show(h platform.Handle, state platform.ShowState) error {
	var cmd uintptr
	switch state {
	case platform.ShowRestore:
		cmd = swRestore
	case platform.ShowMaximize:
		cmd = swMaximize
	case platform.ShowMinimize:
		cmd = swMinimize
	default:
		return fmt.Errorf("unknown show state %s", state)
	}
	// ShowWindow returns the previous visibility, not a status.
	procShowWindow.Call(uintptr(h), cmd)
	return nil
}

func (wm *WindowManager) SetForeground(h platform.Handle) error {
	r, _, err := procSetForegroundWindow.Call(uintptr(h))
	if r == 0 {
		return fmt.Errorf("set foreground window 0x%X: %w", uintptr(h), err)
	}
	return nil
}

func (wm *WindowManager) SetBounds(h platform.Handle, b platform.Bounds) error {
	r, _, err := procSetWindowPos.Call(uintptr(h), hwndTop,
		uintptr(int32(b.X)), uintptr(int32(b.Y)),
		uintptr(int32(b.Width)), uintptr(int32(b.Height)),
		swpShowWindow)
	if r == 0 {
		return fmt.Errorf("set window position 0x%X: %w", uintptr(h), err)
	}
	return nil
}

func (wm *WindowManager) Close(h platform.Handle) error {
	r, _, err := procPostMessageW.Call(uintptr(h), wmClose, 0, 0)
	if r == 0 {
		return fmt.Errorf("post close to window 0x%X: %w", uintptr(h), err)
	}
	return nil
}

func (wm *WindowManager) Monitors() ([]model.MonitorGeometry, error) {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumMonitors = enumMonitors[:0]
	r, _, err := procEnumDisplayMonitors.Call(0, 0, enumMonitorsProc, 0)
	if r == 0 {
		return nil, fmt.Errorf("enumerate monitors: %w", err)
	}
	return append([]model.MonitorGeometry(nil), enumMonitors...), nil
}
