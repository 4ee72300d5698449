//go:build windows

package win32

import "golang.org/x/sys/windows"

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	powrprof = windows.NewLazySystemDLL("powrprof.dll")

	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procIsIconic             = user32.NewProc("IsIconic")
	procShowWindow           = user32.NewProc("ShowWindow")
	procSetForegroundWindow  = user32.NewProc("SetForegroundWindow")
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procPostMessageW         = user32.NewProc("PostMessageW")
	procSendMessageW         = user32.NewProc("SendMessageW")
	procEnumDisplayMonitors  = user32.NewProc("EnumDisplayMonitors")
	procSetCursorPos         = user32.NewProc("SetCursorPos")
	procSendInput            = user32.NewProc("SendInput")
	procMapVirtualKeyW       = user32.NewProc("MapVirtualKeyW")

	procSetSuspendState = powrprof.NewProc("SetSuspendState")
)

const (
	swRestore  = 9
	swMaximize = 3
	swMinimize = 6

	hwndTop       = 0
	hwndBroadcast = 0xFFFF
	swpShowWindow = 0x0040

	wmClose        = 0x0010
	wmSysCommand   = 0x0112
	scMonitorPower = 0xF170

	inputMouse    = 0
	inputKeyboard = 1

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
	mouseeventfMove      = 0x0001

	mapvkVkToVsc = 0
)
