//go:build windows

package win32

import "fmt"

// PowerController implements platform.PowerController.
type PowerController struct{}

// NewPowerController creates a new Windows power controller.
func NewPowerController() *PowerController {
	return &PowerController{}
}

// Suspend calls SetSuspendState(hibernate=false, force=true, wakeupEventsDisabled=false).
func (pc *PowerController) Suspend() error {
	if err := procSetSuspendState.Find(); err != nil {
		return fmt.Errorf("suspend: %w", err)
	}
	r, _, err := procSetSuspendState.Call(0, 1, 0)
	if r == 0 {
		return fmt.Errorf("suspend: %w", err)
	}
	return nil
}

// SetMonitorPower broadcasts SC_MONITORPOWER; -1 powers on, 2 powers off.
func (pc *PowerController) SetMonitorPower(on bool) error {
	lparam := uintptr(2)
	if on {
		lparam = ^uintptr(0)
	}
	procSendMessageW.Call(hwndBroadcast, wmSysCommand, scMonitorPower, lparam)
	return nil
}
