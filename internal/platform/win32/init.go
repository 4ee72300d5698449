//go:build windows

package win32

import "github.com/mj1618/pcremote/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			WindowManager: NewWindowManager(),
			Processes:     platform.NewProcessTable(),
			Inputter:      NewInputter(),
			Power:         NewPowerController(),
			Launcher:      platform.NewExecLauncher(),
		}, nil
	}
}
