package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	WindowManager WindowManager
	Processes     ProcessNamer
	Inputter      Inputter
	Power         PowerController
	Launcher      Launcher
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("pcremote is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// Validate reports the first missing backend.
func (p *Provider) Validate() error {
	switch {
	case p.WindowManager == nil:
		return fmt.Errorf("window management not available on this platform")
	case p.Processes == nil:
		return fmt.Errorf("process lookup not available on this platform")
	case p.Inputter == nil:
		return fmt.Errorf("input simulation not available on this platform")
	case p.Power == nil:
		return fmt.Errorf("power control not available on this platform")
	case p.Launcher == nil:
		return fmt.Errorf("program launching not available on this platform")
	}
	return nil
}
