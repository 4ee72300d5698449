//go:build windows

// Package win32 provides Windows platform support using user32 and powrprof
// through golang.org/x/sys/windows. It registers itself with the platform
// package from init.
package win32
