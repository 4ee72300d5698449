//go:build windows

package main

import _ "github.com/mj1618/pcremote/internal/platform/win32"
