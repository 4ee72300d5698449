package platform

import (
	"fmt"
	"strings"
)

// Handle is an opaque OS window identifier.
type Handle uintptr

// Window is one entry of a raw top-level window enumeration.
type Window struct {
	Handle  Handle
	Title   string
	Visible bool
	PID     int
}

// Bounds represents a screen rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// ShowState is a window show command.
type ShowState int

const (
	ShowRestore ShowState = iota
	ShowMaximize
	ShowMinimize
)

func (s ShowState) String() string {
	switch s {
	case ShowRestore:
		return "restore"
	case ShowMaximize:
		return "maximize"
	case ShowMinimize:
		return "minimize"
	default:
		return fmt.Sprintf("ShowState(%d)", int(s))
	}
}

// Key is a virtual key code. Values follow the Windows virtual-key table.
type Key uint16

const (
	KeyTab            Key = 0x09
	KeyShift          Key = 0x10
	KeyControl        Key = 0x11
	KeyAlt            Key = 0x12
	KeyEscape         Key = 0x1B
	KeySpace          Key = 0x20
	KeyHome           Key = 0x24
	KeyLeft           Key = 0x25
	KeyRight          Key = 0x27
	KeyC              Key = 0x43
	KeyF              Key = 0x46
	KeyN              Key = 0x4E
	KeyT              Key = 0x54
	KeyW              Key = 0x57
	KeyF5             Key = 0x74
	KeyF11            Key = 0x7A
	KeyVolumeMute     Key = 0xAD
	KeyVolumeDown     Key = 0xAE
	KeyVolumeUp       Key = 0xAF
	KeyMediaNext      Key = 0xB0
	KeyMediaPrev      Key = 0xB1
	KeyMediaPlayPause Key = 0xB3
)

var keyNames = map[Key]string{
	KeyTab: "tab", KeyShift: "shift", KeyControl: "ctrl", KeyAlt: "alt",
	KeyEscape: "escape", KeySpace: "space",
	KeyHome: "home", KeyLeft: "left", KeyRight: "right",
	KeyC: "c", KeyF: "f", KeyN: "n", KeyT: "t", KeyW: "w",
	KeyF5: "f5", KeyF11: "f11",
	KeyVolumeMute: "volume_mute", KeyVolumeDown: "volume_down", KeyVolumeUp: "volume_up",
	KeyMediaNext: "media_next", KeyMediaPrev: "media_prev",
	KeyMediaPlayPause: "media_play_pause",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("vk(0x%02X)", uint16(k))
}

// IsExtended reports whether the key sits in the extended scan-code range,
// which matters when injecting navigation and media keys.
func (k Key) IsExtended() bool {
	switch k {
	case KeyHome, KeyLeft, KeyRight,
		KeyVolumeMute, KeyVolumeDown, KeyVolumeUp,
		KeyMediaNext, KeyMediaPrev, KeyMediaPlayPause:
		return true
	}
	return false
}

// FormatCombo renders a key combination like "ctrl+shift+tab".
func FormatCombo(mods []Key, key Key) string {
	parts := make([]string, 0, len(mods)+1)
	for _, m := range mods {
		parts = append(parts, m.String())
	}
	parts = append(parts, key.String())
	return strings.Join(parts, "+")
}
