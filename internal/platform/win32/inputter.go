//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"github.com/mj1618/pcremote/internal/platform"
)

// keyboardInput mirrors INPUT with a KEYBDINPUT payload, padded to the
// size of the MOUSEINPUT member of the union.
type keyboardInput struct {
	typ uint32
	ki  keybdInput
	_   [8]byte
}

type keybdInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

type mouseInput struct {
	typ uint32
	mi  mouseInputData
}

type mouseInputData struct {
	dx        int32
	dy        int32
	mouseData uint32
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// Inputter implements platform.Inputter with SendInput.
type Inputter struct{}

// NewInputter creates a new Windows inputter.
func NewInputter() *Inputter {
	return &Inputter{}
}

func (inp *Inputter) KeyDown(k platform.Key) error {
	return sendKey(k, 0)
}

func (inp *Inputter) KeyUp(k platform.Key) error {
	return sendKey(k, keyeventfKeyUp)
}

func sendKey(k platform.Key, flags uint32) error {
	scan, _, _ := procMapVirtualKeyW.Call(uintptr(k), mapvkVkToVsc)
	if k.IsExtended() {
		flags |= keyeventfExtendedKey
	}
	in := keyboardInput{
		typ: inputKeyboard,
		ki:  keybdInput{vk: uint16(k), scan: uint16(scan), flags: flags},
	}
	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n != 1 {
		dir := "down"
		if flags&keyeventfKeyUp != 0 {
			dir = "up"
		}
		return fmt.Errorf("send key %s %s: %w", k, dir, err)
	}
	return nil
}

func (inp *Inputter) MoveCursor(x, y int) error {
	r, _, err := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if r == 0 {
		return fmt.Errorf("set cursor position (%d, %d): %w", x, y, err)
	}
	return nil
}

func (inp *Inputter) NudgeCursor() error {
	in := mouseInput{typ: inputMouse, mi: mouseInputData{flags: mouseeventfMove}}
	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n != 1 {
		return fmt.Errorf("send mouse move: %w", err)
	}
	return nil
}
