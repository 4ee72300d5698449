// Package platformtest provides an in-memory platform backend that records
// every operation in order, for use in tests.
package platformtest

import (
	"fmt"
	"sync"

	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
)

// Event is one recorded platform operation.
type Event struct {
	Op     string
	Key    platform.Key
	Handle platform.Handle
	Detail string
}

func (e Event) String() string {
	switch e.Op {
	case "down", "up":
		return e.Op + ":" + e.Key.String()
	case "":
		return "?"
	}
	if e.Detail != "" {
		return e.Op + ":" + e.Detail
	}
	return e.Op
}

// Fake implements every platform interface and records calls.
type Fake struct {
	mu sync.Mutex

	Windows   []platform.Window
	Processes map[int]string
	Screens   []model.MonitorGeometry
	Minimized map[platform.Handle]bool
	// Missing names executables Launch reports as not found.
	Missing map[string]bool

	// Failure injection: the named operation returns this error.
	FailOn  map[string]error
	FailKey map[platform.Key]error

	Events []Event
}

// New returns an empty Fake.
func New() *Fake {
	return &Fake{
		Processes: make(map[int]string),
		Minimized: make(map[platform.Handle]bool),
		Missing:   make(map[string]bool),
		FailOn:    make(map[string]error),
		FailKey:   make(map[platform.Key]error),
	}
}

// Provider wraps the fake as a platform.Provider.
func (f *Fake) Provider() *platform.Provider {
	return &platform.Provider{
		WindowManager: f,
		Processes:     f,
		Inputter:      f,
		Power:         f,
		Launcher:      f,
	}
}

// AddWindow registers a window owned by process exe.
func (f *Fake) AddWindow(h platform.Handle, title, exe string, pid int, visible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Windows = append(f.Windows, platform.Window{Handle: h, Title: title, Visible: visible, PID: pid})
	if exe != "" {
		f.Processes[pid] = exe
	}
}

// Recorded returns a copy of the event log.
func (f *Fake) Recorded() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.Events))
	copy(out, f.Events)
	return out
}

// Ops returns the event log rendered as strings.
func (f *Fake) Ops() []string {
	events := f.Recorded()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.String()
	}
	return out
}

// KeyEvents returns only the key down/up events.
func (f *Fake) KeyEvents() []Event {
	var out []Event
	for _, e := range f.Recorded() {
		if e.Op == "down" || e.Op == "up" {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears the event log.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Events = nil
}

func (f *Fake) record(e Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.FailOn[e.Op]; err != nil {
		return err
	}
	f.Events = append(f.Events, e)
	return nil
}

func (f *Fake) ListWindows() ([]platform.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.FailOn["list"]; err != nil {
		return nil, err
	}
	out := make([]platform.Window, len(f.Windows))
	copy(out, f.Windows)
	return out, nil
}

func (f *Fake) ProcessName(pid int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.Processes[pid]
	if !ok {
		return "", fmt.Errorf("process %d not found", pid)
	}
	return name, nil
}

func (f *Fake) IsMinimized(h platform.Handle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Minimized[h]
}

func (f *Fake) Show(h platform.Handle, state platform.ShowState) error {
	if err := f.record(Event{Op: "show", Handle: h, Detail: state.String()}); err != nil {
		return err
	}
	f.mu.Lock()
	f.Minimized[h] = state == platform.ShowMinimize
	f.mu.Unlock()
	return nil
}

func (f *Fake) SetForeground(h platform.Handle) error {
	return f.record(Event{Op: "foreground", Handle: h})
}

func (f *Fake) SetBounds(h platform.Handle, b platform.Bounds) error {
	return f.record(Event{Op: "bounds", Handle: h, Detail: fmt.Sprintf("%d,%d,%d,%d", b.X, b.Y, b.Width, b.Height)})
}

func (f *Fake) Close(h platform.Handle) error {
	return f.record(Event{Op: "close", Handle: h})
}

func (f *Fake) Monitors() ([]model.MonitorGeometry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.FailOn["monitors"]; err != nil {
		return nil, err
	}
	out := make([]model.MonitorGeometry, len(f.Screens))
	copy(out, f.Screens)
	return out, nil
}

func (f *Fake) KeyDown(k platform.Key) error {
	f.mu.Lock()
	err := f.FailKey[k]
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.record(Event{Op: "down", Key: k})
}

func (f *Fake) KeyUp(k platform.Key) error {
	return f.record(Event{Op: "up", Key: k})
}

func (f *Fake) MoveCursor(x, y int) error {
	return f.record(Event{Op: "cursor", Detail: fmt.Sprintf("%d,%d", x, y)})
}

func (f *Fake) NudgeCursor() error {
	return f.record(Event{Op: "nudge"})
}

func (f *Fake) Suspend() error {
	return f.record(Event{Op: "suspend"})
}

func (f *Fake) SetMonitorPower(on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	return f.record(Event{Op: "monitor", Detail: state})
}

func (f *Fake) Launch(exe string, args ...string) error {
	f.mu.Lock()
	missing := f.Missing[exe]
	f.mu.Unlock()
	if missing {
		return fmt.Errorf("launch %s: %w", exe, platform.ErrNotFound)
	}
	return f.record(Event{Op: "launch", Detail: exe})
}

func (f *Fake) OpenURL(url string) error {
	return f.record(Event{Op: "open", Detail: url})
}
