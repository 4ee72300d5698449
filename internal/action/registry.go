// Package action holds the command registry and the executors behind it.
package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/mj1618/pcremote/internal/model"
)

// Category groups commands by the kind of effect they have.
type Category string

const (
	CategoryPower      Category = "power"
	CategoryWindow     Category = "window"
	CategoryPlayback   Category = "playback"
	CategoryAudio      Category = "audio"
	CategoryNavigation Category = "navigation"
	CategorySmart      Category = "smart"
)

// Handler executes one command. A returned error means an OS primitive
// failed unexpectedly; expected failures are reported through the result.
type Handler interface {
	Execute(ctx context.Context, param string) (model.ActionResult, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, param string) (model.ActionResult, error)

func (f HandlerFunc) Execute(ctx context.Context, param string) (model.ActionResult, error) {
	return f(ctx, param)
}

// Entry is one registered command.
type Entry struct {
	Name          string   `yaml:"name"                  json:"name"`
	Category      Category `yaml:"category"              json:"category"`
	Parameterized bool     `yaml:"parameterized,omitempty" json:"parameterized,omitempty"`
	Description   string   `yaml:"description"           json:"description"`
	Handler       Handler  `yaml:"-"                     json:"-"`
}

// Registry maps command names to handlers. It is built once and then only read.
type Registry struct {
	entries map[string]Entry
	order   []string
}

// NewEmptyRegistry returns a registry with no commands.
func NewEmptyRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds e. Names must be unique and non-empty.
func (r *Registry) Register(e Entry) error {
	if e.Name == "" {
		return errors.New("command name must not be empty")
	}
	if e.Handler == nil {
		return fmt.Errorf("command %s has no handler", e.Name)
	}
	if _, dup := r.entries[e.Name]; dup {
		return fmt.Errorf("command %s already registered", e.Name)
	}
	r.entries[e.Name] = e
	r.order = append(r.order, e.Name)
	return nil
}

// Lookup finds an entry by exact, case-sensitive name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.order) }

// NewRegistry builds the full command table backed by e.
func NewRegistry(e *Executor) *Registry {
	r := NewEmptyRegistry()
	add := func(name string, cat Category, desc string, h HandlerFunc) {
		r.mustRegister(Entry{Name: name, Category: cat, Description: desc, Handler: h})
	}
	addParam := func(name string, cat Category, desc string, h HandlerFunc) {
		r.mustRegister(Entry{Name: name, Category: cat, Parameterized: true, Description: desc, Handler: h})
	}

	add("PC_WAKE", CategoryPower, "Wake the PC by moving the cursor", e.Wake)
	add("PC_SLEEP", CategoryPower, "Suspend the PC", e.Sleep)
	add("DISPLAY_ON", CategoryPower, "Turn the monitors on", e.DisplayOn)
	add("DISPLAY_OFF", CategoryPower, "Turn the monitors off", e.DisplayOff)

	add("BROWSER_FOCUS", CategoryWindow, "Bring the browser window to the foreground", e.Focus)
	add("BROWSER_MOVE_TV", CategoryWindow, "Move the browser window to fill the TV monitor", e.MoveToTV)
	addParam("BROWSER_MOVE_MONITOR", CategoryWindow, "Move the browser window to fill the monitor at the given index", e.MoveToMonitor)
	add("BROWSER_MAXIMIZE", CategoryWindow, "Maximize the browser window", e.showState("BROWSER_MAXIMIZE", showMaximize))
	add("BROWSER_MINIMIZE", CategoryWindow, "Minimize the browser window", e.showState("BROWSER_MINIMIZE", showMinimize))
	add("BROWSER_CLOSE", CategoryWindow, "Close the browser window", e.Close)
	add("BROWSER_RESTORE", CategoryWindow, "Start a browser restoring its last session", e.RestoreSession)

	for _, s := range playbackShortcuts {
		add(s.name, CategoryPlayback, s.desc, e.shortcut(s.name, s.mods, s.key))
	}

	add("VOLUME_UP", CategoryAudio, "Raise system volume one step", e.systemKey("VOLUME_UP", keyVolumeUp))
	add("VOLUME_DOWN", CategoryAudio, "Lower system volume one step", e.systemKey("VOLUME_DOWN", keyVolumeDown))
	add("VOLUME_MUTE", CategoryAudio, "Toggle system mute", e.systemKey("VOLUME_MUTE", keyVolumeMute))
	add("VOLUME_UNMUTE", CategoryAudio, "Toggle system mute", e.systemKey("VOLUME_UNMUTE", keyVolumeMute))
	add("VOLUME_TOGGLE_MUTE", CategoryAudio, "Toggle system mute", e.systemKey("VOLUME_TOGGLE_MUTE", keyVolumeMute))
	addParam("VOLUME_SET", CategoryAudio, "Set system volume to an approximate percentage (0-100)", e.SetVolume)
	add("MEDIA_PLAY_PAUSE", CategoryAudio, "Press the system play/pause media key", e.systemKey("MEDIA_PLAY_PAUSE", keyMediaPlayPause))
	add("MEDIA_NEXT", CategoryAudio, "Press the system next-track media key", e.systemKey("MEDIA_NEXT", keyMediaNext))
	add("MEDIA_PREVIOUS", CategoryAudio, "Press the system previous-track media key", e.systemKey("MEDIA_PREVIOUS", keyMediaPrev))

	for _, s := range navigationShortcuts {
		add(s.name, CategoryNavigation, s.desc, e.shortcut(s.name, s.mods, s.key))
	}
	addParam("BROWSER_OPEN_URL", CategoryNavigation, "Open an http(s) URL in the default browser", e.OpenURL)

	add("SMART_KILL", CategorySmart, "Pause, leave fullscreen and minimize the browser", e.SmartKill)
	add("SMART_TV_MODE", CategorySmart, "Move the browser to the TV, focus it and go fullscreen", e.SmartTVMode)

	return r
}

func (r *Registry) mustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}
