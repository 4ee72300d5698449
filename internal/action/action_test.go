package action

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mj1618/pcremote/internal/config"
	"github.com/mj1618/pcremote/internal/logging"
	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
	"github.com/mj1618/pcremote/internal/platform/platformtest"
)

func noSleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// newHarness returns a registry over a fake with one Chrome window and two
// monitors.
func newHarness(t *testing.T) (*platformtest.Fake, *Registry) {
	t.Helper()
	f := platformtest.New()
	f.AddWindow(11, "Settings", "explorer.exe", 1, true)
	f.AddWindow(42, "YouTube - Google Chrome", "chrome.exe", 7, true)
	f.Screens = []model.MonitorGeometry{
		{Left: 0, Top: 0, Right: 2560, Bottom: 1440},
		{Left: 2560, Top: 0, Right: 6400, Bottom: 2160},
	}
	return f, newRegistry(f)
}

func newRegistry(f *platformtest.Fake) *Registry {
	return newRegistryWith(f, config.Default())
}

func newRegistryWith(f *platformtest.Fake, cfg config.Config) *Registry {
	exec := NewExecutor(Deps{
		Provider: f.Provider(),
		Config:   &cfg,
		Logger:   logging.Discard(),
		Sleep:    noSleep,
	})
	return NewRegistry(exec)
}

func run(t *testing.T, r *Registry, name, param string) model.ActionResult {
	t.Helper()
	e, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("command %s not registered", name)
	}
	res, err := e.Handler.Execute(context.Background(), param)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}
	return res
}

func countKeys(events []platformtest.Event, op string, key platform.Key) int {
	n := 0
	for _, e := range events {
		if e.Op == op && e.Key == key {
			n++
		}
	}
	return n
}

func TestMaximize_WithTarget(t *testing.T) {
	f, r := newHarness(t)
	res := run(t, r, "BROWSER_MAXIMIZE", "")
	if !res.Succeeded || res.Message != "BROWSER_MAXIMIZE executed" {
		t.Errorf("result = %+v", res)
	}
	ev := f.Recorded()
	if len(ev) != 1 || ev[0].Op != "show" || ev[0].Handle != 42 || ev[0].Detail != "maximize" {
		t.Errorf("events = %v", f.Ops())
	}
}

func TestMaximize_NoTarget(t *testing.T) {
	f := platformtest.New()
	f.AddWindow(11, "Settings", "explorer.exe", 1, true)
	r := newRegistry(f)

	res := run(t, r, "BROWSER_MAXIMIZE", "")
	if res.Succeeded || res.Message != "BROWSER_MAXIMIZE failed - no browser found" {
		t.Errorf("result = %+v", res)
	}
	if len(f.Recorded()) != 0 {
		t.Errorf("no OS calls expected, got %v", f.Ops())
	}
}

func TestWindowStateCommands(t *testing.T) {
	tests := []struct {
		name string
		op   string
	}{
		{"BROWSER_MINIMIZE", "show:minimize"},
		{"BROWSER_CLOSE", "close"},
	}
	for _, tt := range tests {
		f, r := newHarness(t)
		res := run(t, r, tt.name, "")
		if !res.Succeeded || res.Message != tt.name+" executed" {
			t.Errorf("%s: result = %+v", tt.name, res)
		}
		if got := strings.Join(f.Ops(), " "); got != tt.op {
			t.Errorf("%s: events = %s, want %s", tt.name, got, tt.op)
		}
	}
}

func TestFocus_NamesProcess(t *testing.T) {
	f, r := newHarness(t)
	f.Minimized[42] = true
	res := run(t, r, "BROWSER_FOCUS", "")
	if res.Message != "BROWSER_FOCUS executed on chrome.exe" {
		t.Errorf("message = %q", res.Message)
	}
	if got := strings.Join(f.Ops(), " "); got != "show:restore foreground" {
		t.Errorf("events = %s", got)
	}
}

func TestMoveToTV_FillsMonitor(t *testing.T) {
	f, r := newHarness(t)
	res := run(t, r, "BROWSER_MOVE_TV", "")
	if !res.Succeeded || res.Message != "BROWSER_MOVE_TV executed to monitor 1" {
		t.Errorf("result = %+v", res)
	}
	if got := strings.Join(f.Ops(), " "); got != "bounds:2560,0,3840,2160" {
		t.Errorf("events = %s", got)
	}
}

func TestMoveToTV_MissingMonitor(t *testing.T) {
	f, r := newHarness(t)
	f.Screens = f.Screens[:1]
	res := run(t, r, "BROWSER_MOVE_TV", "")
	if res.Succeeded || res.Message != "BROWSER_MOVE_TV failed - monitor 1 not found" {
		t.Errorf("result = %+v", res)
	}
	if len(f.Recorded()) != 0 {
		t.Errorf("no OS calls expected, got %v", f.Ops())
	}
}

func TestMoveToMonitor_Parameter(t *testing.T) {
	f, r := newHarness(t)
	res := run(t, r, "BROWSER_MOVE_MONITOR", "0")
	if !res.Succeeded || res.Message != "BROWSER_MOVE_MONITOR executed to monitor 0" {
		t.Errorf("result = %+v", res)
	}
	if got := strings.Join(f.Ops(), " "); got != "bounds:0,0,2560,1440" {
		t.Errorf("events = %s", got)
	}

	for _, bad := range []string{"", "tv", "-1", "1.5"} {
		res := run(t, r, "BROWSER_MOVE_MONITOR", bad)
		if res.Succeeded {
			t.Errorf("param %q should fail, got %+v", bad, res)
		}
	}
	if res := run(t, r, "BROWSER_MOVE_MONITOR", "5"); res.Message != "BROWSER_MOVE_MONITOR failed - monitor 5 not found" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestRestoreSession_FallsBack(t *testing.T) {
	f, r := newHarness(t)
	f.Missing["chrome.exe"] = true
	res := run(t, r, "BROWSER_RESTORE", "")
	if res.Message != "BROWSER_RESTORE executed - Firefox" {
		t.Errorf("message = %q", res.Message)
	}
	if got := strings.Join(f.Ops(), " "); got != "launch:firefox.exe" {
		t.Errorf("events = %s", got)
	}
}

func TestRestoreSession_MissingFullPathFallsBack(t *testing.T) {
	const chrome = `C:\Program Files\Google\Chrome\Application\chrome.exe`
	f := platformtest.New()
	f.Missing[chrome] = true
	cfg := config.Default()
	cfg.Restore[0].Exe = chrome
	r := newRegistryWith(f, cfg)

	res := run(t, r, "BROWSER_RESTORE", "")
	if !res.Succeeded || res.Message != "BROWSER_RESTORE executed - Firefox" {
		t.Errorf("result = %+v", res)
	}
	if got := strings.Join(f.Ops(), " "); got != "launch:firefox.exe" {
		t.Errorf("events = %s", got)
	}
}

func TestRestoreSession_NothingInstalled(t *testing.T) {
	f, r := newHarness(t)
	for _, exe := range []string{"chrome.exe", "firefox.exe", "msedge.exe"} {
		f.Missing[exe] = true
	}
	res := run(t, r, "BROWSER_RESTORE", "")
	if res.Succeeded || res.Message != "BROWSER_RESTORE failed - no browser found" {
		t.Errorf("result = %+v", res)
	}
}

func TestPowerCommands(t *testing.T) {
	tests := []struct {
		name string
		ops  string
	}{
		{"PC_WAKE", "cursor:100,100 nudge"},
		{"PC_SLEEP", "suspend"},
		{"DISPLAY_ON", "monitor:on cursor:100,100 nudge"},
		{"DISPLAY_OFF", "monitor:off"},
	}
	for _, tt := range tests {
		f, r := newHarness(t)
		res := run(t, r, tt.name, "")
		if !res.Succeeded || res.Message != tt.name+" executed" {
			t.Errorf("%s: result = %+v", tt.name, res)
		}
		if got := strings.Join(f.Ops(), " "); got != tt.ops {
			t.Errorf("%s: events = %s, want %s", tt.name, got, tt.ops)
		}
	}
}

func TestPlaybackShortcuts(t *testing.T) {
	tests := []struct {
		name string
		keys string
	}{
		{"VIDEO_PLAY_PAUSE", "down:space up:space"},
		{"VIDEO_RESTART", "down:home up:home"},
		{"VIDEO_FORWARD", "down:right up:right"},
		{"VIDEO_BACKWARD", "down:left up:left"},
		{"VIDEO_NEXT", "down:shift down:n up:n up:shift"},
		{"BROWSER_BACK", "down:alt down:left up:left up:alt"},
		{"BROWSER_PREV_TAB", "down:ctrl down:shift down:tab up:tab up:shift up:ctrl"},
	}
	for _, tt := range tests {
		f, r := newHarness(t)
		res := run(t, r, tt.name, "")
		if !res.Succeeded {
			t.Errorf("%s: result = %+v", tt.name, res)
		}
		ops := f.Ops()
		if len(ops) == 0 || ops[0] != "foreground" {
			t.Errorf("%s: expected focus first, got %v", tt.name, ops)
			continue
		}
		if got := strings.Join(ops[1:], " "); got != tt.keys {
			t.Errorf("%s: keys = %s, want %s", tt.name, got, tt.keys)
		}
	}
}

func TestShortcut_NoTargetSendsNoKeys(t *testing.T) {
	f := platformtest.New()
	r := newRegistry(f)
	res := run(t, r, "VIDEO_PLAY_PAUSE", "")
	if res.Message != "VIDEO_PLAY_PAUSE failed - no browser found" {
		t.Errorf("message = %q", res.Message)
	}
	if len(f.KeyEvents()) != 0 {
		t.Errorf("unexpected keys: %v", f.Ops())
	}
}

func TestSetVolume_PressCounts(t *testing.T) {
	tests := []struct {
		param string
		level int
		ups   int
	}{
		{"50", 50, 25},
		{"100", 100, 50},
		{"75", 75, 37},
		{"0", 0, 0},
		{"1", 1, 0},
		{"150", 100, 50},
		{"-20", 0, 0},
		{" 60% ", 60, 30},
	}
	for _, tt := range tests {
		f, r := newHarness(t)
		res := run(t, r, "VOLUME_SET", tt.param)
		if !res.Succeeded {
			t.Errorf("VOLUME_SET:%s failed: %+v", tt.param, res)
			continue
		}
		want := "~" + strconv.Itoa(tt.level) + "%"
		if !strings.Contains(res.Message, want) {
			t.Errorf("VOLUME_SET:%s message %q should contain %q", tt.param, res.Message, want)
		}

		events := f.KeyEvents()
		downs := countKeys(events, "down", platform.KeyVolumeDown)
		ups := countKeys(events, "down", platform.KeyVolumeUp)
		if downs != 50 || ups != tt.ups {
			t.Errorf("VOLUME_SET:%s presses down=%d up=%d, want 50/%d", tt.param, downs, ups, tt.ups)
		}
		// All volume-down pairs precede every volume-up pair.
		for i, e := range events {
			if e.Key == platform.KeyVolumeUp {
				for _, later := range events[i:] {
					if later.Key == platform.KeyVolumeDown {
						t.Fatalf("VOLUME_SET:%s volume-down after volume-up", tt.param)
					}
				}
				break
			}
		}
		if len(events) != 2*(50+tt.ups) {
			t.Errorf("VOLUME_SET:%s total events %d", tt.param, len(events))
		}
	}
}

func TestSetVolume_BadParameter(t *testing.T) {
	for _, p := range []string{"", "loud", "5x"} {
		f, r := newHarness(t)
		res := run(t, r, "VOLUME_SET", p)
		if res.Succeeded {
			t.Errorf("VOLUME_SET:%q should fail", p)
		}
		if len(f.Recorded()) != 0 {
			t.Errorf("VOLUME_SET:%q sent events %v", p, f.Ops())
		}
	}
}

// Mute, unmute and toggle are the same OS toggle. This is a known
// approximation: none of them is idempotent.
func TestMuteVariantsShareToggle(t *testing.T) {
	var first string
	for _, name := range []string{"VOLUME_MUTE", "VOLUME_UNMUTE", "VOLUME_TOGGLE_MUTE"} {
		f, r := newHarness(t)
		res := run(t, r, name, "")
		if !res.Succeeded || res.Message != name+" executed" {
			t.Errorf("%s: result = %+v", name, res)
		}
		got := strings.Join(f.Ops(), " ")
		if got != "down:volume_mute up:volume_mute" {
			t.Errorf("%s: events = %s", name, got)
		}
		if first == "" {
			first = got
		} else if got != first {
			t.Errorf("%s differs from VOLUME_MUTE: %s vs %s", name, got, first)
		}
	}
}

func TestSystemKeysNeedNoWindow(t *testing.T) {
	f := platformtest.New()
	r := newRegistry(f)
	res := run(t, r, "MEDIA_PLAY_PAUSE", "")
	if !res.Succeeded {
		t.Errorf("result = %+v", res)
	}
	if got := strings.Join(f.Ops(), " "); got != "down:media_play_pause up:media_play_pause" {
		t.Errorf("events = %s", got)
	}
}

func TestOpenURL(t *testing.T) {
	f, r := newHarness(t)
	res := run(t, r, "BROWSER_OPEN_URL", "https://www.youtube.com/watch?v=abc:def")
	if !res.Succeeded || res.Message != "BROWSER_OPEN_URL executed - www.youtube.com" {
		t.Errorf("result = %+v", res)
	}
	if got := strings.Join(f.Ops(), " "); got != "open:https://www.youtube.com/watch?v=abc:def" {
		t.Errorf("events = %s", got)
	}

	for _, bad := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "not a url"} {
		res := run(t, r, "BROWSER_OPEN_URL", bad)
		if res.Succeeded {
			t.Errorf("BROWSER_OPEN_URL:%q should fail", bad)
		}
	}
}

func TestSmartKill_Sequence(t *testing.T) {
	f, r := newHarness(t)
	res := run(t, r, "SMART_KILL", "")
	if !res.Succeeded || res.Message != "SMART_KILL executed" {
		t.Errorf("result = %+v", res)
	}
	want := "foreground down:space up:space down:escape up:escape show:minimize"
	if got := strings.Join(f.Ops(), " "); got != want {
		t.Errorf("events:\n got %s\nwant %s", got, want)
	}
}

func TestSmartKill_NoTargetIsAtomic(t *testing.T) {
	f := platformtest.New()
	r := newRegistry(f)
	res := run(t, r, "SMART_KILL", "")
	if res.Succeeded || res.Message != "SMART_KILL failed - no browser found" {
		t.Errorf("result = %+v", res)
	}
	if len(f.Recorded()) != 0 {
		t.Errorf("no OS calls expected, got %v", f.Ops())
	}
}

func TestSmartTVMode(t *testing.T) {
	f, r := newHarness(t)
	res := run(t, r, "SMART_TV_MODE", "")
	if !res.Succeeded || res.Message != "SMART_TV_MODE executed on monitor 1" {
		t.Errorf("result = %+v", res)
	}
	want := "bounds:2560,0,3840,2160 foreground down:f up:f"
	if got := strings.Join(f.Ops(), " "); got != want {
		t.Errorf("events:\n got %s\nwant %s", got, want)
	}
}

func TestSmartTVMode_MissingMonitorStopsEarly(t *testing.T) {
	f, r := newHarness(t)
	f.Screens = f.Screens[:1]
	res := run(t, r, "SMART_TV_MODE", "")
	if res.Succeeded || res.Message != "SMART_TV_MODE failed - monitor 1 not found" {
		t.Errorf("result = %+v", res)
	}
	if len(f.Recorded()) != 0 {
		t.Errorf("no OS calls expected, got %v", f.Ops())
	}
}

func TestPrimitiveFailureIsAnError(t *testing.T) {
	f, r := newHarness(t)
	f.FailOn["show"] = errors.New("access is denied")
	e, _ := r.Lookup("BROWSER_MAXIMIZE")
	_, err := e.Handler.Execute(context.Background(), "")
	if err == nil || !strings.Contains(err.Error(), "access is denied") {
		t.Errorf("err = %v", err)
	}
}

func TestShortcut_LogsCombo(t *testing.T) {
	f := platformtest.New()
	f.AddWindow(42, "YouTube - Google Chrome", "chrome.exe", 7, true)
	var buf bytes.Buffer
	cfg := config.Default()
	r := NewRegistry(NewExecutor(Deps{
		Provider: f.Provider(),
		Config:   &cfg,
		Logger:   log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}),
		Sleep:    noSleep,
	}))
	run(t, r, "BROWSER_PREV_TAB", "")
	if !strings.Contains(buf.String(), "ctrl+shift+tab") {
		t.Errorf("log output missing combo:\n%s", buf.String())
	}
}
