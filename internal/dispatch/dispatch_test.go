package dispatch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mj1618/pcremote/internal/action"
	"github.com/mj1618/pcremote/internal/config"
	"github.com/mj1618/pcremote/internal/logging"
	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform/platformtest"
	"github.com/mj1618/pcremote/internal/protocol"
)

func noSleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

func newDispatcher(f *platformtest.Fake) *Dispatcher {
	cfg := config.Default()
	exec := action.NewExecutor(action.Deps{
		Provider: f.Provider(),
		Config:   &cfg,
		Logger:   logging.Discard(),
		Sleep:    noSleep,
	})
	return New(action.NewRegistry(exec), logging.Discard())
}

func withBrowser() *platformtest.Fake {
	f := platformtest.New()
	f.AddWindow(42, "Video - Mozilla Firefox", "firefox.exe", 9, true)
	return f
}

func TestHandle_Responses(t *testing.T) {
	tests := []struct {
		name string
		fake *platformtest.Fake
		line string
		want string
	}{
		{"unknown", platformtest.New(), "NOPE", "ERROR:Unknown command NOPE"},
		{"unknown with param", platformtest.New(), "NOPE:1", "ERROR:Unknown command NOPE:1"},
		{"case sensitive", withBrowser(), "browser_maximize", "ERROR:Unknown command browser_maximize"},
		{"empty name", platformtest.New(), ":50", "ERROR:Unknown command :50"},
		{"maximize", withBrowser(), "BROWSER_MAXIMIZE", "STATUS:BROWSER_MAXIMIZE executed"},
		{"maximize no target", platformtest.New(), "BROWSER_MAXIMIZE", "STATUS:BROWSER_MAXIMIZE failed - no browser found"},
		{"param ignored", withBrowser(), "BROWSER_MAXIMIZE:now", "STATUS:BROWSER_MAXIMIZE executed"},
		{"volume", platformtest.New(), "VOLUME_SET:75", "STATUS:VOLUME_SET executed - volume set to ~75%"},
	}
	for _, tt := range tests {
		d := newDispatcher(tt.fake)
		if got := d.Handle(context.Background(), tt.line); got != tt.want {
			t.Errorf("%s: Handle(%q) = %q, want %q", tt.name, tt.line, got, tt.want)
		}
	}
}

func TestHandle_UnknownTouchesNothing(t *testing.T) {
	f := withBrowser()
	d := newDispatcher(f)
	d.Handle(context.Background(), "NOPE")
	if len(f.Recorded()) != 0 {
		t.Errorf("unexpected OS calls: %v", f.Ops())
	}
}

func TestHandle_ExecutionErrorAndPanic(t *testing.T) {
	reg := action.NewEmptyRegistry()
	reg.Register(action.Entry{Name: "BOOM", Handler: action.HandlerFunc(func(context.Context, string) (model.ActionResult, error) {
		return model.ActionResult{}, errors.New("device gone")
	})})
	reg.Register(action.Entry{Name: "PANIC", Handler: action.HandlerFunc(func(context.Context, string) (model.ActionResult, error) {
		panic("nil window")
	})})
	var seen []string
	reg.Register(action.Entry{Name: "ECHO", Parameterized: true, Handler: action.HandlerFunc(func(_ context.Context, p string) (model.ActionResult, error) {
		seen = append(seen, p)
		return model.Executed("ECHO %s", p), nil
	})})
	d := New(reg, logging.Discard())

	ctx := context.Background()
	if got := d.Handle(ctx, "BOOM"); got != "ERROR:BOOM - device gone" {
		t.Errorf("BOOM = %q", got)
	}
	if got := d.Handle(ctx, "PANIC"); got != "ERROR:PANIC - nil window" {
		t.Errorf("PANIC = %q", got)
	}
	if got := d.Handle(ctx, "ECHO:a:b:c"); got != "STATUS:ECHO a:b:c" {
		t.Errorf("ECHO = %q", got)
	}
	if got := d.Handle(ctx, "ECHO"); got != "STATUS:ECHO " {
		t.Errorf("ECHO without param = %q", got)
	}
	if len(seen) != 2 || seen[0] != "a:b:c" || seen[1] != "" {
		t.Errorf("params = %q", seen)
	}
}

// scriptReader yields queued lines, then either blocks with empty reads or
// fails with err.
type scriptReader struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func (s *scriptReader) Next() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) > 0 {
		line := s.lines[0]
		s.lines = s.lines[1:]
		return line, true, nil
	}
	if s.err != nil {
		return "", false, s.err
	}
	return "", false, nil
}

type failWriter struct{}

func (failWriter) WriteLine(string) error { return errors.New("port closed") }

func TestLoop_RespondsInOrderUntilTransportFails(t *testing.T) {
	f := withBrowser()
	var out bytes.Buffer
	r := &scriptReader{
		lines: []string{"BROWSER_MAXIMIZE", "NOPE", "VOLUME_MUTE"},
		err:   io.EOF,
	}
	loop := NewLoop(newDispatcher(f), r, protocol.NewWriter(&out), 0, logging.Discard())

	err := loop.Run(context.Background())
	if !errors.Is(err, ErrTransport) || !errors.Is(err, io.EOF) {
		t.Fatalf("Run err = %v, want ErrTransport wrapping EOF", err)
	}
	want := []string{
		"STATUS:BROWSER_MAXIMIZE executed",
		"ERROR:Unknown command NOPE",
		"STATUS:VOLUME_MUTE executed",
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("responses = %q, want %q", got, want)
	}
}

func TestLoop_FromBytes(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("NOPE\r\n\nVOLUME_SET:50\n")
	loop := NewLoop(newDispatcher(platformtest.New()), protocol.NewReader(in), protocol.NewWriter(&out), 0, logging.Discard())
	if err := loop.Run(context.Background()); !errors.Is(err, ErrTransport) {
		t.Fatalf("Run err = %v", err)
	}
	want := "ERROR:Unknown command NOPE\nSTATUS:VOLUME_SET executed - volume set to ~50%\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestLoop_WriteFailureIsTransport(t *testing.T) {
	r := &scriptReader{lines: []string{"NOPE"}}
	loop := NewLoop(newDispatcher(platformtest.New()), r, failWriter{}, 0, logging.Discard())
	err := loop.Run(context.Background())
	if !errors.Is(err, ErrTransport) || !strings.Contains(err.Error(), "port closed") {
		t.Errorf("Run err = %v", err)
	}
}

func TestLoop_CancelReturnsNil(t *testing.T) {
	r := &scriptReader{}
	loop := NewLoop(newDispatcher(platformtest.New()), r, protocol.NewWriter(io.Discard), 5*time.Millisecond, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run err = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestHandle_Serialized(t *testing.T) {
	var mu sync.Mutex
	active, peak := 0, 0
	reg := action.NewEmptyRegistry()
	reg.Register(action.Entry{Name: "SLOW", Handler: action.HandlerFunc(func(context.Context, string) (model.ActionResult, error) {
		mu.Lock()
		active++
		peak = max(peak, active)
		mu.Unlock()
		time.Sleep(time.Millisecond)
		mu.Lock()
		active--
		mu.Unlock()
		return model.Executed("ok"), nil
	})})
	d := New(reg, logging.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Handle(context.Background(), "SLOW")
		}()
	}
	wg.Wait()
	if peak != 1 {
		t.Errorf("peak concurrency = %d, want 1", peak)
	}
}
