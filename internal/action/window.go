package action

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
)

func (e *Executor) Focus(ctx context.Context, _ string) (model.ActionResult, error) {
	return e.withTarget(ctx, "BROWSER_FOCUS", func(t model.WindowTarget) (model.ActionResult, error) {
		if err := e.seq.FocusWindow(ctx, t); err != nil {
			return model.ActionResult{}, err
		}
		return model.Executed("BROWSER_FOCUS executed on %s", t.Process), nil
	})
}

func (e *Executor) MoveToTV(ctx context.Context, _ string) (model.ActionResult, error) {
	return e.moveToMonitor(ctx, "BROWSER_MOVE_TV", e.cfg.Targets.MonitorIndex)
}

// MoveToMonitor takes the monitor index as its parameter.
func (e *Executor) MoveToMonitor(ctx context.Context, param string) (model.ActionResult, error) {
	const name = "BROWSER_MOVE_MONITOR"
	raw := strings.TrimSpace(param)
	if raw == "" {
		return model.Failed("%s failed - missing monitor index", name), nil
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return model.Failed("%s failed - invalid monitor index %q", name, param), nil
	}
	return e.moveToMonitor(ctx, name, idx)
}

func (e *Executor) moveToMonitor(ctx context.Context, name string, idx int) (model.ActionResult, error) {
	return e.withTarget(ctx, name, func(t model.WindowTarget) (model.ActionResult, error) {
		res, err := e.placeOnMonitor(t, name, idx)
		if err != nil || !res.Succeeded {
			return res, err
		}
		return model.Executed("%s executed to monitor %d", name, idx), nil
	})
}

// placeOnMonitor resizes t to exactly fill monitor idx.
func (e *Executor) placeOnMonitor(t model.WindowTarget, name string, idx int) (model.ActionResult, error) {
	monitors, err := e.wm.Monitors()
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("enumerate monitors: %w", err)
	}
	if idx >= len(monitors) {
		return model.Failed("%s failed - monitor %d not found", name, idx), nil
	}
	m := monitors[idx]
	h := platform.Handle(t.Handle)
	if e.wm.IsMinimized(h) {
		if err := e.wm.Show(h, platform.ShowRestore); err != nil {
			return model.ActionResult{}, err
		}
	}
	if err := e.wm.SetBounds(h, platform.Bounds{X: m.Left, Y: m.Top, Width: m.Width(), Height: m.Height()}); err != nil {
		return model.ActionResult{}, err
	}
	return model.Executed("%s executed", name), nil
}

func (e *Executor) showState(name string, state platform.ShowState) HandlerFunc {
	return func(ctx context.Context, _ string) (model.ActionResult, error) {
		return e.withTarget(ctx, name, func(t model.WindowTarget) (model.ActionResult, error) {
			if err := e.wm.Show(platform.Handle(t.Handle), state); err != nil {
				return model.ActionResult{}, err
			}
			return model.Executed("%s executed", name), nil
		})
	}
}

func (e *Executor) Close(ctx context.Context, _ string) (model.ActionResult, error) {
	return e.withTarget(ctx, "BROWSER_CLOSE", func(t model.WindowTarget) (model.ActionResult, error) {
		if err := e.wm.Close(platform.Handle(t.Handle)); err != nil {
			return model.ActionResult{}, err
		}
		return model.Executed("BROWSER_CLOSE executed"), nil
	})
}

// RestoreSession starts the configured browsers in order with their
// restore flags; the first one that starts wins.
func (e *Executor) RestoreSession(ctx context.Context, _ string) (model.ActionResult, error) {
	for _, spec := range e.cfg.Restore {
		err := e.launch.Launch(spec.Exe, spec.Args...)
		if errors.Is(err, platform.ErrNotFound) {
			e.logger.Debug("restore candidate not installed", "exe", spec.Exe)
			continue
		}
		if err != nil {
			return model.ActionResult{}, err
		}
		label := spec.Name
		if label == "" {
			label = spec.Exe
		}
		return model.Executed("BROWSER_RESTORE executed - %s", label), nil
	}
	return model.Failed("BROWSER_RESTORE failed - no browser found"), nil
}
