package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
)

// step is one stage of a composite action.
type step struct {
	label string
	run   func(ctx context.Context) error
}

// runSteps executes steps strictly in order with a settle delay between them.
func (e *Executor) runSteps(ctx context.Context, steps []step) error {
	for i, s := range steps {
		if i > 0 {
			if err := e.seq.Settle(ctx); err != nil {
				return err
			}
		}
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.label, err)
		}
	}
	return nil
}

// SmartKill pauses playback, leaves fullscreen and minimizes the window.
func (e *Executor) SmartKill(ctx context.Context, _ string) (model.ActionResult, error) {
	const name = "SMART_KILL"
	return e.withTarget(ctx, name, func(t model.WindowTarget) (model.ActionResult, error) {
		h := platform.Handle(t.Handle)
		err := e.runSteps(ctx, []step{
			{"pause", func(ctx context.Context) error {
				if err := e.seq.FocusWindow(ctx, t); err != nil {
					return err
				}
				return e.seq.PressKey(ctx, platform.KeySpace)
			}},
			{"exit fullscreen", func(ctx context.Context) error {
				return e.seq.PressKey(ctx, platform.KeyEscape)
			}},
			{"minimize", func(ctx context.Context) error {
				return e.wm.Show(h, platform.ShowMinimize)
			}},
		})
		if err != nil {
			return model.ActionResult{}, err
		}
		return model.Executed("%s executed", name), nil
	})
}

// SmartTVMode moves the window onto the TV monitor, focuses it and toggles
// player fullscreen.
func (e *Executor) SmartTVMode(ctx context.Context, _ string) (model.ActionResult, error) {
	const name = "SMART_TV_MODE"
	idx := e.cfg.Targets.MonitorIndex
	return e.withTarget(ctx, name, func(t model.WindowTarget) (model.ActionResult, error) {
		var failed *model.ActionResult
		err := e.runSteps(ctx, []step{
			{"move to monitor", func(context.Context) error {
				res, err := e.placeOnMonitor(t, name, idx)
				if err == nil && !res.Succeeded {
					failed = &res
					return errStopComposite
				}
				return err
			}},
			{"focus", func(ctx context.Context) error {
				return e.seq.FocusWindow(ctx, t)
			}},
			{"fullscreen", func(ctx context.Context) error {
				return e.seq.PressKey(ctx, platform.KeyF)
			}},
		})
		if failed != nil {
			return *failed, nil
		}
		if err != nil {
			return model.ActionResult{}, err
		}
		return model.Executed("%s executed on monitor %d", name, idx), nil
	})
}

var errStopComposite = errors.New("composite stopped")
