// Package input issues ordered synthetic key sequences to the foreground
// window.
package input

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/pcremote/internal/config"
	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Timing holds the delays the sequencer inserts.
type Timing struct {
	FocusSettle     time.Duration // after bringing a window forward
	KeyDelay        time.Duration // between consecutive events of one combo
	CompositeSettle time.Duration // between steps of a multi-step action
}

// TimingFromConfig extracts the sequencer delays from cfg.
func TimingFromConfig(cfg config.InputConfig) Timing {
	return Timing{
		FocusSettle:     cfg.FocusSettle(),
		KeyDelay:        cfg.KeyDelay(),
		CompositeSettle: cfg.CompositeSettle(),
	}
}

// Sequencer emits key-down/key-up pairs and focus changes in a fixed order.
// Every key it presses is released again before it returns, on every path.
type Sequencer struct {
	in     platform.Inputter
	wm     platform.WindowManager
	timing Timing
	sleep  Sleeper
}

// New creates a Sequencer. A nil sleep uses SleepContext.
func New(in platform.Inputter, wm platform.WindowManager, timing Timing, sleep Sleeper) *Sequencer {
	if sleep == nil {
		sleep = SleepContext
	}
	return &Sequencer{in: in, wm: wm, timing: timing, sleep: sleep}
}

// PressKey presses and releases a single key.
func (s *Sequencer) PressKey(ctx context.Context, key platform.Key) error {
	return s.PressKeyCombo(ctx, nil, key)
}

// PressKeyCombo presses mods in order, taps key, then releases mods in
// reverse order. If any down event fails, everything already held is
// released before returning.
func (s *Sequencer) PressKeyCombo(ctx context.Context, mods []platform.Key, key platform.Key) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	held := make([]platform.Key, 0, len(mods))
	defer func() {
		for i := len(held) - 1; i >= 0; i-- {
			if upErr := s.in.KeyUp(held[i]); upErr != nil {
				err = errors.Join(err, fmt.Errorf("release %s: %w", held[i], upErr))
			}
		}
	}()

	for _, m := range mods {
		if err := s.in.KeyDown(m); err != nil {
			return fmt.Errorf("press %s: %w", m, err)
		}
		held = append(held, m)
		s.pause()
	}

	if err := s.in.KeyDown(key); err != nil {
		return fmt.Errorf("press %s: %w", key, err)
	}
	s.pause()
	if err := s.in.KeyUp(key); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	if len(mods) > 0 {
		s.pause()
	}
	return nil
}

// PressRepeated taps key n times with delay between taps.
func (s *Sequencer) PressRepeated(ctx context.Context, key platform.Key, n int, delay time.Duration) error {
	for i := 0; i < n; i++ {
		if err := s.PressKey(ctx, key); err != nil {
			return fmt.Errorf("press %d/%d: %w", i+1, n, err)
		}
		if i < n-1 {
			if err := s.sleep(ctx, delay); err != nil {
				return err
			}
		}
	}
	return nil
}

// FocusWindow restores target if minimized, brings it to the foreground and
// waits for the focus change to settle before any input is injected.
func (s *Sequencer) FocusWindow(ctx context.Context, target model.WindowTarget) error {
	h := platform.Handle(target.Handle)
	if s.wm.IsMinimized(h) {
		if err := s.wm.Show(h, platform.ShowRestore); err != nil {
			return fmt.Errorf("restore window: %w", err)
		}
	}
	if err := s.wm.SetForeground(h); err != nil {
		return fmt.Errorf("focus window: %w", err)
	}
	return s.sleep(ctx, s.timing.FocusSettle)
}

// Settle waits the composite settle delay between steps.
func (s *Sequencer) Settle(ctx context.Context) error {
	return s.sleep(ctx, s.timing.CompositeSettle)
}

// pause waits the inter-event delay. It ignores cancellation so a combo that
// has started always completes its releases.
func (s *Sequencer) pause() {
	_ = s.sleep(context.Background(), s.timing.KeyDelay)
}
