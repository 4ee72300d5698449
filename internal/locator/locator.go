// Package locator finds the on-screen windows an action may target.
package locator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
)

// ErrNoTarget is returned by First when no window passes the filters.
var ErrNoTarget = errors.New("no target window found")

// Locator filters top-level windows by owning process against an allow-list.
type Locator struct {
	windows   platform.WindowManager
	processes platform.ProcessNamer
	allow     map[string]struct{}
	logger    *log.Logger
}

// New creates a Locator. Names in allow are compared case-insensitively.
func New(windows platform.WindowManager, processes platform.ProcessNamer, allow []string, logger *log.Logger) *Locator {
	set := make(map[string]struct{}, len(allow))
	for _, name := range allow {
		set[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Locator{windows: windows, processes: processes, allow: set, logger: logger}
}

// Allowed reports whether exe is on the allow-list.
func (l *Locator) Allowed(exe string) bool {
	_, ok := l.allow[strings.ToLower(exe)]
	return ok
}

// FindTargetWindows returns visible, titled windows owned by an allowed
// process, in OS enumeration order. It re-enumerates on every call. An empty
// result is not an error.
func (l *Locator) FindTargetWindows(ctx context.Context) ([]model.WindowTarget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	windows, err := l.windows.ListWindows()
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	names := make(map[int]string)
	var targets []model.WindowTarget
	for _, w := range windows {
		if !w.Visible || w.PID == 0 {
			continue
		}
		name, seen := names[w.PID]
		if !seen {
			resolved, err := l.processes.ProcessName(w.PID)
			if err != nil {
				// The process exited or is protected; treat it as not ours.
				l.logger.Debug("skipping window", "pid", w.PID, "err", err)
			}
			name = resolved
			names[w.PID] = name
		}
		if name == "" || !l.Allowed(name) || w.Title == "" {
			continue
		}
		targets = append(targets, model.WindowTarget{
			Handle:  uintptr(w.Handle),
			Title:   w.Title,
			Process: name,
			PID:     w.PID,
		})
	}
	return targets, nil
}

// First returns the enumeration-order winner, the single target most
// actions operate on.
func (l *Locator) First(ctx context.Context) (model.WindowTarget, error) {
	targets, err := l.FindTargetWindows(ctx)
	if err != nil {
		return model.WindowTarget{}, err
	}
	if len(targets) == 0 {
		return model.WindowTarget{}, ErrNoTarget
	}
	return targets[0], nil
}
