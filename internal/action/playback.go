package action

import (
	"context"

	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
)

// shortcut focuses the first target and taps one fixed combo.
func (e *Executor) shortcut(name string, mods []platform.Key, key platform.Key) HandlerFunc {
	return func(ctx context.Context, _ string) (model.ActionResult, error) {
		return e.withTarget(ctx, name, func(t model.WindowTarget) (model.ActionResult, error) {
			if err := e.seq.FocusWindow(ctx, t); err != nil {
				return model.ActionResult{}, err
			}
			e.logger.Debug("sending shortcut", "command", name, "keys", platform.FormatCombo(mods, key))
			if err := e.seq.PressKeyCombo(ctx, mods, key); err != nil {
				return model.ActionResult{}, err
			}
			return model.Executed("%s executed", name), nil
		})
	}
}
