package action

import (
	"context"
	"strconv"
	"strings"

	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
)

// systemKey taps a key that the OS handles globally; no window is needed.
// VOLUME_MUTE, VOLUME_UNMUTE and VOLUME_TOGGLE_MUTE all map to the single
// mute toggle the OS offers, so none of them is idempotent.
func (e *Executor) systemKey(name string, key platform.Key) HandlerFunc {
	return func(ctx context.Context, _ string) (model.ActionResult, error) {
		if err := e.seq.PressKey(ctx, key); err != nil {
			return model.ActionResult{}, err
		}
		return model.Executed("%s executed", name), nil
	}
}

// SetVolume drives the volume to zero with a fixed number of volume-down
// presses, then raises it level/2 steps, assuming each step is about 2%.
// The result is approximate by nature.
func (e *Executor) SetVolume(ctx context.Context, param string) (model.ActionResult, error) {
	const name = "VOLUME_SET"
	raw := strings.TrimSpace(param)
	if raw == "" {
		return model.Failed("%s failed - missing volume level", name), nil
	}
	level, err := strconv.Atoi(strings.TrimSuffix(raw, "%"))
	if err != nil {
		return model.Failed("%s failed - invalid volume level %q", name, param), nil
	}
	level = min(max(level, 0), 100)

	delay := e.cfg.Input.VolumeStepDelay()
	if err := e.seq.PressRepeated(ctx, platform.KeyVolumeDown, e.cfg.Input.VolumeFloorPresses, delay); err != nil {
		return model.ActionResult{}, err
	}
	if err := e.sleep(ctx, delay); err != nil {
		return model.ActionResult{}, err
	}
	if err := e.seq.PressRepeated(ctx, platform.KeyVolumeUp, level/2, delay); err != nil {
		return model.ActionResult{}, err
	}
	return model.Executed("%s executed - volume set to ~%d%%", name, level), nil
}
