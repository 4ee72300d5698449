package action

import (
	"context"
	"fmt"

	"github.com/mj1618/pcremote/internal/model"
)

// Where the cursor is parked to register activity.
const wakeX, wakeY = 100, 100

func (e *Executor) Wake(ctx context.Context, _ string) (model.ActionResult, error) {
	if err := e.nudge(); err != nil {
		return model.ActionResult{}, err
	}
	return model.Executed("PC_WAKE executed"), nil
}

func (e *Executor) Sleep(ctx context.Context, _ string) (model.ActionResult, error) {
	if err := e.power.Suspend(); err != nil {
		return model.ActionResult{}, err
	}
	return model.Executed("PC_SLEEP executed"), nil
}

func (e *Executor) DisplayOn(ctx context.Context, _ string) (model.ActionResult, error) {
	if err := e.power.SetMonitorPower(true); err != nil {
		return model.ActionResult{}, err
	}
	// Some monitors ignore the power message until they see input.
	if err := e.nudge(); err != nil {
		return model.ActionResult{}, err
	}
	return model.Executed("DISPLAY_ON executed"), nil
}

func (e *Executor) DisplayOff(ctx context.Context, _ string) (model.ActionResult, error) {
	if err := e.power.SetMonitorPower(false); err != nil {
		return model.ActionResult{}, err
	}
	return model.Executed("DISPLAY_OFF executed"), nil
}

func (e *Executor) nudge() error {
	if err := e.in.MoveCursor(wakeX, wakeY); err != nil {
		return fmt.Errorf("move cursor: %w", err)
	}
	if err := e.in.NudgeCursor(); err != nil {
		return fmt.Errorf("nudge cursor: %w", err)
	}
	return nil
}
