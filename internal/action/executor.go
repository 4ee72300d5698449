package action

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pcremote/internal/config"
	"github.com/mj1618/pcremote/internal/input"
	"github.com/mj1618/pcremote/internal/locator"
	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/platform"
)

// Executor carries the capabilities every action composes. It holds no
// per-command state.
type Executor struct {
	cfg     *config.Config
	locator *locator.Locator
	seq     *input.Sequencer
	wm      platform.WindowManager
	in      platform.Inputter
	power   platform.PowerController
	launch  platform.Launcher
	sleep   input.Sleeper
	logger  *log.Logger
}

// Deps are the inputs to NewExecutor.
type Deps struct {
	Provider *platform.Provider
	Config   *config.Config
	Logger   *log.Logger
	// Sleep overrides real delays; nil uses input.SleepContext.
	Sleep input.Sleeper
}

// NewExecutor wires the locator and sequencer on top of the provider.
func NewExecutor(d Deps) *Executor {
	sleep := d.Sleep
	if sleep == nil {
		sleep = input.SleepContext
	}
	logger := d.Logger
	if logger == nil {
		logger = log.Default()
	}
	p := d.Provider
	return &Executor{
		cfg:     d.Config,
		locator: locator.New(p.WindowManager, p.Processes, d.Config.Targets.Processes, logger),
		seq:     input.New(p.Inputter, p.WindowManager, input.TimingFromConfig(d.Config.Input), sleep),
		wm:      p.WindowManager,
		in:      p.Inputter,
		power:   p.Power,
		launch:  p.Launcher,
		sleep:   sleep,
		logger:  logger,
	}
}

// Locator exposes the window locator for listings.
func (e *Executor) Locator() *locator.Locator { return e.locator }

// Monitors returns the current monitor layout.
func (e *Executor) Monitors() ([]model.MonitorGeometry, error) { return e.wm.Monitors() }

// withTarget runs fn against the first located window, or returns the
// standard not-found result without touching anything.
func (e *Executor) withTarget(ctx context.Context, name string, fn func(model.WindowTarget) (model.ActionResult, error)) (model.ActionResult, error) {
	target, err := e.locator.First(ctx)
	if errors.Is(err, locator.ErrNoTarget) {
		return model.Failed("%s failed - no browser found", name), nil
	}
	if err != nil {
		return model.ActionResult{}, err
	}
	e.logger.Debug("target located", "command", name, "process", target.Process, "title", target.Title)
	return fn(target)
}

// Targets lists the windows commands would act on, first target first.
func (e *Executor) Targets(ctx context.Context) ([]model.WindowTarget, error) {
	return e.locator.FindTargetWindows(ctx)
}
