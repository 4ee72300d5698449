package cmd

import (
	"github.com/mj1618/pcremote/internal/action"
	"github.com/mj1618/pcremote/internal/dispatch"
	"github.com/mj1618/pcremote/internal/input"
	"github.com/mj1618/pcremote/internal/platform"
)

// newProvider is swapped out in tests.
var newProvider = platform.NewProvider

// sleeper overrides action delays in tests; nil means real time.
var sleeper input.Sleeper

// engine is everything a command needs to execute remote commands.
type engine struct {
	provider   *platform.Provider
	executor   *action.Executor
	dispatcher *dispatch.Dispatcher
}

// newEngine builds the platform backend, executors, registry and
// dispatcher from the loaded config.
func newEngine() (*engine, error) {
	provider, err := newProvider()
	if err != nil {
		return nil, err
	}
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	exec := action.NewExecutor(action.Deps{
		Provider: provider,
		Config:   &appConfig,
		Logger:   appLogger,
		Sleep:    sleeper,
	})
	return &engine{
		provider:   provider,
		executor:   exec,
		dispatcher: dispatch.New(action.NewRegistry(exec), appLogger),
	}, nil
}

// staticRegistry builds the command table without a platform backend, for
// listings that never execute anything.
func staticRegistry() *action.Registry {
	exec := action.NewExecutor(action.Deps{
		Provider: &platform.Provider{},
		Config:   &appConfig,
		Logger:   appLogger,
	})
	return action.NewRegistry(exec)
}
