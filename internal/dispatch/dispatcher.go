// Package dispatch turns protocol lines into registry invocations and
// runs the read-dispatch-respond loop.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mj1618/pcremote/internal/action"
	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/protocol"
)

// Dispatcher executes one command line at a time against a registry.
// Concurrent callers are serialized.
type Dispatcher struct {
	mu       sync.Mutex
	registry *action.Registry
	logger   *log.Logger
}

func New(registry *action.Registry, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Registry returns the registry commands are looked up in.
func (d *Dispatcher) Registry() *action.Registry { return d.registry }

// Handle executes line and returns the rendered response line, without a
// trailing newline. It never fails: every outcome is a STATUS or ERROR line.
func (d *Dispatcher) Handle(ctx context.Context, line string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.NewString()
	start := time.Now()
	d.logger.Info("received", "id", id, "line", line)
	resp := d.dispatch(ctx, id, line)
	d.logger.Info("responded", "id", id, "response", resp, "elapsed", time.Since(start).Round(time.Millisecond))
	return resp
}

func (d *Dispatcher) dispatch(ctx context.Context, id, line string) (resp string) {
	cmd, err := model.ParseCommand(line)
	if err != nil {
		return protocol.UnknownCommandLine(line)
	}
	entry, ok := d.registry.Lookup(cmd.Name)
	if !ok {
		return protocol.UnknownCommandLine(line)
	}

	var param string
	if entry.Parameterized {
		param = cmd.Parameter
	} else if cmd.HasParameter {
		d.logger.Debug("ignoring parameter", "id", id, "command", cmd.Name, "parameter", cmd.Parameter)
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panicked", "id", id, "command", cmd.Name, "panic", r)
			resp = protocol.ErrorLine(cmd.Name, fmt.Sprint(r))
		}
	}()

	res, err := entry.Handler.Execute(ctx, param)
	if err != nil {
		d.logger.Error("command failed", "id", id, "command", cmd.Name, "err", err)
		return protocol.ErrorLine(cmd.Name, err.Error())
	}
	if !res.Succeeded {
		d.logger.Warn("command did not complete", "id", id, "command", cmd.Name, "message", res.Message)
	}
	return protocol.StatusLine(res.Message)
}
