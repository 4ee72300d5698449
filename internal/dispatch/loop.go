package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrTransport wraps every error that ends Run because the transport broke.
var ErrTransport = errors.New("transport failure")

// LineReader yields complete lines; ok is false when none is ready yet.
type LineReader interface {
	Next() (line string, ok bool, err error)
}

// LineWriter writes one response line.
type LineWriter interface {
	WriteLine(line string) error
}

// Loop reads lines, dispatches them and writes one response per line, in
// order.
type Loop struct {
	dispatcher *Dispatcher
	reader     LineReader
	writer     LineWriter
	poll       time.Duration
	logger     *log.Logger
}

func NewLoop(d *Dispatcher, r LineReader, w LineWriter, poll time.Duration, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{dispatcher: d, reader: r, writer: w, poll: poll, logger: logger}
}

// Run blocks until ctx is done, returning nil, or until the transport
// fails, returning an error wrapping ErrTransport.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("listening for commands", "poll", l.poll)
	for {
		if ctx.Err() != nil {
			l.logger.Info("stopping")
			return nil
		}

		line, ok, err := l.reader.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%w: read: %w", ErrTransport, err)
		}
		if !ok {
			if !l.wait(ctx) {
				l.logger.Info("stopping")
				return nil
			}
			continue
		}

		resp := l.dispatcher.Handle(ctx, line)
		if err := l.writer.WriteLine(resp); err != nil {
			return fmt.Errorf("%w: write: %w", ErrTransport, err)
		}
	}
}

// wait sleeps one poll interval and reports false if ctx ended first.
func (l *Loop) wait(ctx context.Context) bool {
	if l.poll <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(l.poll)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
