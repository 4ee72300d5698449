package model

import (
	"errors"
	"strings"
)

// ErrEmptyCommand is returned when a line has no command name.
var ErrEmptyCommand = errors.New("empty command name")

// Command is one inbound request line split into name and parameter.
type Command struct {
	Name         string
	Parameter    string
	HasParameter bool
}

// ParseCommand splits line on the first ':'. Everything after it is kept
// verbatim, including further colons.
func ParseCommand(line string) (Command, error) {
	name, param, found := strings.Cut(line, ":")
	if name == "" {
		return Command{}, ErrEmptyCommand
	}
	return Command{Name: name, Parameter: param, HasParameter: found}, nil
}

// String reassembles the wire form of the command.
func (c Command) String() string {
	if !c.HasParameter {
		return c.Name
	}
	return c.Name + ":" + c.Parameter
}
