package model

import "fmt"

// ActionResult is the outcome of one executor invocation.
// Message is a single human-readable line.
type ActionResult struct {
	Succeeded bool   `yaml:"succeeded" json:"succeeded"`
	Message   string `yaml:"message"   json:"message"`
}

// Executed builds a successful result.
func Executed(format string, args ...any) ActionResult {
	return ActionResult{Succeeded: true, Message: fmt.Sprintf(format, args...)}
}

// Failed builds an unsuccessful result.
func Failed(format string, args ...any) ActionResult {
	return ActionResult{Succeeded: false, Message: fmt.Sprintf(format, args...)}
}
