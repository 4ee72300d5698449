package protocol

import (
	"io"
	"strings"
	"sync"
)

const (
	statusPrefix = "STATUS:"
	errorPrefix  = "ERROR:"
)

var flattener = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// StatusLine renders a STATUS response.
func StatusLine(msg string) string {
	return statusPrefix + flattener.Replace(msg)
}

// ErrorLine renders an ERROR response for a command that failed while
// executing.
func ErrorLine(context, detail string) string {
	return errorPrefix + flattener.Replace(context+" - "+detail)
}

// UnknownCommandLine renders the response to a line that names no command.
func UnknownCommandLine(raw string) string {
	return errorPrefix + "Unknown command " + flattener.Replace(raw)
}

// IsError reports whether a rendered response is an ERROR line.
func IsError(line string) bool {
	return strings.HasPrefix(line, errorPrefix)
}

// Writer writes response lines. It is safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	dst io.Writer
}

func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst}
}

// WriteLine writes line followed by a newline. Embedded line breaks are
// flattened so one call is always one line on the wire.
func (w *Writer) WriteLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := io.WriteString(w.dst, flattener.Replace(line)+"\n")
	return err
}
