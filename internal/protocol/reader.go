// Package protocol frames the newline-terminated text protocol spoken with
// the remote controller.
package protocol

import (
	"bytes"
	"io"
	"strings"
)

// MaxLineLength bounds a line. A longer line is dropped whole, up to and
// including its newline.
const MaxLineLength = 4096

// Reader splits a byte stream into trimmed, non-empty lines. It tolerates
// reads that return no data, which is how a serial port reports a read
// timeout.
type Reader struct {
	src   io.Reader
	buf   []byte
	chunk []byte
	err   error
	// discarding is set while skipping the rest of an oversized line.
	discarding bool
}

func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, chunk: make([]byte, 256)}
}

// Next returns the next complete line. It performs at most one read; when
// that read does not complete a line it returns ("", false, nil). Buffered
// lines are drained before a read error is reported. A trailing fragment
// without a newline is never returned.
func (r *Reader) Next() (string, bool, error) {
	if line, ok := r.take(); ok {
		return line, true, nil
	}
	if r.err != nil {
		return "", false, r.err
	}

	n, err := r.src.Read(r.chunk)
	r.buf = append(r.buf, r.chunk[:n]...)
	if err != nil {
		r.err = err
	}
	if line, ok := r.take(); ok {
		return line, true, nil
	}
	return "", false, r.err
}

// take pops the next acceptable line from the buffer. On return without a
// line the buffer holds only an incomplete fragment, which is dropped and
// remembered as discarding once it exceeds MaxLineLength.
func (r *Reader) take() (string, bool) {
	for {
		i := bytes.IndexByte(r.buf, '\n')
		if i < 0 {
			if len(r.buf) > MaxLineLength {
				r.buf = r.buf[:0]
				r.discarding = true
			} else if r.discarding {
				r.buf = r.buf[:0]
			}
			return "", false
		}
		raw := r.buf[:i]
		r.buf = r.buf[i+1:]
		if r.discarding || i > MaxLineLength {
			r.discarding = false
			continue
		}
		if line := strings.TrimSpace(strings.ToValidUTF8(string(raw), "")); line != "" {
			return line, true
		}
	}
}
