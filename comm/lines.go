package comm

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ResponseReader reads device responses line by line from a port opened with
// a read timeout. A read that returns no data ends the current line, so a
// silent device yields an empty response instead of blocking forever.
type ResponseReader struct {
	r       io.Reader
	pending []byte
	buf     [64]byte
}

func NewResponseReader(r io.Reader) *ResponseReader {
	return &ResponseReader{r: r}
}

// ReadResponse returns the next line without its terminator and surrounding
// whitespace. The firmware ends lines with "\n\r", so a stray carriage return
// left over from the previous line is dropped as well.
func (rr *ResponseReader) ReadResponse() (string, error) {
	for {
		if i := bytes.IndexByte(rr.pending, '\n'); i >= 0 {
			line := string(rr.pending[:i])
			rr.pending = rr.pending[i+1:]
			return strings.TrimSpace(line), nil
		}

		n, err := rr.r.Read(rr.buf[:])
		rr.pending = append(rr.pending, rr.buf[:n]...)
		if err != nil && err != io.EOF {
			return "", &TransportError{Op: "read", Err: errors.Wrap(err, "Read")}
		}
		if n == 0 {
			// timeout
			line := string(rr.pending)
			rr.pending = rr.pending[:0]
			return strings.TrimSpace(line), nil
		}
	}
}
