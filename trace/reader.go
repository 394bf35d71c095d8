// Package trace reads the plain-text request trace format: one request
// per line, "timestamp id size", whitespace-separated. The timestamp is
// read and discarded — simulation order is the file's line order, not
// wall-clock time.
package trace

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrBadLine reports a line that didn't parse as "timestamp id size".
var ErrBadLine = errors.New("trace: malformed line")

// Reader pulls one (id, size) request at a time out of a trace file.
type Reader struct {
	s   *bufio.Scanner
	n   int
	cap int
}

// NewReader wraps r, ready to yield requests via Next.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// Next returns the next request in the trace. It returns io.EOF once the
// underlying reader is exhausted.
func (t *Reader) Next() (id, size uint64, err error) {
	for t.s.Scan() {
		t.n++
		line := strings.TrimSpace(t.s.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, 0, errors.Wrapf(ErrBadLine, "line %d", t.n)
		}
		id, err = strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, 0, errors.Wrapf(ErrBadLine, "line %d: id: %v", t.n, err)
		}
		size, err = strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return 0, 0, errors.Wrapf(ErrBadLine, "line %d: size: %v", t.n, err)
		}
		return id, size, nil
	}
	if err := t.s.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, io.EOF
}
