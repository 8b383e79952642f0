package shell

import (
	"errors"
	"io"
	"syscall"
)

const (
	// lineBufSize is both the initial line buffer capacity and the fixed
	// growth increment.
	lineBufSize = 1024
	// tokenBufSize is the same for the token vector.
	tokenBufSize = 128
)

// LineReader accumulates one line at a time from a raw byte stream. Reads
// are issued a byte at a time so a blocking stream never hands the reader
// more than the current line.
type LineReader struct {
	r   io.Reader
	one [1]byte
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r}
}

// ReadLine returns the next line without its trailing newline. An empty
// line is a valid result. On end of input or a read error no partial line
// is returned, even if bytes had already been accumulated; interrupted
// reads are retried without losing accumulated bytes.
//
// A delivered byte is consumed before its accompanying error, since a
// reader may return its final byte together with io.EOF. A line whose
// newline arrives that way is still complete.
//
// The buffer starts at lineBufSize and grows by the same fixed increment,
// copying previously read bytes intact.
func (lr *LineReader) ReadLine() ([]byte, error) {
	buf := make([]byte, 0, lineBufSize)

	for {
		n, err := lr.r.Read(lr.one[:])
		if n > 0 {
			c := lr.one[0]
			if c == '\n' {
				return buf, nil
			}

			if len(buf) == cap(buf) {
				grown := make([]byte, len(buf), cap(buf)+lineBufSize)
				copy(grown, buf)
				buf = grown
			}
			buf = append(buf, c)
		}
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return nil, err
		}
	}
}
