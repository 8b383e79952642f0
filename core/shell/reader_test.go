package shell

import (
	"io"
	"strings"
	"syscall"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader("hello\nworld\n"))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(line))

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "world", string(line))

	_, err = lr.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestLineReader_emptyLine(t *testing.T) {
	lr := NewLineReader(strings.NewReader("\n"))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Len(t, line, 0)
}

func TestLineReader_noPartialLines(t *testing.T) {
	lr := NewLineReader(strings.NewReader("unterminated"))

	line, err := lr.ReadLine()
	assert.Equal(t, io.EOF, err)
	assert.Nil(t, line)
}

func TestLineReader_longLine(t *testing.T) {
	// Far beyond the initial buffer capacity: growth must neither truncate
	// nor corrupt.
	input := strings.Repeat("x", 5000)
	lr := NewLineReader(strings.NewReader(input + "\n"))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, input, string(line))
}

func TestLineReader_finalByteWithEOF(t *testing.T) {
	// io.Reader allows the final data and io.EOF in the same call; the
	// newline must still terminate the line.
	lr := NewLineReader(iotest.DataErrReader(strings.NewReader("hello\n")))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(line))

	_, err = lr.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestLineReader_finalByteWithEOFUnterminated(t *testing.T) {
	lr := NewLineReader(iotest.DataErrReader(strings.NewReader("partial")))

	line, err := lr.ReadLine()
	assert.Equal(t, io.EOF, err)
	assert.Nil(t, line)
}

// interruptingReader fails every other read with EINTR.
type interruptingReader struct {
	r     io.Reader
	calls int
}

func (ir *interruptingReader) Read(p []byte) (int, error) {
	ir.calls++
	if ir.calls%2 == 1 {
		return 0, syscall.EINTR
	}
	return ir.r.Read(p)
}

func TestLineReader_retriesInterrupts(t *testing.T) {
	lr := NewLineReader(&interruptingReader{r: strings.NewReader("abc\n")})

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(line), "interrupts must not lose accumulated bytes")
}
