package session

import (
	"bufio"
	"context"
	"io"
)

// LineReader reads newline-terminated lines and gives up waiting when a
// context is cancelled. A read abandoned on cancellation is not lost: the
// next ReadLine returns it.
//
// Candidate entry and the command loop must share one LineReader so that
// at most one read is in flight on the underlying stream.
type LineReader struct {
	br      *bufio.Reader
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLineReader wraps r. A *LineReader is returned as is, and a
// *bufio.Reader is read directly, so input it has already buffered is kept.
func NewLineReader(r io.Reader) *LineReader {
	if lr, ok := r.(*LineReader); ok {
		return lr
	}
	return &LineReader{br: bufio.NewReader(r)}
}

// Read implements io.Reader on the buffered stream. It must not be mixed
// with a ReadLine that was abandoned on cancellation.
func (r *LineReader) Read(p []byte) (int, error) {
	return r.br.Read(p)
}

// Buffered returns the number of bytes read from the stream but not yet
// consumed.
func (r *LineReader) Buffered() int {
	return r.br.Buffered()
}

// ReadLine returns the next line including its newline, with the same
// error semantics as bufio.Reader.ReadString. If ctx is done first it
// returns ctx.Err() and leaves the read running in the background.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if r.pending == nil {
		ch := make(chan lineResult, 1)
		r.pending = ch
		go func() {
			line, err := r.br.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}
	select {
	case res := <-r.pending:
		r.pending = nil
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
