package appbridge

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

// ErrClosed is returned when writing to a closed transport or session.
var ErrClosed = errors.New("bridge closed")

// Transport moves whole JSON-RPC messages between the app and its host.
type Transport interface {
	// ReadMessage blocks until a message arrives. It returns io.EOF once the
	// peer has closed the connection.
	ReadMessage(ctx context.Context) ([]byte, error)
	WriteMessage(ctx context.Context, data []byte) error
	Close() error
}

const maxStreamMessageSize = 4 << 20

// StreamTransport frames messages as newline-delimited JSON over a byte stream,
// such as stdio or a pipe.
type StreamTransport struct {
	scanner *bufio.Scanner
	w       io.Writer
	closers []io.Closer

	mu     sync.Mutex
	closed bool
}

// NewStreamTransport wraps r and w. If either implements io.Closer it is closed
// by Close.
func NewStreamTransport(r io.Reader, w io.Writer) *StreamTransport {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStreamMessageSize)

	t := &StreamTransport{scanner: scanner, w: w}
	if c, ok := r.(io.Closer); ok {
		t.closers = append(t.closers, c)
	}
	if c, ok := w.(io.Closer); ok {
		t.closers = append(t.closers, c)
	}
	return t
}

// ReadMessage returns the next non-empty line. The context is not consulted
// while blocked in the underlying reader; Close unblocks it.
func (t *StreamTransport) ReadMessage(ctx context.Context) ([]byte, error) {
	for t.scanner.Scan() {
		line := t.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		out := make([]byte, len(line))
		copy(out, line)
		return out, nil
	}
	if err := t.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (t *StreamTransport) WriteMessage(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	_, err := t.w.Write(buf)
	return err
}

func (t *StreamTransport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	var errs []error
	for _, c := range t.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
