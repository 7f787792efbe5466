package codec

import (
	"errors"
	"io"
)

var errInjected = errors.New("injected write failure")

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	limit   int
	written int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		n := w.limit - w.written
		w.written = w.limit

		return n, errInjected
	}
	w.written += len(p)

	return len(p), nil
}

// recordingWriter records the size of every Write call.
type recordingWriter struct {
	sizes []int
	total int
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.sizes = append(w.sizes, len(p))
	w.total += len(p)

	return len(p), nil
}

// countingReader counts the bytes handed out by the wrapped reader.
type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n

	return n, err
}
