package cargo_test

import (
	"bytes"
	"io"
	"sync"
)

// vertexSink is a simple test double for ports.Vertex.
type vertexSink struct {
	mu       sync.Mutex
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	complete []error
	cached   int
}

type lockedWriter struct {
	mu  *sync.Mutex
	buf *bytes.Buffer
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (v *vertexSink) Stdout() io.Writer { return lockedWriter{mu: &v.mu, buf: &v.stdout} }
func (v *vertexSink) Stderr() io.Writer { return lockedWriter{mu: &v.mu, buf: &v.stderr} }

func (v *vertexSink) Complete(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.complete = append(v.complete, err)
}

func (v *vertexSink) Cached() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cached++
}
