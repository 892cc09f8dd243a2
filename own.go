package sllog

import (
	"io"
	"sync"
)

type ownedCloser interface {
	ownedClose() error
}

// Own marks a sink as owned by the logger: Close will close it through c
// exactly once. Use it for file-backed sinks the host does not manage
// itself, e.g. Own(f, f) for an *os.File.
func Own(w io.Writer, c io.Closer) io.Writer {
	if w == nil {
		w = io.Discard
	}
	if c == nil {
		return w
	}
	if existing, ok := w.(*ownedSink); ok {
		return existing
	}
	return &ownedSink{writer: w, closer: c}
}

type ownedSink struct {
	writer   io.Writer
	closer   io.Closer
	closeErr error
	once     sync.Once
}

func (o *ownedSink) Write(p []byte) (int, error) {
	return o.writer.Write(p)
}

func (o *ownedSink) Close() error {
	return o.ownedClose()
}

func (o *ownedSink) ownedClose() error {
	o.once.Do(func() {
		o.closeErr = o.closer.Close()
	})
	return o.closeErr
}
