package framelog

import (
	"io"
	"os"
	"sync"
)

// framelogOwnedCloser marks writers whose lifetime the logger owns, such as
// files opened by LoggerFromEnv. Logger.Close closes only these.
type framelogOwnedCloser interface {
	framelogOwnedClose() error
}

type ownedOutput struct {
	writer   io.Writer
	closer   io.Closer
	closeErr error
	once     sync.Once
}

func newOwnedOutput(writer io.Writer, closer io.Closer) io.Writer {
	if writer == nil {
		writer = io.Discard
	}
	if closer == nil {
		return writer
	}
	if existing, ok := writer.(*ownedOutput); ok {
		return existing
	}
	return &ownedOutput{writer: writer, closer: closer}
}

func (o *ownedOutput) Write(p []byte) (int, error) {
	return o.writer.Write(p)
}

func (o *ownedOutput) Close() error {
	return o.framelogOwnedClose()
}

func (o *ownedOutput) framelogOwnedClose() error {
	o.once.Do(func() {
		if o.closer != nil {
			o.closeErr = o.closer.Close()
		}
	})
	return o.closeErr
}

func closeOutput(w io.Writer) error {
	if w == nil || w == os.Stdout || w == os.Stderr {
		return nil
	}
	if c, ok := w.(framelogOwnedCloser); ok {
		return c.framelogOwnedClose()
	}
	return nil
}
