package monitor

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"
)

const (
	pollInterval = 100 * time.Millisecond
	waitInterval = 500 * time.Millisecond
)

// Tailer follows a log file by size, emitting lines appended after it
// started. Only file growth is observed; truncation restarts from the
// beginning.
type Tailer struct {
	path   string
	offset int64
}

// NewTailer creates a tailer for the given log file path.
func NewTailer(path string) *Tailer {
	return &Tailer{path: path}
}

// WaitForFile blocks until the log file exists, the same way the game
// may be started after the monitor. Cancel the context to stop waiting.
func (t *Tailer) WaitForFile(ctx context.Context) error {
	for {
		_, err := os.Stat(t.path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitInterval):
		}
	}
}

// Run starts tailing from the file's current end and calls fn for each
// appended line until the context is cancelled.
func (t *Tailer) Run(ctx context.Context, fn func(line string)) error {
	info, err := os.Stat(t.path)
	if err != nil {
		return err
	}
	t.offset = info.Size()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}

		if err := t.drain(fn); err != nil {
			return err
		}
	}
}

// drain reads everything appended since the last check.
func (t *Tailer) drain(fn func(line string)) error {
	info, err := os.Stat(t.path)
	if err != nil {
		return err
	}

	size := info.Size()
	if size < t.offset {
		// Truncated or rotated; start over from the top.
		t.offset = 0
	}
	if size == t.offset {
		return nil
	}

	f, err := os.Open(t.path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Seek(t.offset, 0); err != nil {
		return err
	}

	buf := make([]byte, size-t.offset)
	n, err := f.Read(buf)
	if err != nil {
		return err
	}
	t.offset += int64(n)

	for _, line := range strings.Split(string(buf[:n]), "\n") {
		if strings.TrimSpace(line) != "" {
			fn(line)
		}
	}
	return nil
}
