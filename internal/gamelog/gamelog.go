// Package gamelog provides the game's diagnostic log.
//
// Lines are written as "timestamp - name - LEVEL - message". The combat
// monitor tails and parses this format, so it must stay stable.
package gamelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the level name as written into log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level. Unknown values fall back
// to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is the sink components report through. It is injected rather
// than global so tests can capture emitted lines.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Sink owns the log output and hands out named loggers.
type Sink struct {
	w       io.Writer
	console io.Writer // warnings and above are mirrored here
	min     Level
	now     func() time.Time
}

// NewSink creates a sink writing to w at the given minimum level.
func NewSink(w io.Writer, min Level) *Sink {
	return &Sink{w: w, min: min, now: time.Now}
}

// Named returns a logger that tags lines with the given module name.
func (s *Sink) Named(name string) *Named {
	return &Named{sink: s, name: name}
}

func (s *Sink) write(level Level, name, format string, args ...any) {
	if level < s.min {
		return
	}
	line := fmt.Sprintf("%s - %s - %s - %s\n",
		s.now().Format("2006-01-02 15:04:05"), name, level, fmt.Sprintf(format, args...))
	io.WriteString(s.w, line)
	if s.console != nil && level >= LevelWarn {
		io.WriteString(s.console, line)
	}
}

// Named is a Logger bound to a module name.
type Named struct {
	sink *Sink
	name string
}

func (n *Named) Debugf(format string, args ...any) { n.sink.write(LevelDebug, n.name, format, args...) }
func (n *Named) Infof(format string, args ...any)  { n.sink.write(LevelInfo, n.name, format, args...) }
func (n *Named) Warnf(format string, args ...any)  { n.sink.write(LevelWarn, n.name, format, args...) }
func (n *Named) Errorf(format string, args ...any) { n.sink.write(LevelError, n.name, format, args...) }

// Setup initializes file logging under dir. The previous latest.log is
// archived with a timestamped name so each run starts a fresh file.
// Returns the sink and a close function for application exit.
func Setup(dir string, min Level) (*Sink, func() error, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	latest := filepath.Join(dir, "latest.log")
	if _, err := os.Stat(latest); err == nil {
		archive := filepath.Join(dir, "game_"+time.Now().Format("20060102_150405")+".log")
		if err := os.Rename(latest, archive); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not archive previous log: %v\n", err)
		}
	}

	f, err := os.Create(latest)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	sink := NewSink(f, min)
	sink.console = os.Stderr
	return sink, f.Close, nil
}
