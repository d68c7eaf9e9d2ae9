package gamelog

import (
	"fmt"
	"strings"
)

// Recorder is a Logger that keeps formatted lines in memory. Tests use
// it to assert on emitted diagnostics.
type Recorder struct {
	Entries []string
}

func (r *Recorder) record(level Level, format string, args ...any) {
	r.Entries = append(r.Entries, level.String()+" "+fmt.Sprintf(format, args...))
}

func (r *Recorder) Debugf(format string, args ...any) { r.record(LevelDebug, format, args...) }
func (r *Recorder) Infof(format string, args ...any)  { r.record(LevelInfo, format, args...) }
func (r *Recorder) Warnf(format string, args ...any)  { r.record(LevelWarn, format, args...) }
func (r *Recorder) Errorf(format string, args ...any) { r.record(LevelError, format, args...) }

// Contains reports whether any recorded line contains the substring.
func (r *Recorder) Contains(substr string) bool {
	for _, e := range r.Entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

// Last returns the most recent entry, or "" if nothing was recorded.
func (r *Recorder) Last() string {
	if len(r.Entries) == 0 {
		return ""
	}
	return r.Entries[len(r.Entries)-1]
}

// Nop is a Logger that discards everything.
type Nop struct{}

func (Nop) Debugf(string, ...any) {}
func (Nop) Infof(string, ...any)  {}
func (Nop) Warnf(string, ...any)  {}
func (Nop) Errorf(string, ...any) {}
