package mocks

import (
	"fmt"
	"sync"

	"github.com/JulianoL13/guincho-scraper/internal/common/logs"
)

type LoggerMock struct{}

func (LoggerMock) Debug(msg string, args ...any) {}
func (LoggerMock) Info(msg string, args ...any)  {}
func (LoggerMock) Warn(msg string, args ...any)  {}
func (LoggerMock) Error(msg string, args ...any) {}
func (LoggerMock) With(args ...any) logs.Logger  { return LoggerMock{} }

var _ logs.Logger = LoggerMock{}

// RecorderMock keeps every entry as "LEVEL msg" so tests can assert on progress lines.
type RecorderMock struct {
	mu      sync.Mutex
	Entries []string
}

func (r *RecorderMock) record(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, fmt.Sprintf("%s %s %v", level, msg, args))
}

func (r *RecorderMock) Debug(msg string, args ...any) { r.record("DEBUG", msg, args) }
func (r *RecorderMock) Info(msg string, args ...any)  { r.record("INFO", msg, args) }
func (r *RecorderMock) Warn(msg string, args ...any)  { r.record("WARN", msg, args) }
func (r *RecorderMock) Error(msg string, args ...any) { r.record("ERROR", msg, args) }
func (r *RecorderMock) With(args ...any) logs.Logger  { return r }

func (r *RecorderMock) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Entries))
	copy(out, r.Entries)
	return out
}

var _ logs.Logger = (*RecorderMock)(nil)
