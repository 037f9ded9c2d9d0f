package professional

import (
	"context"
	"time"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Writer persists the final record set of a run and returns where it went.
type Writer interface {
	Save(records []Record, at time.Time) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, runID string, records []Record) error
}

type Notifier interface {
	SendRecords(ctx context.Context, records []Record, caption string) error
	SendSummary(ctx context.Context, s Summary) error
	SendError(ctx context.Context, message string) error
}

// Reader serves indexed records. The returned cursor is zero on the last page.
type Reader interface {
	List(ctx context.Context, cursor Cursor, limit int, filter Filter) ([]Record, Cursor, int, error)
	Get(ctx context.Context, phone string) (Record, error)
}
