package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/professional"
)

const fileLayout = "20060102_150405"

// Store writes run artifacts as guincho_YYYYMMDD_HHMMSS.json under dir.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

func ArtifactName(at time.Time) string {
	return fmt.Sprintf("guincho_%s.json", at.Format(fileLayout))
}

// Save never leaves a half written artifact behind: the content goes to a
// temp file in the same directory which is then renamed.
func (s *Store) Save(records []professional.Record, at time.Time) (string, error) {
	data, err := professional.MarshalRecords(records)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".guincho-*.json")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close artifact: %w", err)
	}
	// CreateTemp opens files owner-only
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("chmod artifact: %w", err)
	}

	path := filepath.Join(s.dir, ArtifactName(at))
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename artifact: %w", err)
	}
	return path, nil
}
