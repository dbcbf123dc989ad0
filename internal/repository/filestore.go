// Package repository provides the HistoryRepository adapters: a
// one-file-per-entry JSON store and a SQLite store.
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"careerprep/internal/domain"
	"careerprep/internal/logger"

	"go.uber.org/zap"
)

const (
	historyFilePrefix = "interview_"
	historyFileSuffix = ".json"
)

// FileHistoryRepository persists each history entry as its own JSON
// file named interview_YYYYMMDD_HHMMSS.json. Files are write-once;
// queries re-read the directory on every call, so entries written by
// other processes show up without coordination.
type FileHistoryRepository struct {
	dir string
}

// NewFileHistoryRepository creates the storage directory if needed.
func NewFileHistoryRepository(dir string) (*FileHistoryRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create history directory %s: %w", dir, err)
	}
	return &FileHistoryRepository{dir: dir}, nil
}

// Append writes the entry to a new file. The filename stamp comes from
// the entry's own timestamp; a numeric suffix resolves same-second
// collisions instead of overwriting.
func (r *FileHistoryRepository) Append(entry *domain.HistoryEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode history entry: %w", err)
	}

	stamp := normalizeStamp(entry.Timestamp)
	if stamp == "" {
		stamp = time.Now().Format(domain.HistoryTimestampLayout)
	}

	path := filepath.Join(r.dir, historyFilePrefix+stamp+historyFileSuffix)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(r.dir, fmt.Sprintf("%s%s_%d%s", historyFilePrefix, stamp, n, historyFileSuffix))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write history file %s: %w", path, err)
	}
	return nil
}

// Query returns entries matching the optional role/level filters,
// newest first. Unreadable or malformed files are skipped with a
// warning rather than failing the whole query.
func (r *FileHistoryRepository) Query(role, level string) ([]*domain.HistoryEntry, error) {
	files, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("could not read history directory %s: %w", r.dir, err)
	}

	entries := make([]*domain.HistoryEntry, 0, len(files))
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasPrefix(name, historyFilePrefix) || !strings.HasSuffix(name, historyFileSuffix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			logger.Get().Warn("skipping unreadable history file",
				zap.String("file", name), zap.Error(err))
			continue
		}

		var entry domain.HistoryEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			logger.Get().Warn("skipping malformed history file",
				zap.String("file", name), zap.Error(err))
			continue
		}

		if role != "" && entry.Role != role {
			continue
		}
		if level != "" && entry.Level != level {
			continue
		}
		if stamp := normalizeStamp(entry.Timestamp); stamp != "" {
			entry.Timestamp = stamp
		}
		entries = append(entries, &entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries, nil
}

// normalizeStamp brings a timestamp into the compact history layout.
// RFC3339 values found in existing directories are converted so the
// lexicographic sort stays chronological across formats; anything else
// returns "".
func normalizeStamp(ts string) string {
	if _, err := time.Parse(domain.HistoryTimestampLayout, ts); err == nil {
		return ts
	}
	if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
		return parsed.Format(domain.HistoryTimestampLayout)
	}
	return ""
}
