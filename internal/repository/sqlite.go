package repository

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"careerprep/internal/domain"
	"careerprep/internal/util"
)

// historyRow is the database image of a history entry. The analysis
// breakdown is stored as a JSON document rather than flattened into
// columns; it is only ever read back whole.
type historyRow struct {
	ID        string `db:"id"`
	Timestamp string `db:"timestamp"`
	Role      string `db:"role"`
	Level     string `db:"level"`
	Question  string `db:"question"`
	Analysis  string `db:"analysis"`
}

// SQLiteHistoryRepository persists history entries in the
// interview_history table.
type SQLiteHistoryRepository struct {
	db *sqlx.DB
}

func NewSQLiteHistoryRepository(db *sqlx.DB) *SQLiteHistoryRepository {
	return &SQLiteHistoryRepository{db: db}
}

// Append inserts one entry. Entries get a fresh ULID as primary key.
func (r *SQLiteHistoryRepository) Append(entry *domain.HistoryEntry) error {
	analysisJSON, err := json.Marshal(entry.Analysis)
	if err != nil {
		return fmt.Errorf("could not encode analysis: %w", err)
	}

	const query = `INSERT INTO interview_history (id, timestamp, role, level, question, analysis)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.Exec(query, util.NewULID(), entry.Timestamp, entry.Role, entry.Level, entry.Question, string(analysisJSON)); err != nil {
		return fmt.Errorf("could not insert history entry: %w", err)
	}
	return nil
}

// Query returns entries matching the optional role/level filters,
// newest first.
func (r *SQLiteHistoryRepository) Query(role, level string) ([]*domain.HistoryEntry, error) {
	query := `SELECT id, timestamp, role, level, question, analysis FROM interview_history`
	var (
		conditions []string
		args       []interface{}
	)
	if role != "" {
		conditions = append(conditions, "role = ?")
		args = append(args, role)
	}
	if level != "" {
		conditions = append(conditions, "level = ?")
		args = append(args, level)
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY timestamp DESC"

	var rows []historyRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("could not query history: %w", err)
	}

	entries := make([]*domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry := &domain.HistoryEntry{
			Timestamp: row.Timestamp,
			Role:      row.Role,
			Level:     row.Level,
			Question:  row.Question,
		}
		if err := json.Unmarshal([]byte(row.Analysis), &entry.Analysis); err != nil {
			return nil, fmt.Errorf("could not decode analysis for entry %s: %w", row.ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
