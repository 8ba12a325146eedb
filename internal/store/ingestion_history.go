package store

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
)

type IngestionHistoryStore struct {
	db *sqlx.DB
}

var (
	TriggerTypeManual    = "manual"
	TriggerTypeScheduled = "scheduled"
)

var (
	StatusSuccess    = "success"
	StatusFailure    = "failure"
	StatusPartial    = "partial"
	StatusInProgress = "in_progress"
)

func (ih *IngestionHistoryStore) InsertIngestionHistory(ctx context.Context, history *IngestionHistory) error {
	query := `INSERT INTO ingestion_history (
		source_file,
		trigger_type,
		status,
		rows_total,
		rows_skipped,
		policy_count
	) VALUES (
		:source_file,
		:trigger_type,
		:status,
		:rows_total,
		:rows_skipped,
		:policy_count
	) RETURNING id, processed_at`

	// NamedQuery instead of NamedExec so the generated id and processed_at
	// come back into the struct.
	rows, err := ih.db.NamedQuery(query, history)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		err = rows.Scan(&history.ID, &history.ProcessedAt)
		if err != nil {
			return err
		}
	}

	log.Printf("Ingestion history recorded with ID: %d", history.ID)
	return nil
}

func (ih *IngestionHistoryStore) GetLatest(ctx context.Context, limit int) ([]IngestionHistory, error) {
	query := `SELECT
		id,
		processed_at,
		source_file,
		trigger_type,
		status,
		rows_total,
		rows_skipped,
		policy_count
	FROM ingestion_history
	ORDER BY processed_at DESC
	LIMIT $1`

	var history []IngestionHistory
	err := ih.db.SelectContext(ctx, &history, query, limit)
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (ih *IngestionHistoryStore) UpdateIngestionStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE ingestion_history SET status = $1 WHERE id = $2`

	_, err := ih.db.ExecContext(ctx, query, status, id)
	return err
}
