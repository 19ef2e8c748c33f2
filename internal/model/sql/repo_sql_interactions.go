package sql

import (
	"context"
	"designers/internal/database"
	"designers/internal/entity/db"
	"fmt"

	"gorm.io/gorm"
)

func interactionsTable() string {
	return db.InteractionLog{}.TableName()
}

// CreateInteraction appends one LLM call log row in its own transaction.
func (r *GormRepository) CreateInteraction(ctx context.Context, entry *db.InteractionLog) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}

	conn, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	err = conn.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
	return database.Classify(err, interactionsTable())
}

// ListInteractions returns the full history, newest first.
func (r *GormRepository) ListInteractions(ctx context.Context) ([]db.InteractionLog, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var logs []db.InteractionLog
	err = conn.DB.WithContext(ctx).
		Model(&db.InteractionLog{}).
		Select("id", "user_prompt", "llm_response", "model_used", "timestamp", "ip_address").
		Order("timestamp DESC, id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, database.Classify(err, interactionsTable())
	}
	return logs, nil
}
