package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/vokabot/internal/models"
	"github.com/jmoiron/sqlx"
)

type TrainingR struct {
	db   QueryI
	bind int
}

func NewTrainingRepository(db QueryI, bind int) *TrainingR {
	return &TrainingR{db: db, bind: bind}
}

func (t *TrainingR) AddTrainingResult(ctx context.Context, result models.TrainingResult) error {
	query := sqlx.Rebind(t.bind, `
		INSERT INTO training_results (user_id, total, correct, finished_at)
		VALUES (?, ?, ?, ?)
	`)

	_, err := t.db.ExecContext(ctx, query, result.UserID, result.Total, result.Correct, result.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert training result for user %d: %w", result.UserID, err)
	}

	return nil
}

func (t *TrainingR) TrainingStats(ctx context.Context, userID int64) (models.TrainingStats, error) {
	query := sqlx.Rebind(t.bind, `SELECT
		COUNT(*) AS sessions,
		COALESCE(SUM(total), 0) AS questions,
		COALESCE(SUM(correct), 0) AS correct
	FROM training_results
	WHERE user_id = ?`)

	var stats models.TrainingStats
	if err := t.db.GetContext(ctx, &stats, query, userID); err != nil {
		return models.TrainingStats{}, fmt.Errorf("failed to get training stats for user %d: %w", userID, err)
	}

	return stats, nil
}
