package repository

import (
	"context"

	"parish-match/internal/database"
	"parish-match/internal/domain/analytics"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]analytics.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]analytics.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, user_id, status, applied_at, updated_at
		 FROM job_applications
		 WHERE user_id = $1
		 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analytics.Application, 0)
	for rows.Next() {
		var a analytics.Application
		var status string
		if err := rows.Scan(&a.ID, &a.JobID, &a.UserID, &status, &a.AppliedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Status = analytics.ApplicationStatus(status)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
