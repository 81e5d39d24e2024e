package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parish-match/internal/database"
	"parish-match/internal/domain/analytics"
)

type AnalyticsRepository interface {
	ListSince(ctx context.Context, since time.Time) ([]analytics.Snapshot, error)
}

type PostgresAnalyticsRepository struct {
	db database.DB
}

func NewPostgresAnalyticsRepository(db database.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

// ListSince returns snapshots dated on or after since, oldest first.
func (r *PostgresAnalyticsRepository) ListSince(ctx context.Context, since time.Time) ([]analytics.Snapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, snapshot_date, active_jobs, total_applications, citizens_served,
		        micro_gigs_completed, total_payment_processed::float8, skills_demand, parish_stats
		 FROM analytics_snapshots
		 WHERE snapshot_date >= $1
		 ORDER BY snapshot_date ASC`,
		since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analytics.Snapshot, 0)
	for rows.Next() {
		var (
			s                          analytics.Snapshot
			jobs, apps, citizens, gigs int32
			demandRaw, parishRaw       []byte
		)
		if err := rows.Scan(
			&s.ID,
			&s.Date,
			&jobs,
			&apps,
			&citizens,
			&gigs,
			&s.TotalPaymentProcessed,
			&demandRaw,
			&parishRaw,
		); err != nil {
			return nil, err
		}
		s.ActiveJobs = int(jobs)
		s.TotalApplications = int(apps)
		s.CitizensServed = int(citizens)
		s.MicroGigsCompleted = int(gigs)

		if err := decodeJSONMap(demandRaw, &s.SkillsDemand); err != nil {
			return nil, fmt.Errorf("snapshot %s skills_demand: %w", s.ID, err)
		}
		if err := decodeJSONMap(parishRaw, &s.ParishStats); err != nil {
			return nil, fmt.Errorf("snapshot %s parish_stats: %w", s.ID, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSONMap[V any](raw []byte, dst *map[string]V) error {
	m := map[string]V{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
	}
	*dst = m
	return nil
}
