package seeder

import (
	"context"
	"encoding/json"
	"time"

	"parish-match/internal/database"
	"parish-match/internal/domain/analytics"
)

// SnapshotsSeeder writes one analytics snapshot per day for the last week,
// derived from the demo jobs so the dashboard has something to aggregate.
type SnapshotsSeeder struct {
	Now func() time.Time
}

func (SnapshotsSeeder) Name() string { return "analytics_snapshots" }

func (s SnapshotsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "analytics_snapshots", "id", "snapshot_date", "skills_demand", "parish_stats"); err != nil {
		return err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	today := now().UTC().Truncate(24 * time.Hour)

	return database.InTx(ctx, db, func(tx database.Querier) error {
		for day := 0; day < 7; day++ {
			snap := demoSnapshot(today.AddDate(0, 0, -day), day)

			demand, err := json.Marshal(snap.SkillsDemand)
			if err != nil {
				return err
			}
			parishes, err := json.Marshal(snap.ParishStats)
			if err != nil {
				return err
			}

			if _, err := tx.Exec(
				ctx,
				`INSERT INTO analytics_snapshots (id, snapshot_date, active_jobs, total_applications, citizens_served, micro_gigs_completed, total_payment_processed, skills_demand, parish_stats)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				 ON CONFLICT (snapshot_date) DO NOTHING`,
				demoID("snapshot", snap.Date.Format(time.DateOnly)),
				snap.Date,
				snap.ActiveJobs,
				snap.TotalApplications,
				snap.CitizensServed,
				snap.MicroGigsCompleted,
				snap.TotalPaymentProcessed,
				demand,
				parishes,
			); err != nil {
				return err
			}
		}

		return nil
	})
}

func demoSnapshot(date time.Time, daysAgo int) analytics.Snapshot {
	snap := analytics.Snapshot{
		Date:                  date,
		ActiveJobs:            len(demoJobs),
		CitizensServed:        120 - daysAgo*3,
		MicroGigsCompleted:    daysAgo % 3,
		TotalPaymentProcessed: float64(2500 * (daysAgo % 3)),
		SkillsDemand:          map[string]int{},
		ParishStats:           map[string]analytics.ParishStat{},
	}
	for _, j := range demoJobs {
		for _, sk := range j.Skills {
			snap.SkillsDemand[sk]++
		}
		st := snap.ParishStats[j.Parish]
		st.Jobs++
		snap.ParishStats[j.Parish] = st
	}
	for _, u := range demoUsers {
		st := snap.ParishStats[u.Parish]
		st.Citizens++
		snap.ParishStats[u.Parish] = st
	}
	snap.TotalApplications = len(demoApplications) + daysAgo
	return snap
}
