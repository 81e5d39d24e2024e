package seeder

import (
	"context"

	"parish-match/internal/database"
	"parish-match/internal/domain/analytics"
)

var demoApplications = []struct {
	Email  string
	JobKey string
	Status analytics.ApplicationStatus
}{
	{Email: "citizen@demo.com", JobKey: "job-1", Status: analytics.ApplicationReviewing},
	{Email: "citizen@demo.com", JobKey: "job-6", Status: analytics.ApplicationSubmitted},
	{Email: "citizen@demo.com", JobKey: "job-7", Status: analytics.ApplicationInterview},
	{Email: "keisha@demo.com", JobKey: "job-1", Status: analytics.ApplicationAccepted},
	{Email: "andre@demo.com", JobKey: "job-2", Status: analytics.ApplicationRejected},
	{Email: "marsha@demo.com", JobKey: "job-3", Status: analytics.ApplicationSubmitted},
}

type ApplicationsSeeder struct{}

func (ApplicationsSeeder) Name() string { return "job_applications" }

func (ApplicationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "job_applications", "id", "job_id", "user_id", "status"); err != nil {
		return err
	}

	return database.InTx(ctx, db, func(tx database.Querier) error {
		for _, a := range demoApplications {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO job_applications (id, job_id, user_id, status)
				 VALUES ($1, $2, $3, $4)
				 ON CONFLICT (job_id, user_id) DO UPDATE SET status = EXCLUDED.status, updated_at = now()`,
				demoID("application", a.Email+"/"+a.JobKey),
				demoID("job", a.JobKey),
				demoID("user", a.Email),
				string(a.Status),
			); err != nil {
				return err
			}
		}

		return nil
	})
}
