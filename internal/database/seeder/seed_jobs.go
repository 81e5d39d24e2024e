package seeder

import (
	"context"

	"parish-match/internal/database"
	"parish-match/internal/domain/job"
)

type demoJob struct {
	Key         string
	Title       string
	Description string
	Employer    string
	Parish      string
	SalaryMin   int64
	SalaryMax   int64
	Type        job.Type
	Skills      []string
	Apps        int
}

var demoJobs = []demoJob{
	{
		Key:         "job-1",
		Title:       "Web Developer",
		Description: "Build modern, accessible government websites with React and Next.js.",
		Employer:    "Ministry of Technology",
		Parish:      "Kingston",
		SalaryMin:   50000,
		SalaryMax:   70000,
		Type:        job.TypeFullTime,
		Skills:      []string{"JavaScript", "React", "Next.js", "Accessibility Standards"},
		Apps:        15,
	},
	{
		Key:         "job-2",
		Title:       "Graphic Designer",
		Description: "Marketing material, social media content and public awareness campaigns.",
		Employer:    "Ministry of Information",
		Parish:      "St. Andrew",
		SalaryMin:   30000,
		SalaryMax:   45000,
		Type:        job.TypeContract,
		Skills:      []string{"Adobe Creative Suite", "Branding", "Print Design", "Social Media Design"},
		Apps:        8,
	},
	{
		Key:         "job-3",
		Title:       "Primary School Teacher",
		Description: "Qualified primary school teachers for schools across the island.",
		Employer:    "Ministry of Education",
		Parish:      "Manchester",
		SalaryMin:   45000,
		SalaryMax:   60000,
		Type:        job.TypeFullTime,
		Skills:      []string{"Bachelor's in Education", "Teaching Certification"},
		Apps:        23,
	},
	{
		Key:         "job-4",
		Title:       "Healthcare Administrator",
		Description: "Manage patient records and scheduling in a public healthcare facility.",
		Employer:    "Ministry of Health",
		Parish:      "St. James",
		SalaryMin:   55000,
		SalaryMax:   75000,
		Type:        job.TypeFullTime,
		Skills:      []string{"Healthcare Administration Degree", "Medical Records Management"},
		Apps:        12,
	},
	{
		Key:         "job-5",
		Title:       "Civil Engineer",
		Description: "Design and oversee construction of roads, bridges and public facilities.",
		Employer:    "Ministry of Infrastructure",
		Parish:      "Clarendon",
		SalaryMin:   80000,
		SalaryMax:   120000,
		Type:        job.TypeFullTime,
		Skills:      []string{"Civil Engineering Degree", "Professional License", "AutoCAD"},
		Apps:        6,
	},
	{
		Key:         "job-6",
		Title:       "Front-end Support Developer",
		Description: "Maintain citizen-facing portals and fix accessibility issues.",
		Employer:    "eGov Jamaica",
		Parish:      "Kingston",
		SalaryMin:   40000,
		SalaryMax:   55000,
		Type:        job.TypePartTime,
		Skills:      []string{"JavaScript", "React"},
		Apps:        4,
	},
	{
		Key:         "job-7",
		Title:       "API Developer",
		Description: "Build integration services between ministry systems.",
		Employer:    "eGov Jamaica",
		Parish:      "Kingston",
		SalaryMin:   60000,
		SalaryMax:   85000,
		Type:        job.TypeFullTime,
		Skills:      []string{"Node.js", "PostgreSQL", "Docker"},
		Apps:        2,
	},
}

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "jobs", "id", "title", "employer", "employer_id", "parish", "required_skills", "status"); err != nil {
		return err
	}

	employerID := demoID("user", "employer@demo.com")

	return database.InTx(ctx, db, func(tx database.Querier) error {
		for _, j := range demoJobs {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO jobs (id, title, description, employer, employer_id, parish, salary_min, salary_max, currency, job_type, required_skills, status, applications)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'JMD', $9, $10, $11, $12)
				 ON CONFLICT (id) DO UPDATE SET
				   title = EXCLUDED.title,
				   description = EXCLUDED.description,
				   parish = EXCLUDED.parish,
				   required_skills = EXCLUDED.required_skills,
				   status = EXCLUDED.status,
				   updated_at = now()`,
				demoID("job", j.Key),
				j.Title,
				j.Description,
				j.Employer,
				employerID,
				j.Parish,
				j.SalaryMin,
				j.SalaryMax,
				string(j.Type),
				j.Skills,
				string(job.StatusActive),
				j.Apps,
			); err != nil {
				return err
			}
		}

		return nil
	})
}
