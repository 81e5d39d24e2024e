package repository

import (
	"context"
	"errors"
	"strings"

	"parish-match/internal/database"
	"parish-match/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	ListActiveByParish(ctx context.Context, parish string) ([]job.Job, error)
	CountActiveByParish(ctx context.Context) (map[string]int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, description, employer, employer_id, parish, salary_min, salary_max,
	currency, job_type, required_skills, deadline, status, applications, created_at, updated_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

// ListActiveByParish returns open jobs in parish, newest first.
func (r *PostgresJobRepository) ListActiveByParish(ctx context.Context, parish string) ([]job.Job, error) {
	parish = strings.TrimSpace(parish)
	if parish == "" {
		return []job.Job{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE parish = $1 AND status = $2
		 ORDER BY created_at DESC`,
		parish, string(job.StatusActive),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) CountActiveByParish(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT parish, COUNT(*)
		 FROM jobs
		 WHERE status = $1
		 GROUP BY parish`,
		string(job.StatusActive),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var p string
		var n int64
		if err := rows.Scan(&p, &n); err != nil {
			return nil, err
		}
		out[p] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j       job.Job
		jobType string
		status  string
		apps    int32
		skills  []string
	)
	if err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Employer,
		&j.EmployerID,
		&j.Parish,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.Currency,
		&jobType,
		&skills,
		&j.Deadline,
		&status,
		&apps,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return job.Job{}, err
	}
	j.JobType = job.Type(jobType)
	j.Status = job.Status(status)
	j.Applications = int(apps)
	if skills == nil {
		skills = []string{}
	}
	j.RequiredSkills = skills
	return j, nil
}
