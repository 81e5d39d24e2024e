package repository

import (
	"context"
	"errors"
	"strings"

	"parish-match/internal/database"
	"parish-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ user.Repository = (*PostgresUserRepository)(nil)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, email, name, phone, parish, skills, bio, role, created_at, updated_at`

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) ListByParish(ctx context.Context, parish string) ([]user.User, error) {
	parish = strings.TrimSpace(parish)
	if parish == "" {
		return []user.User{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE parish = $1
		 ORDER BY created_at ASC`,
		parish,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u      user.User
		role   string
		skills []string
	)
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Phone,
		&u.Parish,
		&skills,
		&u.Bio,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return user.User{}, err
	}
	u.Role = user.Role(role)
	if skills == nil {
		skills = []string{}
	}
	u.Skills = skills
	return u, nil
}
