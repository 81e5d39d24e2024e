package migration

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var files embed.FS

// Files exposes the embedded schema migrations.
func Files() fs.FS {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Runner applies the embedded migrations against the database at URL. The
// URL scheme must be pgx5.
type Runner struct {
	URL    string
	Source fs.FS
	Logger *zap.Logger
}

type Status struct {
	Version uint
	Dirty   bool
	Applied bool
}

func (r Runner) open() (*migrate.Migrate, error) {
	if r.URL == "" {
		return nil, errors.New("migration: empty database url")
	}
	source := r.Source
	if source == nil {
		source = Files()
	}

	src, err := iofs.New(source, ".")
	if err != nil {
		return nil, fmt.Errorf("migration: open source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, r.URL)
	if err != nil {
		return nil, fmt.Errorf("migration: connect: %w", err)
	}
	if r.Logger != nil {
		m.Log = zapLogger{l: r.Logger.Sugar()}
	}
	return m, nil
}

// Up applies every pending migration. An already current schema is not an
// error.
func (r Runner) Up() error {
	m, err := r.open()
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: up: %w", err)
	}
	return nil
}

// Down rolls back steps migrations.
func (r Runner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("migration: steps must be positive, got %d", steps)
	}
	m, err := r.open()
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: down: %w", err)
	}
	return nil
}

func (r Runner) Version() (Status, error) {
	m, err := r.open()
	if err != nil {
		return Status{}, err
	}
	defer closeMigrate(m)

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("migration: version: %w", err)
	}
	return Status{Version: v, Dirty: dirty, Applied: true}, nil
}

func closeMigrate(m *migrate.Migrate) {
	_, _ = m.Close()
}

type zapLogger struct {
	l *zap.SugaredLogger
}

func (z zapLogger) Printf(format string, v ...any) {
	z.l.Infof(format, v...)
}

func (z zapLogger) Verbose() bool {
	return false
}
