package seeder

import (
	"context"
	"errors"
	"testing"

	"parish-match/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// columnsDB reports a fixed set of existing columns.
type columnsDB struct {
	columns []string
}

func (d columnsDB) Ping(context.Context) error { return nil }
func (d columnsDB) Close() error               { return nil }
func (d columnsDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("read only")
}
func (d columnsDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &columnRows{names: d.columns, idx: -1}, nil
}
func (d columnsDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (d columnsDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("read only")
}

type columnRows struct {
	names []string
	idx   int
}

func (r *columnRows) Close()     {}
func (r *columnRows) Err() error { return nil }
func (r *columnRows) Next() bool {
	r.idx++
	return r.idx < len(r.names)
}
func (r *columnRows) Scan(dest ...any) error {
	*dest[0].(*string) = r.names[r.idx]
	return nil
}

func TestRequireColumns(t *testing.T) {
	ctx := context.Background()
	db := columnsDB{columns: []string{"id", "email"}}

	require.NoError(t, requireColumns(ctx, db, "users", "id", "email"))

	err := requireColumns(ctx, db, "users", "id", "parish", "skills")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "parish, skills")

	assert.ErrorIs(t, requireColumns(ctx, nil, "users", "id"), database.ErrNilDB)
	assert.Error(t, requireColumns(ctx, db, "users"))
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	err := Runner{Seeders: Defaults()}.Run(context.Background(), columnsDB{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "seed users")

	assert.ErrorIs(t, Runner{}.Run(context.Background(), nil), database.ErrNilDB)
}
