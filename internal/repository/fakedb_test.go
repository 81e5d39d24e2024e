package repository

import (
	"context"
	"fmt"
	"reflect"

	"parish-match/internal/database"

	"github.com/jackc/pgx/v5"
)

// fakeDB serves canned rows and records the last statement it saw.
type fakeDB struct {
	rows     [][]any
	queryErr error

	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.lastQuery, f.lastArgs = query, args
	return 0, f.queryErr
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.lastQuery, f.lastArgs = query, args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{data: f.rows, idx: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.lastQuery, f.lastArgs = query, args
	if f.queryErr != nil {
		return errRow{err: f.queryErr}
	}
	if len(f.rows) == 0 {
		return errRow{err: pgx.ErrNoRows}
	}
	return valuesRow(f.rows[0])
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("not supported")
}

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.idx], dest)
}

type valuesRow []any

func (v valuesRow) Scan(dest ...any) error { return assign(v, dest) }

type errRow struct{ err error }

func (e errRow) Scan(...any) error { return e.err }

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan: column %d: %s not assignable to %s", i, v.Type(), target.Type())
		}
		target.Set(v)
	}
	return nil
}
