package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTx struct {
	execs      int
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *recordingTx) Exec(context.Context, string, ...any) (int64, error) {
	t.execs++
	return 1, nil
}
func (t *recordingTx) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (t *recordingTx) QueryRow(context.Context, string, ...any) Row        { return nil }
func (t *recordingTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}
func (t *recordingTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type txDB struct {
	tx       *recordingTx
	beginErr error
}

func (d *txDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (d *txDB) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (d *txDB) QueryRow(context.Context, string, ...any) Row        { return nil }
func (d *txDB) Ping(context.Context) error                          { return nil }
func (d *txDB) Close() error                                        { return nil }
func (d *txDB) Begin(context.Context) (Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestInTx_CommitsOnSuccess(t *testing.T) {
	db := &txDB{tx: &recordingTx{}}

	err := InTx(context.Background(), db, func(q Querier) error {
		_, err := q.Exec(context.Background(), "INSERT")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, db.tx.execs)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	db := &txDB{tx: &recordingTx{}}
	boom := errors.New("boom")

	err := InTx(context.Background(), db, func(Querier) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestInTx_WrapsBeginAndCommitFailures(t *testing.T) {
	boom := errors.New("boom")

	err := InTx(context.Background(), &txDB{beginErr: boom}, func(Querier) error { return nil })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "begin")

	err = InTx(context.Background(), &txDB{tx: &recordingTx{commitErr: boom}}, func(Querier) error { return nil })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "commit")
}

func TestInTx_NilDB(t *testing.T) {
	assert.ErrorIs(t, InTx(context.Background(), nil, func(Querier) error { return nil }), ErrNilDB)
}
