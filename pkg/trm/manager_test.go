package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (trm.Manager, *sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	return trm.NewManager(sqlxDB), sqlxDB, mock
}

func TestManager_DoCommits(t *testing.T) {
	m, _, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.NotNil(t, trm.ExtractTx(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_DoRollsBackOnError(t *testing.T) {
	m, _, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	cbErr := errors.New("boom")
	err := m.Do(context.Background(), func(ctx context.Context) error {
		return cbErr
	})

	assert.ErrorIs(t, err, cbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_NestedDoJoinsOuterTx(t *testing.T) {
	m, _, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := m.Do(context.Background(), func(outer context.Context) error {
		return m.Do(outer, func(inner context.Context) error {
			assert.Same(t, trm.ExtractTx(outer), trm.ExtractTx(inner))
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn(t *testing.T) {
	m, db, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	assert.Equal(t, trm.Querier(db), trm.Conn(context.Background(), db))

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.Equal(t, trm.Querier(trm.ExtractTx(ctx)), trm.Conn(ctx, db))
		return nil
	})
	require.NoError(t, err)
}
