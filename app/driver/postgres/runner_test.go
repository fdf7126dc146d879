package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-service/app/utils/logger"
)

func createTestRunner(t *testing.T) (*Runner, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewRunner(mockDB, testLogger), mockDB
}

func TestRunner_InTransaction(t *testing.T) {
	unitErr := errors.New("unit of work failed")

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		fn      func(tx pgx.Tx) error
		wantErr error
	}{
		{
			name: "commits on success",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectBegin()
				mockDB.ExpectExec("UPDATE users").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mockDB.ExpectCommit()
			},
			fn: func(tx pgx.Tx) error {
				_, err := tx.Exec(context.Background(), "UPDATE users SET updated_at = CURRENT_TIMESTAMP")
				return err
			},
			wantErr: nil,
		},
		{
			name: "rolls back and returns the original error on failure",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectBegin()
				mockDB.ExpectRollback()
			},
			fn: func(tx pgx.Tx) error {
				return unitErr
			},
			wantErr: unitErr,
		},
		{
			name: "rollback failure does not replace the original error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectBegin()
				mockDB.ExpectRollback().WillReturnError(errors.New("rollback failed"))
			},
			fn: func(tx pgx.Tx) error {
				return unitErr
			},
			wantErr: unitErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, mockDB := createTestRunner(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := runner.InTransaction(context.Background(), tt.fn)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestRunner_InTransaction_BeginFails(t *testing.T) {
	runner, mockDB := createTestRunner(t)
	defer mockDB.Close()

	mockDB.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := runner.InTransaction(context.Background(), func(tx pgx.Tx) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.False(t, called, "unit of work must not run without a transaction")
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRunner_InTransaction_CommitFails(t *testing.T) {
	runner, mockDB := createTestRunner(t)
	defer mockDB.Close()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := runner.InTransaction(context.Background(), func(tx pgx.Tx) error {
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRunner_ReadOnly(t *testing.T) {
	t.Run("returns the unit of work result", func(t *testing.T) {
		runner, mockDB := createTestRunner(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT 1").
			WillReturnRows(pgxmock.NewRows([]string{"one"}).AddRow(1))

		var got int
		err := runner.ReadOnly(context.Background(), func(q Querier) error {
			return q.QueryRow(context.Background(), "SELECT 1").Scan(&got)
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("re-raises failures unchanged", func(t *testing.T) {
		runner, mockDB := createTestRunner(t)
		defer mockDB.Close()

		queryErr := errors.New("relation does not exist")
		err := runner.ReadOnly(context.Background(), func(q Querier) error {
			return queryErr
		})

		assert.ErrorIs(t, err, queryErr)
	})
}

func TestRunner_ReadOnlyOr(t *testing.T) {
	runner, mockDB := createTestRunner(t)
	defer mockDB.Close()

	substitute := errors.New("user lookup failed")

	err := runner.ReadOnlyOr(context.Background(), substitute, func(q Querier) error {
		return errors.New("raw driver error")
	})

	assert.ErrorIs(t, err, substitute)

	err = runner.ReadOnlyOr(context.Background(), substitute, func(q Querier) error {
		return nil
	})
	assert.NoError(t, err)
}

func TestRunner_Exec(t *testing.T) {
	runner, mockDB := createTestRunner(t)
	defer mockDB.Close()

	mockDB.ExpectBegin()
	mockDB.ExpectExec("DELETE FROM users").
		WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mockDB.ExpectCommit()

	err := runner.Exec(context.Background(), "DELETE FROM users WHERE username = $1", "alice")

	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
