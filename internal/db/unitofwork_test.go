package db_test

import (
	"context"
	"fmt"
	"testing"

	"esgcompass/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUOW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// profileExists reads the profiles table through the unit of work.
func profileExists(uow *db.SQLiteUnitOfWork, name string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT name FROM profiles WHERE name = ?`, name)
		var got string
		if err := row.Scan(&got); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return found
}

func insertProfile(ctx context.Context, tx db.DBTX, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO profiles (name, session_id, created_at, updated_at)
		VALUES (?, '', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`, name)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUOW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertProfile(ctx, tx, "green-fund")
	})
	require.NoError(t, err)

	assert.True(t, profileExists(uow, "green-fund"), "profile should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUOW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertProfile(ctx, tx, "half-saved"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, profileExists(uow, "half-saved"), "profile should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUOW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertProfile(ctx, tx, "panicked")
			panic("boom")
		})
	})

	assert.False(t, profileExists(uow, "panicked"), "profile should not exist after panic rollback")
}

func TestWithinTx_ProfileWithPrioritiesAtomic(t *testing.T) {
	uow := openTestUOW(t)

	// A priorities insert violating the CHECK constraint rolls back the
	// profile inserted in the same transaction.
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertProfile(ctx, tx, "green-fund"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO priorities (profile_name, field_id, importance)
			VALUES ('green-fund', 'EN101', 'URGENT')`)
		return err
	})
	require.Error(t, err)

	assert.False(t, profileExists(uow, "green-fund"))
}
