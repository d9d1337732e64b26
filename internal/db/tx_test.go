package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

const testSchema = `CREATE TABLE IF NOT EXISTS test_table (id INTEGER PRIMARY KEY, value TEXT)`

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(context.Background(), ":memory:", testSchema)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func countRows(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM test_table`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Success(t *testing.T) {
	conn := setupTestDB(t)

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, "test")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if count := countRows(t, conn); count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	conn := setupTestDB(t)
	testErr := errors.New("test error")

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, "test"); err != nil {
			return err
		}
		return testErr
	})

	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, testErr)
	}
	if count := countRows(t, conn); count != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", count)
	}
}

func TestWithTx_CanceledContext(t *testing.T) {
	conn := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, conn, func(*sql.Tx) error {
		called = true
		return nil
	})
	if err == nil {
		t.Error("WithTx should fail with a canceled context")
	}
	if called {
		t.Error("fn should not run when the transaction cannot begin")
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "test.db")
	conn, err := Open(context.Background(), path, testSchema)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	if count := countRows(t, conn); count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestOpen_BadSchema(t *testing.T) {
	if _, err := Open(context.Background(), ":memory:", "NOT SQL"); err == nil {
		t.Error("Open() should fail on an invalid schema")
	}
}

func TestNullStringValue(t *testing.T) {
	if got := NullStringValue(sql.NullString{}); got != "" {
		t.Errorf("NullStringValue(invalid) = %q, want empty", got)
	}
	if got := NullStringValue(sql.NullString{String: "image/png", Valid: true}); got != "image/png" {
		t.Errorf("NullStringValue(valid) = %q", got)
	}
}
