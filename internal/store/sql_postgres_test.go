package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/jackc/pgerrcode"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	db := &DB{
		DB:                 conn,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}
	return db, mock, conn
}

func TestQueryRowRetryContext_RetriesTransientFailure(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	mock.ExpectQuery("SELECT 1").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	var one int
	if err := db.QueryRowRetryContext(context.Background(), "SELECT 1").Scan(&one); err != nil {
		t.Fatalf("expected second attempt to succeed, got: %v", err)
	}
	if one != 1 {
		t.Errorf("expected scanned value 1, got %d", one)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestQueryRowRetryContext_DoesNotRetryConstraintViolation(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	// a single expectation: a second query would fail ExpectationsWereMet
	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	var id int64
	err := db.QueryRowRetryContext(context.Background(), "INSERT INTO users").Scan(&id)
	if postgresError(err) != pgerrcode.UniqueViolation {
		t.Fatalf("expected the unique violation back unchanged, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("constraint violation must not be retried: %v", err)
	}
}

func TestExecRetryContext_GivesUpAfterSecondFailure(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	mock.ExpectExec("DELETE FROM users").WillReturnError(pgError(pgerrcode.ConnectionException))
	mock.ExpectExec("DELETE FROM users").WillReturnError(pgError(pgerrcode.ConnectionException))

	_, err := db.ExecRetryContext(context.Background(), "DELETE FROM users")
	if postgresError(err) != pgerrcode.ConnectionException {
		t.Fatalf("expected the connection error after retries, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected exactly two attempts: %v", err)
	}
}

func TestQueryRetryContext_DoesNotRetryPlainErrors(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	plain := errors.New("driver: bad connection string")
	mock.ExpectQuery("SELECT").WillReturnError(plain)

	_, err := db.QueryRetryContext(context.Background(), "SELECT email FROM users")
	if !errors.Is(err, plain) {
		t.Fatalf("expected the original error, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("non-postgres errors must not be retried: %v", err)
	}
}
