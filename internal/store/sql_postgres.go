package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-hub/internal/config"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// maxQueryAttempts bounds retries for transient failures: one retry after a
// connection loss or serialization rollback, nothing more.
const maxQueryAttempts = 2

// QueryRowRetryContext runs a single-row query, retrying once when the
// failure is classified as [Retryable]. Constraint violations and other
// permanent errors are returned to the caller on the first attempt.
func (db *DB) QueryRowRetryContext(ctx context.Context, query string, args ...any) *sql.Row {
	row := db.QueryRowContext(ctx, query, args...)

	for attempt := 1; attempt < maxQueryAttempts; attempt++ {
		err := row.Err()
		if err == nil || db.errorClassificator.Classify(err) == NonRetryable {
			break
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying query after transient database error")
		row = db.QueryRowContext(ctx, query, args...)
	}

	return row
}

// QueryRetryContext is the multi-row analog of [DB.QueryRowRetryContext].
func (db *DB) QueryRetryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx, query, args...)

	for attempt := 1; attempt < maxQueryAttempts; attempt++ {
		if err == nil || db.errorClassificator.Classify(err) == NonRetryable {
			break
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying query after transient database error")
		rows, err = db.QueryContext(ctx, query, args...)
	}

	return rows, err
}

// ExecRetryContext executes a statement with the same single-retry policy.
func (db *DB) ExecRetryContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := db.ExecContext(ctx, query, args...)

	for attempt := 1; attempt < maxQueryAttempts; attempt++ {
		if err == nil || db.errorClassificator.Classify(err) == NonRetryable {
			break
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying statement after transient database error")
		result, err = db.ExecContext(ctx, query, args...)
	}

	return result, err
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
