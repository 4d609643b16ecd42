package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	// maxOpenConnections bounds the pool shared by all in-flight requests.
	maxOpenConnections = 10

	// connectTimeout bounds both the startup ping and the per-request
	// health probe.
	connectTimeout = 10 * time.Second
)

// DB wraps the shared *sql.DB pool. The pool is established once at
// startup and read by every repository; database/sql serializes access
// to the bounded set of underlying connections, so no additional
// locking is needed.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens the connection pool against the target
// database and verifies it with a bounded ping.
//
// The server is expected to keep running when the database is down, so
// an unreachable host is NOT a fatal error here: the pool is returned
// anyway and connections are retried lazily by database/sql on first
// use. Only a malformed DSN produces a non-nil error.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	ensureDatabaseExists(ctx, cfg, log)

	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConnections)
	conn.SetMaxIdleConns(maxOpenConnections)

	db := &DB{
		DB:     conn,
		logger: log,
	}

	// ping database
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).Str("func", "NewConnectPostgres").Msg("database unreachable, starting in degraded mode")
		return db, nil
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	if err := db.Migrate(); err != nil {
		log.Warn().Err(err).Str("func", "NewConnectPostgres").Msg("schema migration failed, continuing with existing schema")
	}

	return db, nil
}

// Migrate applies the embedded goose migrations to the pool's database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// HealthCheck acquires a pooled connection and pings the database with a
// bounded timeout. It is called on every /api/health request so the
// result always reflects live connectivity, never a cached flag.
func (db *DB) HealthCheck(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	return db.PingContext(pingCtx)
}

// ensureDatabaseExists connects to the "postgres" maintenance database
// and creates the target database when it is missing. Every failure is
// tolerated: the schema may already exist, or the running principal may
// lack CREATEDB privilege, and neither should stop the server.
func ensureDatabaseExists(ctx context.Context, cfg config.DB, log *logger.Logger) {
	admin, err := sql.Open("pgx", cfg.AdminDSN())
	if err != nil {
		log.Warn().Err(err).Msg("cannot open admin connection, skipping database creation")
		return
	}
	defer admin.Close()

	checkCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var exists bool
	err = admin.QueryRowContext(checkCtx, `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, cfg.Name).Scan(&exists)
	if err != nil {
		log.Warn().Err(err).Msg("cannot check database existence, skipping database creation")
		return
	}
	if exists {
		return
	}

	// CREATE DATABASE cannot be parameterised; the name comes from
	// server configuration, not from request input.
	if _, err := admin.ExecContext(checkCtx, fmt.Sprintf(`CREATE DATABASE %q`, cfg.Name)); err != nil {
		log.Warn().Err(err).Str("database", cfg.Name).Msg("cannot create database, assuming it is managed externally")
		return
	}

	log.Info().Str("database", cfg.Name).Msg("database created")
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
