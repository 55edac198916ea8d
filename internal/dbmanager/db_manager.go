package dbmanager

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/angeliquesouvant/bank-account/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	minConns = 1
	maxConns = 10
)

// DBManager chains the pool setup steps. The first failing step is kept in
// Error() and turns the following steps into no-ops.
type DBManager struct {
	log  *slog.Logger
	pool *pgxpool.Pool
	err  error
	dsn  string
}

func New(dsn string, log *slog.Logger) *DBManager {
	return &DBManager{
		log:  log,
		pool: nil,
		err:  nil,
		dsn:  dsn,
	}
}

func (m *DBManager) Connect(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	cfg, err := pgxpool.ParseConfig(m.dsn)
	if err != nil {
		m.fail(ctx, "failed to parse DSN", err)
		return m
	}
	cfg.MinConns = minConns
	cfg.MaxConns = maxConns
	cfg.ConnConfig.Tracer = &queryTracer{m.log}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		m.fail(ctx, "failed to init pgxpool", err)
		return m
	}

	m.pool = pool
	return m
}

func (m *DBManager) Ping(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}
	if m.pool == nil {
		m.fail(ctx, "failed to ping the DB", errors.New("not connected"))
		return m
	}

	if err := m.pool.Ping(ctx); err != nil {
		m.fail(ctx, "failed to ping the DB", err)
	}
	return m
}

func (m *DBManager) ApplyMigrations(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	migrationURL, err := toMigrationURL(m.dsn)
	if err != nil {
		m.fail(ctx, "failed to build migration URL", err)
		return m
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		m.fail(ctx, "failed to open embedded migrations", err)
		return m
	}

	mg, err := migrate.NewWithSourceInstance("iofs", src, migrationURL)
	if err != nil {
		m.fail(ctx, "failed to init migrations", err)
		return m
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			m.log.LogAttrs(ctx,
				slog.LevelWarn,
				"failed to close migrations",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()

	if err = mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		m.fail(ctx, "failed to apply migrations", err)
		return m
	}

	m.log.LogAttrs(ctx,
		slog.LevelInfo,
		"migrations applied",
	)
	return m
}

func (m *DBManager) Error() error {
	return m.err
}

func (m *DBManager) GetPool(_ context.Context) (*pgxpool.Pool, error) {
	if m.pool == nil {
		return nil, errors.New("DB pool is not initialized")
	}
	if m.err != nil {
		return nil, fmt.Errorf("DB pool is not ready: %w", m.err)
	}
	return m.pool, nil
}

func (m *DBManager) Close() {
	if m.pool == nil {
		return
	}

	m.pool.Close()
	m.log.LogAttrs(context.TODO(),
		slog.LevelInfo,
		"connection to DB closed",
	)
}

func (m *DBManager) fail(ctx context.Context, msg string, err error) {
	m.log.LogAttrs(ctx,
		slog.LevelError,
		msg,
		slog.Any(model.KeyLoggerError, err),
	)
	m.err = fmt.Errorf("%s: %w", msg, err)
}

// toMigrationURL switches a postgres:// URL to the pgx5:// scheme the
// migrate driver is registered under.
func toMigrationURL(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("DSN must be a URL: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		u.Scheme = "pgx5"
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported DSN scheme %q", u.Scheme)
	}
}
