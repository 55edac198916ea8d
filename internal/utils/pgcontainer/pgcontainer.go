// Package pgcontainer starts a throwaway Postgres container for integration tests.
package pgcontainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/angeliquesouvant/bank-account/internal/model"
)

const (
	pgPort     = "5432/tcp"
	defaultTag = "17-alpine"
	maxWait    = 30 * time.Second
	expiresIn  = 300
	setupWait  = 5 * time.Second

	suUser     = "postgres"
	suPassword = "postgres"
	dbName     = "bank"
	dbUser     = "bank"
	dbPassword = "bank"
)

// ErrDockerUnavailable is returned by RunContainer when no docker daemon
// answers. Callers may skip their tests on it.
var ErrDockerUnavailable = errors.New("docker is unavailable")

type PGContainer struct {
	log       *slog.Logger
	pool      *dockertest.Pool
	container *dockertest.Resource
	hostPort  string
}

func New(log *slog.Logger) *PGContainer {
	return &PGContainer{log: log}
}

// RunContainer starts postgres, waits until it accepts connections and
// creates the test user and database.
func (c *PGContainer) RunContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDockerUnavailable, err)
	}
	if err = pool.Client.Ping(); err != nil {
		return fmt.Errorf("%w: %w", ErrDockerUnavailable, err)
	}
	c.pool = pool

	container, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        imageTag(),
			Env: []string{
				"POSTGRES_USER=" + suUser,
				"POSTGRES_PASSWORD=" + suPassword,
			},
			ExposedPorts: []string{pgPort},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return fmt.Errorf("failed to run postgres container: %w", err)
	}
	c.container = container
	c.hostPort = container.GetHostPort(pgPort)
	if err = container.Expire(expiresIn); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelWarn,
			"failed to set container expiration",
			slog.Any(model.KeyLoggerError, err),
		)
	}

	pool.MaxWait = maxWait
	var conn *pgx.Conn
	if err = pool.Retry(func() error {
		conn, err = pgx.Connect(context.TODO(), c.dsn(suUser, suPassword, "postgres"))
		if err != nil {
			return fmt.Errorf("failed to connect to the DB: %w", err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}
	defer func() {
		if err := conn.Close(context.TODO()); err != nil {
			c.log.LogAttrs(context.TODO(),
				slog.LevelWarn,
				"failed to close the super user connection",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()

	return createTestDB(conn)
}

// GetDSN is valid once RunContainer succeeded.
func (c *PGContainer) GetDSN() string {
	return c.dsn(dbUser, dbPassword, dbName)
}

func (c *PGContainer) Close() {
	if c.pool == nil || c.container == nil {
		return
	}
	if err := c.pool.Purge(c.container); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to purge the postgres container",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func (c *PGContainer) dsn(user, password, db string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		user, password, c.hostPort, db)
}

// imageTag reads POSTGRES_TAG from the environment or a local .env file.
func imageTag() string {
	_ = godotenv.Load(".env")
	if tag := os.Getenv("POSTGRES_TAG"); tag != "" {
		return tag
	}
	return defaultTag
}

func createTestDB(conn *pgx.Conn) error {
	const (
		createUser = `CREATE USER %s PASSWORD '%s';`
		createDB   = `CREATE DATABASE %s OWNER %s ENCODING 'UTF8';`
	)

	ctx, cancel := context.WithTimeout(context.Background(), setupWait)
	defer cancel()
	if _, err := conn.Exec(ctx, fmt.Sprintf(createUser, dbUser, dbPassword)); err != nil {
		return fmt.Errorf("failed to create a test user: %w", err)
	}
	if _, err := conn.Exec(ctx, fmt.Sprintf(createDB, dbName, dbUser)); err != nil {
		return fmt.Errorf("failed to create a test DB: %w", err)
	}
	return nil
}
