// Package app assembles a ready account service from a Config.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angeliquesouvant/bank-account/internal/config"
	"github.com/angeliquesouvant/bank-account/internal/dbmanager"
	"github.com/angeliquesouvant/bank-account/internal/model"
	"github.com/angeliquesouvant/bank-account/internal/repo"
	"github.com/angeliquesouvant/bank-account/internal/repo/memory"
	"github.com/angeliquesouvant/bank-account/internal/service/account"
	"github.com/angeliquesouvant/bank-account/internal/service/formatter"
	"github.com/angeliquesouvant/bank-account/internal/service/printer"
	"github.com/angeliquesouvant/bank-account/internal/utils/clock"
	"github.com/angeliquesouvant/bank-account/internal/utils/logger"
)

// AccountStore is an account repository that can also open accounts.
type AccountStore interface {
	account.AccountRepository
	CreateAccount(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}

type App struct {
	Service  *account.Service
	Accounts AccountStore
	db       *dbmanager.DBManager
	log      *slog.Logger
}

type options struct {
	printer account.StatementPrinter
	clock   clock.Clock
}

type Option func(*options)

func WithPrinter(p account.StatementPrinter) Option {
	return func(o *options) {
		o.printer = p
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := options{
		printer: printer.NewStdout(),
		clock:   clock.System{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{log: log}
	var operations account.OperationRepository
	switch cfg.Storage {
	case model.StoragePostgres:
		db := dbmanager.New(cfg.DatabaseURI, log).
			Connect(ctx).
			Ping(ctx).
			ApplyMigrations(ctx)
		if err := db.Error(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to prepare the DB: %w", err)
		}
		pool, err := db.GetPool(ctx)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to get the DB pool: %w", err)
		}
		a.db = db
		a.Accounts = repo.NewAccountRepository(pool, log)
		operations = repo.NewOperationRepository(pool, log)
	default:
		a.Accounts = memory.NewAccountRepository()
		operations = memory.NewOperationRepository()
	}

	a.Service = account.New(
		a.Accounts,
		operations,
		formatter.New(formatter.TemplateFor(cfg.Locale)),
		o.printer,
		o.clock,
		log,
	)

	log.LogAttrs(ctx,
		slog.LevelInfo,
		"account service ready",
		slog.String("storage", cfg.Storage),
		slog.String("locale", cfg.Locale),
	)
	return a, nil
}

// NewFromArgs reads the config from dotEnvPath, the environment and args,
// in that order of increasing precedence, and logs to stderr at the
// configured level.
func NewFromArgs(ctx context.Context, dotEnvPath string, args []string, opts ...Option) (*App, error) {
	cfg := config.NewBuilder(logger.New(slog.LevelInfo)).
		FromDotEnv(dotEnvPath).
		FromEnv().
		FromFlags(args).
		GetConfig()

	log := logger.New(logger.ParseLevel(cfg.LogLevel))
	return New(logger.WithContext(ctx, log), cfg, log, opts...)
}

// OpenAccount creates an account with a fresh id and the given balance.
func (a *App) OpenAccount(ctx context.Context, balance decimal.Decimal) (uuid.UUID, error) {
	id := uuid.New()
	if err := a.Accounts.CreateAccount(ctx, id, balance); err != nil {
		return uuid.Nil, err //nolint: wrapcheck // repository errors reach the caller unchanged
	}
	return id, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
