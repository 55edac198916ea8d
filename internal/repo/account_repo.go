package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/angeliquesouvant/bank-account/internal/model"
	"github.com/angeliquesouvant/bank-account/internal/serviceerrs"
)

type AccountRepository struct {
	DB
}

func NewAccountRepository(pool connectionPool, log *slog.Logger) *AccountRepository {
	return &AccountRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

func (r *AccountRepository) CreateAccount(ctx context.Context,
	id uuid.UUID, balance decimal.Decimal,
) error {
	if balance.IsNegative() {
		return fmt.Errorf("failed to create account %s: %w",
			id, &serviceerrs.NegativeAmountError{Amount: balance})
	}

	const query = `INSERT INTO accounts (id, balance) VALUES ($1, $2)`
	_, err := WithRetry(ctx, func() (struct{}, error) {
		_, err := r.pool.Exec(ctx, query, id, model.ToPGNumeric(balance))
		return struct{}{}, err //nolint: wrapcheck // wrapped below
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("failed to create account %s: %w",
			id, serviceerrs.ErrAccountAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create account %s: %w", id, err)
	}
	return nil
}

func (r *AccountRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`
	exists, err := WithRetry(ctx, func() (bool, error) {
		var exists bool
		err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
		return exists, err //nolint: wrapcheck // wrapped below
	})
	if err != nil {
		r.log.LogAttrs(ctx,
			slog.LevelError,
			"failed to check if account exists in DB",
			slog.String("account", id.String()),
			slog.Any(model.KeyLoggerError, err),
		)
		return false, fmt.Errorf("failed to check account %s: %w", id, err)
	}
	return exists, nil
}

func (r *AccountRepository) GetBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	balance, err := WithRetry(ctx, func() (decimal.Decimal, error) {
		return selectBalance(ctx, r.pool, id, false)
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return balance, nil
}

// UpdateBalance locks the account row before overwriting its balance.
func (r *AccountRepository) UpdateBalance(ctx context.Context,
	id uuid.UUID, balance decimal.Decimal,
) error {
	if balance.IsNegative() {
		return errors.New("failed to update balance: balance must not be negative")
	}

	updateLogic := func(ctx context.Context, tx connectionPool) (struct{}, error) {
		if _, err := selectBalance(ctx, tx, id, true); err != nil {
			return struct{}{}, err
		}

		const query = `UPDATE accounts SET balance = $2 WHERE id = $1`
		if _, err := tx.Exec(ctx, query, id, model.ToPGNumeric(balance)); err != nil {
			return struct{}{}, fmt.Errorf("failed to update balance of %s: %w", id, err)
		}
		return struct{}{}, nil
	}

	_, err := WithRetry(ctx, func() (struct{}, error) {
		return WithTX[struct{}](ctx, r.pool, r.log, updateLogic)
	})
	return err
}

func selectBalance(ctx context.Context,
	conn connectionPool, id uuid.UUID, forUpdate bool,
) (decimal.Decimal, error) {
	query := `SELECT balance FROM accounts WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var n pgtype.Numeric
	err := conn.QueryRow(ctx, query, id).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Decimal{}, &serviceerrs.AccountNotFoundError{AccountID: id}
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to select balance of %s: %w", id, err)
	}

	balance, err := model.FromPGNumeric(n)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("corrupted balance of %s: %w", id, err)
	}
	return balance, nil
}
