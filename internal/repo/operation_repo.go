package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/angeliquesouvant/bank-account/internal/model"
	"github.com/angeliquesouvant/bank-account/internal/model/operation"
	"github.com/angeliquesouvant/bank-account/internal/serviceerrs"
)

type OperationRepository struct {
	DB
}

func NewOperationRepository(pool connectionPool, log *slog.Logger) *OperationRepository {
	return &OperationRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Create stores the timestamp at microsecond precision, the finest
// Postgres keeps.
func (r *OperationRepository) Create(ctx context.Context, op operation.Operation) error {
	if !op.Amount.IsPositive() {
		return fmt.Errorf("failed to create operation: %w",
			&serviceerrs.NegativeAmountError{Amount: op.Amount})
	}
	if op.BalanceAfter.IsNegative() {
		return errors.New("failed to create operation: balance after must not be negative")
	}

	const query = `
		INSERT INTO operations
			(account_id, name_type, label, created_at, amount, balance_after)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := WithRetry(ctx, func() (struct{}, error) {
		_, err := r.pool.Exec(ctx, query,
			op.AccountID,
			string(op.Type),
			op.Label,
			op.Timestamp.Truncate(time.Microsecond),
			model.ToPGNumeric(op.Amount),
			model.ToPGNumeric(op.BalanceAfter),
		)
		return struct{}{}, err //nolint: wrapcheck // wrapped below
	})
	if err != nil {
		return fmt.Errorf("failed to create operation for %s: %w", op.AccountID, err)
	}
	return nil
}

// FindAllByAccountIDOrderByDateDesc lists the account's operations newest
// first. Operations with the same timestamp come in reverse insertion order.
func (r *OperationRepository) FindAllByAccountIDOrderByDateDesc(ctx context.Context,
	id uuid.UUID,
) ([]operation.Operation, error) {
	const query = `
		SELECT name_type, label, created_at, amount, balance_after
		FROM operations
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC`

	ops, err := WithRetry(ctx, func() ([]operation.Operation, error) {
		rows, err := r.pool.Query(ctx, query, id)
		if err != nil {
			return nil, err //nolint: wrapcheck // wrapped below
		}
		return pgx.CollectRows(rows, func(row pgx.CollectableRow) (operation.Operation, error) {
			return scanOperation(row, id)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list operations of %s: %w", id, err)
	}
	if ops == nil {
		ops = []operation.Operation{}
	}
	return ops, nil
}

func scanOperation(row pgx.CollectableRow, id uuid.UUID) (operation.Operation, error) {
	var (
		tp           string
		label        string
		createdAt    time.Time
		amount       pgtype.Numeric
		balanceAfter pgtype.Numeric
	)
	if err := row.Scan(&tp, &label, &createdAt, &amount, &balanceAfter); err != nil {
		return operation.Operation{}, fmt.Errorf("failed to scan operation: %w", err)
	}

	a, err := model.FromPGNumeric(amount)
	if err != nil {
		return operation.Operation{}, fmt.Errorf("corrupted amount: %w", err)
	}
	b, err := model.FromPGNumeric(balanceAfter)
	if err != nil {
		return operation.Operation{}, fmt.Errorf("corrupted balance after: %w", err)
	}
	return operation.New(id, operation.Type(tp), label, createdAt, a, b), nil
}
