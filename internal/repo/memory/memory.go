package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angeliquesouvant/bank-account/internal/model/operation"
	"github.com/angeliquesouvant/bank-account/internal/serviceerrs"
)

type AccountRepository struct {
	balances map[uuid.UUID]decimal.Decimal
	mu       sync.RWMutex
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		balances: make(map[uuid.UUID]decimal.Decimal),
	}
}

func (r *AccountRepository) CreateAccount(_ context.Context,
	id uuid.UUID, balance decimal.Decimal,
) error {
	if balance.IsNegative() {
		return fmt.Errorf("failed to create account %s: %w",
			id, &serviceerrs.NegativeAmountError{Amount: balance})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[id]; ok {
		return fmt.Errorf("failed to create account %s: %w",
			id, serviceerrs.ErrAccountAlreadyExists)
	}
	r.balances[id] = balance
	return nil
}

func (r *AccountRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.balances[id]
	return ok, nil
}

func (r *AccountRepository) GetBalance(_ context.Context, id uuid.UUID) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	balance, ok := r.balances[id]
	if !ok {
		return decimal.Decimal{}, &serviceerrs.AccountNotFoundError{AccountID: id}
	}
	return balance, nil
}

func (r *AccountRepository) UpdateBalance(_ context.Context,
	id uuid.UUID, balance decimal.Decimal,
) error {
	if balance.IsNegative() {
		return errors.New("failed to update balance: balance must not be negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[id]; !ok {
		return &serviceerrs.AccountNotFoundError{AccountID: id}
	}
	r.balances[id] = balance
	return nil
}

type OperationRepository struct {
	ledger map[uuid.UUID][]operation.Operation
	mu     sync.RWMutex
}

func NewOperationRepository() *OperationRepository {
	return &OperationRepository{
		ledger: make(map[uuid.UUID][]operation.Operation),
	}
}

func (r *OperationRepository) Create(_ context.Context, op operation.Operation) error {
	if !op.Amount.IsPositive() {
		return fmt.Errorf("failed to create operation: %w",
			&serviceerrs.NegativeAmountError{Amount: op.Amount})
	}
	if op.BalanceAfter.IsNegative() {
		return errors.New("failed to create operation: balance after must not be negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ledger[op.AccountID] = append(r.ledger[op.AccountID], op)
	return nil
}

// FindAllByAccountIDOrderByDateDesc returns a copy of the account's ledger,
// newest first. Operations with the same timestamp come in reverse
// insertion order.
func (r *OperationRepository) FindAllByAccountIDOrderByDateDesc(_ context.Context,
	id uuid.UUID,
) ([]operation.Operation, error) {
	r.mu.RLock()
	stored := r.ledger[id]
	ops := make([]operation.Operation, len(stored))
	copy(ops, stored)
	r.mu.RUnlock()

	slices.Reverse(ops)
	slices.SortStableFunc(ops, func(a, b operation.Operation) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return ops, nil
}
