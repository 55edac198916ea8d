package serviceerrs

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount       = errors.New("negative values are not accepted")
	ErrAccountNotFound      = errors.New("account does not exist")
	ErrOverdraft            = errors.New("withdrawal amount exceeds the account balance")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

type NegativeAmountError struct {
	Amount decimal.Decimal
}

func (e *NegativeAmountError) Error() string {
	return ErrNegativeAmount.Error()
}

func (e *NegativeAmountError) Is(target error) bool {
	return target == ErrNegativeAmount
}

type AccountNotFoundError struct {
	AccountID uuid.UUID
}

func (e *AccountNotFoundError) Error() string {
	return ErrAccountNotFound.Error()
}

func (e *AccountNotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound
}

type OverdraftError struct {
	Balance   decimal.Decimal
	Amount    decimal.Decimal
	AccountID uuid.UUID
}

func (e *OverdraftError) Error() string {
	return ErrOverdraft.Error()
}

func (e *OverdraftError) Is(target error) bool {
	return target == ErrOverdraft
}
