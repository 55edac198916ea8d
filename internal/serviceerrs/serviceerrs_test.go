package serviceerrs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			"negative amount",
			&NegativeAmountError{Amount: decimal.NewFromInt(-1)},
			ErrNegativeAmount,
			"negative values are not accepted",
		},
		{
			"account not found",
			&AccountNotFoundError{AccountID: uuid.New()},
			ErrAccountNotFound,
			"account does not exist",
		},
		{
			"overdraft",
			&OverdraftError{
				AccountID: uuid.New(),
				Balance:   decimal.NewFromInt(500),
				Amount:    decimal.NewFromInt(1000),
			},
			ErrOverdraft,
			"withdrawal amount exceeds the account balance",
		},
	}
	sentinels := []error{ErrNegativeAmount, ErrAccountNotFound, ErrOverdraft}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())

			wrapped := fmt.Errorf("caller context: %w", tt.err)
			for _, s := range sentinels {
				assert.Equal(t, s == tt.sentinel, errors.Is(wrapped, s))
			}
		})
	}
}

func TestErrorKinds_As(t *testing.T) {
	id := uuid.New()
	var err error = &OverdraftError{
		AccountID: id,
		Balance:   decimal.NewFromInt(500),
		Amount:    decimal.NewFromInt(1000),
	}

	var overdraft *OverdraftError
	require.ErrorAs(t, err, &overdraft)
	assert.Equal(t, id, overdraft.AccountID)
	assert.True(t, overdraft.Balance.Equal(decimal.NewFromInt(500)))

	var notFound *AccountNotFoundError
	assert.False(t, errors.As(err, &notFound))
}
