package operation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
)

// Operation is one committed deposit or withdrawal. Amount is always the
// absolute value moved, BalanceAfter the account balance right after it.
type Operation struct {
	Timestamp    time.Time       `json:"timestamp"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Label        string          `json:"label"`
	Type         Type            `json:"type"`
	AccountID    uuid.UUID       `json:"account_id"`
}

func New(accountID uuid.UUID, tp Type, label string,
	timestamp time.Time, amount, balanceAfter decimal.Decimal,
) Operation {
	return Operation{
		AccountID:    accountID,
		Type:         tp,
		Label:        label,
		Timestamp:    timestamp,
		Amount:       amount,
		BalanceAfter: balanceAfter,
	}
}

// Equal compares every field; decimals by value and timestamps by instant.
func (o Operation) Equal(other Operation) bool {
	return o.AccountID == other.AccountID &&
		o.Type == other.Type &&
		o.Label == other.Label &&
		o.Timestamp.Equal(other.Timestamp) &&
		o.Amount.Equal(other.Amount) &&
		o.BalanceAfter.Equal(other.BalanceAfter)
}
