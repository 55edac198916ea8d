package operation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOperation_Equal(t *testing.T) {
	accountID := uuid.New()
	ts := time.Date(2022, 11, 21, 15, 22, 48, 123456789, time.UTC)
	base := New(accountID, TypeDeposit, "gift", ts,
		decimal.NewFromInt(20), decimal.NewFromInt(50))

	tests := []struct {
		name  string
		other Operation
		want  bool
	}{
		{
			"identical",
			New(accountID, TypeDeposit, "gift", ts,
				decimal.NewFromInt(20), decimal.NewFromInt(50)),
			true,
		},
		{
			"same decimals with another scale",
			New(accountID, TypeDeposit, "gift", ts,
				decimal.RequireFromString("20.00"), decimal.RequireFromString("50.0")),
			true,
		},
		{
			"same instant in another location",
			New(accountID, TypeDeposit, "gift", ts.In(time.FixedZone("UTC+1", 3600)),
				decimal.NewFromInt(20), decimal.NewFromInt(50)),
			true,
		},
		{
			"other account",
			New(uuid.New(), TypeDeposit, "gift", ts,
				decimal.NewFromInt(20), decimal.NewFromInt(50)),
			false,
		},
		{
			"other type",
			New(accountID, TypeWithdrawal, "gift", ts,
				decimal.NewFromInt(20), decimal.NewFromInt(50)),
			false,
		},
		{
			"other label",
			New(accountID, TypeDeposit, "groceries", ts,
				decimal.NewFromInt(20), decimal.NewFromInt(50)),
			false,
		},
		{
			"other timestamp",
			New(accountID, TypeDeposit, "gift", ts.Add(time.Nanosecond),
				decimal.NewFromInt(20), decimal.NewFromInt(50)),
			false,
		},
		{
			"other amount",
			New(accountID, TypeDeposit, "gift", ts,
				decimal.NewFromInt(21), decimal.NewFromInt(50)),
			false,
		},
		{
			"other balance",
			New(accountID, TypeDeposit, "gift", ts,
				decimal.NewFromInt(20), decimal.NewFromInt(51)),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
			assert.Equal(t, tt.want, tt.other.Equal(base))
		})
	}
}
