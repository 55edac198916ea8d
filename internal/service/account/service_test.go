package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/angeliquesouvant/bank-account/internal/model/operation"
	"github.com/angeliquesouvant/bank-account/internal/service/account/mocks"
	"github.com/angeliquesouvant/bank-account/internal/serviceerrs"
	"github.com/angeliquesouvant/bank-account/internal/utils/clock"
)

var testNow = time.Date(2022, 11, 21, 15, 22, 48, 123456789, time.Local)

type fixture struct {
	accounts   *mocks.MockAccountRepository
	operations *mocks.MockOperationRepository
	formatter  *mocks.MockOperationsFormatter
	printer    *mocks.MockStatementPrinter
	service    *Service
	calls      []string
}

// newFixture builds the service on strict mocks: any call without an
// expectation fails the test.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		accounts:   mocks.NewMockAccountRepository(t),
		operations: mocks.NewMockOperationRepository(t),
		formatter:  mocks.NewMockOperationsFormatter(t),
		printer:    mocks.NewMockStatementPrinter(t),
	}
	f.service = New(f.accounts, f.operations, f.formatter, f.printer,
		clock.NewFixed(testNow),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func (f *fixture) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fixture) expectExists(id uuid.UUID, exists bool, err error) {
	f.accounts.EXPECT().
		ExistsByID(mock.Anything, id).
		Run(func(context.Context, uuid.UUID) { f.record("ExistsByID") }).
		Return(exists, err).
		Once()
}

func (f *fixture) expectBalance(id uuid.UUID, balance decimal.Decimal, err error) {
	f.accounts.EXPECT().
		GetBalance(mock.Anything, id).
		Run(func(context.Context, uuid.UUID) { f.record("GetBalance") }).
		Return(balance, err).
		Once()
}

func (f *fixture) expectCreate(want operation.Operation, err error) {
	f.operations.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(op operation.Operation) bool {
			return op.Equal(want)
		})).
		Run(func(context.Context, operation.Operation) { f.record("Create") }).
		Return(err).
		Once()
}

func (f *fixture) expectUpdate(id uuid.UUID, balance decimal.Decimal, err error) {
	f.accounts.EXPECT().
		UpdateBalance(mock.Anything, id, decimalEq(balance)).
		Run(func(context.Context, uuid.UUID, decimal.Decimal) { f.record("UpdateBalance") }).
		Return(err).
		Once()
}

func decimalEq(want decimal.Decimal) any {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Deposit(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		amount      string
		label       string
		wantBalance string
	}{
		{"gift on a funded account", "30", "20", "gift", "50"},
		{"first deposit", "0", "100", "salary", "100"},
		{"fractional amounts stay exact", "0.1", "0.2", "change", "0.3"},
		{"cents", "40.10", "0.20", "refund", "40.30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.New()

			f.expectExists(id, true, nil)
			f.expectBalance(id, dec(tt.balance), nil)
			f.expectCreate(operation.New(id, operation.TypeDeposit, tt.label, testNow,
				dec(tt.amount), dec(tt.wantBalance)), nil)
			f.expectUpdate(id, dec(tt.wantBalance), nil)

			err := f.service.Deposit(context.Background(), id, dec(tt.amount), tt.label)
			require.NoError(t, err)
			assert.Equal(t,
				[]string{"ExistsByID", "GetBalance", "Create", "UpdateBalance"},
				f.calls)
		})
	}
}

func TestService_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		amount      string
		label       string
		wantBalance string
	}{
		{"groceries", "1000", "30", "groceries", "970"},
		{"whole balance", "500", "500", "rent", "0"},
		{"cents", "40.30", "0.30", "coffee", "40"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.New()

			f.expectExists(id, true, nil)
			f.expectBalance(id, dec(tt.balance), nil)
			f.expectCreate(operation.New(id, operation.TypeWithdrawal, tt.label, testNow,
				dec(tt.amount), dec(tt.wantBalance)), nil)
			f.expectUpdate(id, dec(tt.wantBalance), nil)

			err := f.service.Withdraw(context.Background(), id, dec(tt.amount), tt.label)
			require.NoError(t, err)
			assert.Equal(t,
				[]string{"ExistsByID", "GetBalance", "Create", "UpdateBalance"},
				f.calls)
		})
	}
}

func TestService_nonPositiveAmount(t *testing.T) {
	amounts := []string{"-1000.5", "-0.01", "0", "0.00"}

	for _, amount := range amounts {
		t.Run("deposit "+amount, func(t *testing.T) {
			f := newFixture(t)

			err := f.service.Deposit(context.Background(), uuid.New(), dec(amount), "test")

			var negErr *serviceerrs.NegativeAmountError
			require.ErrorAs(t, err, &negErr)
			assert.True(t, negErr.Amount.Equal(dec(amount)))
			assert.Empty(t, f.calls)
		})

		t.Run("withdraw "+amount, func(t *testing.T) {
			f := newFixture(t)

			err := f.service.Withdraw(context.Background(), uuid.New(), dec(amount), "test")

			assert.ErrorIs(t, err, serviceerrs.ErrNegativeAmount)
			assert.Empty(t, f.calls)
		})
	}
}

func TestService_unknownAccount(t *testing.T) {
	ops := map[string]func(s *Service, id uuid.UUID) error{
		"deposit": func(s *Service, id uuid.UUID) error {
			return s.Deposit(context.Background(), id, dec("1000"), "test")
		},
		"withdraw": func(s *Service, id uuid.UUID) error {
			return s.Withdraw(context.Background(), id, dec("1000"), "test")
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.New()
			f.expectExists(id, false, nil)

			err := op(f.service, id)

			var notFound *serviceerrs.AccountNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, id, notFound.AccountID)
			assert.Equal(t, []string{"ExistsByID"}, f.calls)
		})
	}
}

func TestService_Withdraw_overdraft(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.expectExists(id, true, nil)
	f.expectBalance(id, dec("500"), nil)

	err := f.service.Withdraw(context.Background(), id, dec("1000"), "test")

	var overdraft *serviceerrs.OverdraftError
	require.ErrorAs(t, err, &overdraft)
	assert.Equal(t, id, overdraft.AccountID)
	assert.True(t, overdraft.Balance.Equal(dec("500")))
	assert.True(t, overdraft.Amount.Equal(dec("1000")))
	assert.Equal(t, []string{"ExistsByID", "GetBalance"}, f.calls)
}

func TestService_repositoryErrors(t *testing.T) {
	errDB := errors.New("connection refused")

	tests := []struct {
		name      string
		setup     func(f *fixture, id uuid.UUID)
		wantCalls []string
	}{
		{
			"exists check fails",
			func(f *fixture, id uuid.UUID) {
				f.expectExists(id, false, errDB)
			},
			[]string{"ExistsByID"},
		},
		{
			"balance read fails",
			func(f *fixture, id uuid.UUID) {
				f.expectExists(id, true, nil)
				f.expectBalance(id, decimal.Decimal{}, errDB)
			},
			[]string{"ExistsByID", "GetBalance"},
		},
		{
			"operation create fails, balance untouched",
			func(f *fixture, id uuid.UUID) {
				f.expectExists(id, true, nil)
				f.expectBalance(id, dec("30"), nil)
				f.expectCreate(operation.New(id, operation.TypeDeposit, "gift", testNow,
					dec("20"), dec("50")), errDB)
			},
			[]string{"ExistsByID", "GetBalance", "Create"},
		},
		{
			"balance update fails",
			func(f *fixture, id uuid.UUID) {
				f.expectExists(id, true, nil)
				f.expectBalance(id, dec("30"), nil)
				f.expectCreate(operation.New(id, operation.TypeDeposit, "gift", testNow,
					dec("20"), dec("50")), nil)
				f.expectUpdate(id, dec("50"), errDB)
			},
			[]string{"ExistsByID", "GetBalance", "Create", "UpdateBalance"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.New()
			tt.setup(f, id)

			err := f.service.Deposit(context.Background(), id, dec("20"), "gift")

			assert.Equal(t, errDB, err)
			assert.Equal(t, tt.wantCalls, f.calls)
		})
	}
}

func TestService_PrintAccountOperations(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	ops := []operation.Operation{
		operation.New(id, operation.TypeWithdrawal, "Retrait", testNow, dec("10"), dec("10")),
		operation.New(id, operation.TypeDeposit, "Dépot", testNow, dec("20"), dec("30")),
		operation.New(id, operation.TypeWithdrawal, "Retrait", testNow, dec("40"), dec("300")),
	}
	lines := []string{"line 1", "line 2", "line 3"}

	f.operations.EXPECT().
		FindAllByAccountIDOrderByDateDesc(mock.Anything, id).
		Run(func(context.Context, uuid.UUID) { f.record("Find") }).
		Return(ops, nil).
		Once()
	f.formatter.EXPECT().
		Format(ops).
		Run(func([]operation.Operation) { f.record("Format") }).
		Return(lines).
		Once()
	f.printer.EXPECT().
		Print(lines).
		Run(func([]string) { f.record("Print") }).
		Return(nil).
		Once()

	require.NoError(t, f.service.PrintAccountOperations(context.Background(), id))
	assert.Equal(t, []string{"Find", "Format", "Print"}, f.calls)
}

func TestService_PrintAccountOperations_empty(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.operations.EXPECT().
		FindAllByAccountIDOrderByDateDesc(mock.Anything, id).
		Return([]operation.Operation{}, nil).
		Once()
	f.formatter.EXPECT().
		Format([]operation.Operation{}).
		Return([]string{}).
		Once()
	f.printer.EXPECT().
		Print([]string{}).
		Return(nil).
		Once()

	require.NoError(t, f.service.PrintAccountOperations(context.Background(), id))
}

func TestService_PrintAccountOperations_errors(t *testing.T) {
	t.Run("repository error skips formatting", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		errDB := errors.New("connection refused")

		f.operations.EXPECT().
			FindAllByAccountIDOrderByDateDesc(mock.Anything, id).
			Return(nil, errDB).
			Once()

		err := f.service.PrintAccountOperations(context.Background(), id)
		assert.Equal(t, errDB, err)
	})

	t.Run("printer error is returned", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		errClosed := errors.New("write on closed pipe")

		f.operations.EXPECT().
			FindAllByAccountIDOrderByDateDesc(mock.Anything, id).
			Return([]operation.Operation{}, nil).
			Once()
		f.formatter.EXPECT().
			Format([]operation.Operation{}).
			Return([]string{}).
			Once()
		f.printer.EXPECT().
			Print([]string{}).
			Return(errClosed).
			Once()

		err := f.service.PrintAccountOperations(context.Background(), id)
		assert.Equal(t, errClosed, err)
	})
}
