package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angeliquesouvant/bank-account/internal/model/operation"
	"github.com/angeliquesouvant/bank-account/internal/serviceerrs"
	"github.com/angeliquesouvant/bank-account/internal/utils/clock"
)

// AccountRepository owns account balances. GetBalance is only called for
// accounts that ExistsByID reported.
type AccountRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	GetBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}

// OperationRepository is an append-only ledger. Listing an unknown account
// yields an empty slice, not an error.
type OperationRepository interface {
	Create(ctx context.Context, op operation.Operation) error
	FindAllByAccountIDOrderByDateDesc(ctx context.Context, id uuid.UUID) ([]operation.Operation, error)
}

type OperationsFormatter interface {
	Format(ops []operation.Operation) []string
}

type StatementPrinter interface {
	Print(lines []string) error
}

type AccountService interface {
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, label string) error
	Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, label string) error
	PrintAccountOperations(ctx context.Context, accountID uuid.UUID) error
}

var _ AccountService = (*Service)(nil)

type Service struct {
	accounts   AccountRepository
	operations OperationRepository
	formatter  OperationsFormatter
	printer    StatementPrinter
	clock      clock.Clock
	log        *slog.Logger
}

func New(
	accounts AccountRepository,
	operations OperationRepository,
	formatter OperationsFormatter,
	printer StatementPrinter,
	clk clock.Clock,
	log *slog.Logger,
) *Service {
	return &Service{
		accounts:   accounts,
		operations: operations,
		formatter:  formatter,
		printer:    printer,
		clock:      clk,
		log:        log,
	}
}

func (s *Service) Deposit(ctx context.Context,
	accountID uuid.UUID, amount decimal.Decimal, label string,
) error {
	balance, err := s.currentBalance(ctx, accountID, amount)
	if err != nil {
		return err
	}

	return s.commit(ctx, accountID, operation.TypeDeposit, label, amount, balance.Add(amount))
}

func (s *Service) Withdraw(ctx context.Context,
	accountID uuid.UUID, amount decimal.Decimal, label string,
) error {
	balance, err := s.currentBalance(ctx, accountID, amount)
	if err != nil {
		return err
	}

	newBalance := balance.Sub(amount)
	if newBalance.IsNegative() {
		s.log.LogAttrs(ctx,
			slog.LevelDebug,
			"withdrawal rejected: overdraft",
			slog.String("account", accountID.String()),
			slog.String("balance", balance.String()),
			slog.String("amount", amount.String()),
		)
		return &serviceerrs.OverdraftError{
			AccountID: accountID,
			Balance:   balance,
			Amount:    amount,
		}
	}

	return s.commit(ctx, accountID, operation.TypeWithdrawal, label, amount, newBalance)
}

// PrintAccountOperations hands the repository's newest-first listing to the
// formatter and the printer as is.
func (s *Service) PrintAccountOperations(ctx context.Context, accountID uuid.UUID) error {
	ops, err := s.operations.FindAllByAccountIDOrderByDateDesc(ctx, accountID)
	if err != nil {
		return err //nolint: wrapcheck // repository errors reach the caller unchanged
	}

	lines := s.formatter.Format(ops)
	return s.printer.Print(lines) //nolint: wrapcheck // printer errors reach the caller unchanged
}

// currentBalance validates the amount and the account, then reads the balance.
func (s *Service) currentBalance(ctx context.Context,
	accountID uuid.UUID, amount decimal.Decimal,
) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		s.log.LogAttrs(ctx,
			slog.LevelDebug,
			"operation rejected: non-positive amount",
			slog.String("account", accountID.String()),
			slog.String("amount", amount.String()),
		)
		return decimal.Decimal{}, &serviceerrs.NegativeAmountError{Amount: amount}
	}

	exists, err := s.accounts.ExistsByID(ctx, accountID)
	if err != nil {
		return decimal.Decimal{}, err //nolint: wrapcheck // repository errors reach the caller unchanged
	}
	if !exists {
		s.log.LogAttrs(ctx,
			slog.LevelDebug,
			"operation rejected: unknown account",
			slog.String("account", accountID.String()),
		)
		return decimal.Decimal{}, &serviceerrs.AccountNotFoundError{AccountID: accountID}
	}

	return s.accounts.GetBalance(ctx, accountID) //nolint: wrapcheck // repository errors reach the caller unchanged
}

// commit records the operation first and updates the balance last.
func (s *Service) commit(ctx context.Context,
	accountID uuid.UUID, tp operation.Type, label string,
	amount, newBalance decimal.Decimal,
) error {
	op := operation.New(accountID, tp, label, s.clock.Now(), amount, newBalance)
	if err := s.operations.Create(ctx, op); err != nil {
		return err //nolint: wrapcheck // repository errors reach the caller unchanged
	}
	if err := s.accounts.UpdateBalance(ctx, accountID, newBalance); err != nil {
		return err //nolint: wrapcheck // repository errors reach the caller unchanged
	}

	s.log.LogAttrs(ctx,
		slog.LevelInfo,
		"operation committed",
		slog.String("account", accountID.String()),
		slog.String("type", string(tp)),
		slog.String("amount", amount.String()),
		slog.String("balance", newBalance.String()),
	)
	return nil
}
