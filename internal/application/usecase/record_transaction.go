package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"gicbank.com/internal/domain/entity"
	"gicbank.com/internal/domain/port"
)

// RecordTransactionUseCase handles deposit and withdrawal intake.
type RecordTransactionUseCase struct {
	repository port.BankRepository
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase.
func NewRecordTransactionUseCase(repository port.BankRepository) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		repository: repository,
	}
}

// Execute processes one transaction line of the form
// "<Date> <Account> <Type> <Amount>". Validation short-circuits on the first
// failure; on success the entry is posted under a freshly generated
// transaction id and the account's full statement is returned.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, line string) (*entity.AccountStatement, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected <Date> <Account> <Type> <Amount>", entity.ErrInvalidFormat)
	}
	dateToken, accountID, typeToken, amountToken := parts[0], parts[1], parts[2], parts[3]

	date, err := entity.ParseDate(dateToken)
	if err != nil {
		return nil, fmt.Errorf("%w: use YYYYMMDD", entity.ErrInvalidDate)
	}

	kind, err := entity.ParseEntryKind(typeToken)
	if err != nil {
		return nil, fmt.Errorf("%w: use D for deposit or W for withdrawal", entity.ErrInvalidType)
	}

	amount, err := parseAmount(amountToken)
	if err != nil {
		return nil, err
	}

	if !uc.repository.AccountExists(ctx, accountID) {
		if kind == entity.Withdrawal {
			return nil, fmt.Errorf("%w with zero balance", entity.ErrWithdrawFromNewAccount)
		}
		if err := uc.repository.CreateAccount(ctx, accountID); err != nil {
			return nil, err
		}
	}

	if kind == entity.Withdrawal {
		ledger, err := uc.repository.Snapshot(ctx, accountID)
		if err != nil {
			return nil, err
		}
		// Checked before generating an id so a rejected withdrawal does not
		// consume a sequence number.
		if ledger.Balance().LessThan(amount) {
			return nil, fmt.Errorf("%w for withdrawal", entity.ErrInsufficientFunds)
		}
	}

	entry := entity.LedgerEntry{
		Date:      date,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		ID:        uc.repository.NextTransactionID(ctx, date),
	}
	if err := uc.repository.PostEntry(ctx, accountID, entry); err != nil {
		return nil, err
	}

	ledger, err := uc.repository.Snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &entity.AccountStatement{
		AccountID: accountID,
		Entries:   ledger.Entries(),
	}, nil
}

// parseAmount validates a monetary token: a positive decimal with at most
// 2 fractional digits.
func parseAmount(token string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: must be a positive number with max 2 decimal places", entity.ErrInvalidAmount)
	}
	if !amount.IsPositive() || amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("%w: must be a positive number with max 2 decimal places", entity.ErrInvalidAmount)
	}
	return amount, nil
}
