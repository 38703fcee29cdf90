package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gicbank.com/internal/domain/entity"
	"gicbank.com/internal/domain/port"
)

// PrintStatementUseCase produces monthly statements with interest accrual.
type PrintStatementUseCase struct {
	repository port.BankRepository
}

// NewPrintStatementUseCase creates a new PrintStatementUseCase.
func NewPrintStatementUseCase(repository port.BankRepository) *PrintStatementUseCase {
	return &PrintStatementUseCase{
		repository: repository,
	}
}

// Execute processes one statement line of the form "<Account> <Year><Month>".
// It walks the month's entries over the carried-in balance, runs the accrual
// engine, and, when the month earned a nonzero credit, posts the interest
// entry to the account before returning. The posting is deliberately not
// guarded against repeat invocation: printing the same month twice posts
// interest twice, matching the reference behavior.
func (uc *PrintStatementUseCase) Execute(ctx context.Context, line string) (*entity.MonthlyStatement, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected <Account> <Year><Month>", entity.ErrInvalidFormat)
	}
	accountID, yearMonth := parts[0], parts[1]

	year, month, err := parseYearMonth(yearMonth)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.repository.Snapshot(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrAccountNotFound, accountID)
	}

	statement := &entity.MonthlyStatement{AccountID: accountID}

	balance := ledger.BalanceBefore(entity.FirstOfMonth(year, month))
	for _, e := range ledger.EntriesInMonth(year, month) {
		if e.Kind == entity.Withdrawal {
			balance = balance.Sub(e.Amount)
		} else {
			balance = balance.Add(e.Amount)
		}
		statement.Rows = append(statement.Rows, entity.StatementRow{Entry: e, Balance: balance})
	}

	interest := entity.AccrueMonthlyInterest(ledger, uc.repository.Timeline(ctx), year, month)
	if interest.IsPositive() {
		entry := entity.LedgerEntry{
			Date:      entity.LastOfMonth(year, month),
			AccountID: accountID,
			Kind:      entity.Interest,
			Amount:    interest,
		}
		balance = balance.Add(interest)
		statement.Rows = append(statement.Rows, entity.StatementRow{Entry: entry, Balance: balance})

		if err := uc.repository.PostEntry(ctx, accountID, entry); err != nil {
			return nil, err
		}
	}

	return statement, nil
}

// parseYearMonth validates a YYYYMM token.
func parseYearMonth(token string) (int, time.Month, error) {
	if len(token) != 6 {
		return 0, 0, fmt.Errorf("%w: use YYYYMM", entity.ErrInvalidYearMonth)
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return 0, 0, fmt.Errorf("%w: use YYYYMM", entity.ErrInvalidYearMonth)
		}
	}
	year, _ := strconv.Atoi(token[:4])
	month, _ := strconv.Atoi(token[4:])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: must be 01-12", entity.ErrInvalidMonth)
	}
	return year, time.Month(month), nil
}
