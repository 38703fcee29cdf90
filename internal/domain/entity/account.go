package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountLedger owns the ordered entry list and running balance for one
// account. Insertion order is posting order; the running balance always
// equals deposits + interest - withdrawals over all entries and never goes
// negative.
type AccountLedger struct {
	id      string
	entries []LedgerEntry
	balance decimal.Decimal
}

// NewAccountLedger creates an empty ledger for the given account id.
func NewAccountLedger(id string) *AccountLedger {
	return &AccountLedger{id: id}
}

// ID returns the account id.
func (a *AccountLedger) ID() string {
	return a.id
}

// Balance returns the current running balance.
func (a *AccountLedger) Balance() decimal.Decimal {
	return a.balance
}

// Post appends an entry and updates the running balance. A withdrawal that
// would take the balance negative fails with ErrInsufficientFunds and leaves
// the ledger unchanged.
func (a *AccountLedger) Post(e LedgerEntry) error {
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	switch e.Kind {
	case Withdrawal:
		if a.balance.LessThan(e.Amount) {
			return ErrInsufficientFunds
		}
		a.balance = a.balance.Sub(e.Amount)
	case Deposit, Interest:
		a.balance = a.balance.Add(e.Amount)
	default:
		return ErrInvalidType
	}
	a.entries = append(a.entries, e)
	return nil
}

// Entries returns a copy of all entries in posting order.
func (a *AccountLedger) Entries() []LedgerEntry {
	out := make([]LedgerEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

// BalanceAsOf reconstructs the end-of-day balance for the target date by
// summing every entry dated on or before it. Entries dated later are excluded
// regardless of posting order.
func (a *AccountLedger) BalanceAsOf(target Date) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range a.entries {
		if e.Date.After(target) {
			continue
		}
		if e.Kind == Withdrawal {
			balance = balance.Sub(e.Amount)
		} else {
			balance = balance.Add(e.Amount)
		}
	}
	return balance
}

// BalanceBefore returns the balance carried in from all entries dated
// strictly before the target date.
func (a *AccountLedger) BalanceBefore(target Date) decimal.Decimal {
	return a.BalanceAsOf(target.AddDays(-1))
}

// EntriesInMonth returns the entries dated within the given month, in
// posting order.
func (a *AccountLedger) EntriesInMonth(year int, month time.Month) []LedgerEntry {
	var out []LedgerEntry
	for _, e := range a.entries {
		if e.Date.InMonth(year, month) {
			out = append(out, e)
		}
	}
	return out
}

// Copy returns a deep snapshot that shares no state with the original.
func (a *AccountLedger) Copy() *AccountLedger {
	return &AccountLedger{
		id:      a.id,
		entries: a.Entries(),
		balance: a.balance,
	}
}
