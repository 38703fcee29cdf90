package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger entry.
type EntryKind string

const (
	Deposit    EntryKind = "D"
	Withdrawal EntryKind = "W"
	Interest   EntryKind = "I"
)

// ParseEntryKind parses a user-supplied type token. Only D and W are valid
// from operators; interest entries are system-generated.
func ParseEntryKind(s string) (EntryKind, error) {
	switch strings.ToUpper(s) {
	case "D":
		return Deposit, nil
	case "W":
		return Withdrawal, nil
	default:
		return "", ErrInvalidType
	}
}

func (k EntryKind) String() string {
	return string(k)
}

// LedgerEntry is one posted ledger line: a deposit, a withdrawal, or a
// system-generated interest credit. Entries are immutable once posted.
// Interest entries carry a blank ID.
type LedgerEntry struct {
	Date      Date
	AccountID string
	Kind      EntryKind
	Amount    decimal.Decimal
	ID        string
}
