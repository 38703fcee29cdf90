package port

import (
	"context"

	"gicbank.com/internal/domain/entity"
)

// BankRepository is the port for the bank's in-memory state: the account
// ledgers, the interest rule timeline, and the per-date transaction id
// counters.
type BankRepository interface {
	// AccountExists reports whether an account ledger has been created.
	AccountExists(ctx context.Context, accountID string) bool

	// CreateAccount creates an empty ledger for the account if absent.
	CreateAccount(ctx context.Context, accountID string) error

	// PostEntry appends an entry to the account's ledger. It fails with
	// entity.ErrAccountNotFound for unknown accounts and with
	// entity.ErrInsufficientFunds for withdrawals exceeding the balance;
	// on failure the ledger is unchanged.
	PostEntry(ctx context.Context, accountID string, e entity.LedgerEntry) error

	// Snapshot returns a deep copy of the account's ledger, or
	// entity.ErrAccountNotFound.
	Snapshot(ctx context.Context, accountID string) (*entity.AccountLedger, error)

	// NextTransactionID consumes the next sequence number for the date and
	// formats it as <YYYYMMDD>-<NN>. The counter is global per date across
	// all accounts.
	NextTransactionID(ctx context.Context, d entity.Date) string

	// UpsertRule inserts an interest rule, replacing any rule with the same
	// effective date.
	UpsertRule(ctx context.Context, r entity.InterestRule) error

	// Rules returns the rule timeline sorted ascending by effective date.
	Rules(ctx context.Context) []entity.InterestRule

	// Timeline returns a deep copy of the rule timeline.
	Timeline(ctx context.Context) *entity.RuleTimeline
}
