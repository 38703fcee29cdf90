package repository

import (
	"context"
	"fmt"
	"sync"

	"gicbank.com/internal/domain/entity"
	"gicbank.com/internal/domain/port"
	"gicbank.com/internal/infrastructure/logger"
)

// InMemoryBank implements the BankRepository port. All state lives in memory
// for the process lifetime; collections only grow, nothing is deleted.
type InMemoryBank struct {
	mu       sync.RWMutex
	accounts map[string]*entity.AccountLedger
	timeline entity.RuleTimeline
	counters map[string]int
	logger   logger.Logger
}

// NewInMemoryBank creates an empty in-memory bank.
func NewInMemoryBank(logger logger.Logger) port.BankRepository {
	return &InMemoryBank{
		accounts: make(map[string]*entity.AccountLedger),
		counters: make(map[string]int),
		logger:   logger,
	}
}

// AccountExists reports whether an account ledger has been created.
func (b *InMemoryBank) AccountExists(_ context.Context, accountID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.accounts[accountID]
	return ok
}

// CreateAccount creates an empty ledger for the account if absent.
func (b *InMemoryBank) CreateAccount(ctx context.Context, accountID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[accountID]; ok {
		return nil
	}
	b.accounts[accountID] = entity.NewAccountLedger(accountID)

	b.logger.LogInfo(ctx, "Account created", "account", accountID)
	return nil
}

// PostEntry appends an entry to the account's ledger and updates its balance.
func (b *InMemoryBank) PostEntry(ctx context.Context, accountID string, e entity.LedgerEntry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ledger, ok := b.accounts[accountID]
	if !ok {
		return entity.ErrAccountNotFound
	}

	if err := ledger.Post(e); err != nil {
		b.logger.LogWarning(ctx, "Entry rejected",
			"account", accountID,
			"date", e.Date.String(),
			"type", e.Kind.String(),
			"amount", e.Amount.String(),
			"reason", err.Error())
		return err
	}

	b.logger.LogInfo(ctx, "Entry posted",
		"account", accountID,
		"date", e.Date.String(),
		"type", e.Kind.String(),
		"amount", e.Amount.String(),
		"txn_id", e.ID,
		"new_balance", ledger.Balance().String())
	return nil
}

// Snapshot returns a deep copy of the account's ledger.
func (b *InMemoryBank) Snapshot(_ context.Context, accountID string) (*entity.AccountLedger, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ledger, ok := b.accounts[accountID]
	if !ok {
		return nil, entity.ErrAccountNotFound
	}
	return ledger.Copy(), nil
}

// NextTransactionID consumes the next sequence number for the date. The
// counter is shared across all accounts and keyed by date only.
func (b *InMemoryBank) NextTransactionID(_ context.Context, d entity.Date) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := d.String()
	b.counters[key]++
	return fmt.Sprintf("%s-%02d", key, b.counters[key])
}

// UpsertRule inserts an interest rule, replacing any same-dated rule.
func (b *InMemoryBank) UpsertRule(ctx context.Context, r entity.InterestRule) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.timeline.Upsert(r)

	b.logger.LogInfo(ctx, "Interest rule defined",
		"date", r.EffectiveDate.String(),
		"rule_id", r.RuleID,
		"rate", r.Rate.String())
	return nil
}

// Rules returns the rule timeline sorted ascending by effective date.
func (b *InMemoryBank) Rules(_ context.Context) []entity.InterestRule {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.timeline.Rules()
}

// Timeline returns a deep copy of the rule timeline.
func (b *InMemoryBank) Timeline(_ context.Context) *entity.RuleTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.timeline.Copy()
}
