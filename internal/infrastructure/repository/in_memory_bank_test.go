package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"gicbank.com/internal/domain/entity"
	"gicbank.com/internal/infrastructure/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInMemoryBank_Accounts(t *testing.T) {
	bank := NewInMemoryBank(logger.NewLogger()).(*InMemoryBank)
	ctx := context.Background()

	if bank.AccountExists(ctx, "AC001") {
		t.Error("AccountExists() = true on empty bank")
	}

	if err := bank.CreateAccount(ctx, "AC001"); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if !bank.AccountExists(ctx, "AC001") {
		t.Error("AccountExists() = false after CreateAccount")
	}

	// Creating again is a no-op, not an error.
	if err := bank.CreateAccount(ctx, "AC001"); err != nil {
		t.Errorf("CreateAccount() second call error = %v", err)
	}
}

func TestInMemoryBank_PostEntry(t *testing.T) {
	bank := NewInMemoryBank(logger.NewLogger()).(*InMemoryBank)
	ctx := context.Background()

	deposit := entity.LedgerEntry{
		Date:      entity.MustParseDate("20230601"),
		AccountID: "AC001",
		Kind:      entity.Deposit,
		Amount:    dec("100.00"),
		ID:        "20230601-01",
	}

	if err := bank.PostEntry(ctx, "AC001", deposit); !errors.Is(err, entity.ErrAccountNotFound) {
		t.Errorf("PostEntry() to unknown account error = %v, want ErrAccountNotFound", err)
	}

	if err := bank.CreateAccount(ctx, "AC001"); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if err := bank.PostEntry(ctx, "AC001", deposit); err != nil {
		t.Fatalf("PostEntry() error = %v", err)
	}

	overdraw := entity.LedgerEntry{
		Date:      entity.MustParseDate("20230602"),
		AccountID: "AC001",
		Kind:      entity.Withdrawal,
		Amount:    dec("200.00"),
	}
	if err := bank.PostEntry(ctx, "AC001", overdraw); !errors.Is(err, entity.ErrInsufficientFunds) {
		t.Errorf("PostEntry() overdraw error = %v, want ErrInsufficientFunds", err)
	}

	ledger, err := bank.Snapshot(ctx, "AC001")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if got := len(ledger.Entries()); got != 1 {
		t.Errorf("entries after rejected overdraw = %d, want 1", got)
	}
	if !ledger.Balance().Equal(dec("100")) {
		t.Errorf("balance = %s, want 100", ledger.Balance())
	}
}

func TestInMemoryBank_SnapshotIsDetached(t *testing.T) {
	bank := NewInMemoryBank(logger.NewLogger()).(*InMemoryBank)
	ctx := context.Background()

	if _, err := bank.Snapshot(ctx, "AC404"); !errors.Is(err, entity.ErrAccountNotFound) {
		t.Errorf("Snapshot() unknown account error = %v, want ErrAccountNotFound", err)
	}

	if err := bank.CreateAccount(ctx, "AC001"); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	snapshot, err := bank.Snapshot(ctx, "AC001")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	// Posting after the snapshot must not show up in it.
	err = bank.PostEntry(ctx, "AC001", entity.LedgerEntry{
		Date:   entity.MustParseDate("20230601"),
		Kind:   entity.Deposit,
		Amount: dec("50.00"),
	})
	if err != nil {
		t.Fatalf("PostEntry() error = %v", err)
	}
	if got := len(snapshot.Entries()); got != 0 {
		t.Errorf("snapshot entries = %d, want 0", got)
	}
}

func TestInMemoryBank_NextTransactionID(t *testing.T) {
	bank := NewInMemoryBank(logger.NewLogger()).(*InMemoryBank)
	ctx := context.Background()

	june26 := entity.MustParseDate("20230626")
	june27 := entity.MustParseDate("20230627")

	tests := []struct {
		date entity.Date
		want string
	}{
		{june26, "20230626-01"},
		{june26, "20230626-02"},
		{june27, "20230627-01"},
		{june26, "20230626-03"},
	}

	for _, tt := range tests {
		if got := bank.NextTransactionID(ctx, tt.date); got != tt.want {
			t.Errorf("NextTransactionID(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestInMemoryBank_Rules(t *testing.T) {
	bank := NewInMemoryBank(logger.NewLogger()).(*InMemoryBank)
	ctx := context.Background()

	if err := bank.UpsertRule(ctx, entity.InterestRule{
		EffectiveDate: entity.MustParseDate("20230615"),
		RuleID:        "RULE03",
		Rate:          dec("2.20"),
	}); err != nil {
		t.Fatalf("UpsertRule() error = %v", err)
	}
	if err := bank.UpsertRule(ctx, entity.InterestRule{
		EffectiveDate: entity.MustParseDate("20230520"),
		RuleID:        "RULE02",
		Rate:          dec("1.90"),
	}); err != nil {
		t.Fatalf("UpsertRule() error = %v", err)
	}

	rules := bank.Rules(ctx)
	if len(rules) != 2 {
		t.Fatalf("len(Rules()) = %d, want 2", len(rules))
	}
	if rules[0].RuleID != "RULE02" || rules[1].RuleID != "RULE03" {
		t.Errorf("Rules() order = %s, %s; want RULE02, RULE03", rules[0].RuleID, rules[1].RuleID)
	}

	// Timeline copies are detached from later upserts.
	timeline := bank.Timeline(ctx)
	if err := bank.UpsertRule(ctx, entity.InterestRule{
		EffectiveDate: entity.MustParseDate("20230701"),
		RuleID:        "RULE04",
		Rate:          dec("3.00"),
	}); err != nil {
		t.Fatalf("UpsertRule() error = %v", err)
	}
	if timeline.Len() != 2 {
		t.Errorf("timeline copy Len() = %d, want 2", timeline.Len())
	}

	if got := bank.Timeline(ctx).RateEffectiveOn(entity.MustParseDate("20230616")); !got.Equal(dec("2.20")) {
		t.Errorf("RateEffectiveOn(20230616) = %s, want 2.20", got)
	}
}
