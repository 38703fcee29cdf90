package entity

import "github.com/shopspring/decimal"

// AccountStatement lists every entry of an account, without balances. It is
// the response to a successful transaction.
type AccountStatement struct {
	AccountID string
	Entries   []LedgerEntry
}

// StatementRow pairs an entry with the running balance after applying it.
type StatementRow struct {
	Entry   LedgerEntry
	Balance decimal.Decimal
}

// MonthlyStatement is the point-in-time statement for one account and month:
// the month's entries with running balances, plus a trailing interest row
// when the month accrued a nonzero credit.
type MonthlyStatement struct {
	AccountID string
	Rows      []StatementRow
}

// RuleListing is the full rule timeline in ascending effective-date order.
type RuleListing struct {
	Rules []InterestRule
}
