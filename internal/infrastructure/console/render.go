package console

import (
	"fmt"
	"strings"

	"gicbank.com/internal/domain/entity"
)

// Report layouts are a compatibility surface: columns and widths match the
// reference output byte for byte.

// RenderAccountStatement formats the full transaction history of an account,
// without balances.
func RenderAccountStatement(s *entity.AccountStatement) string {
	lines := []string{
		fmt.Sprintf("Account: %s", s.AccountID),
		"| Date     | Txn Id      |Type| Amount  |",
	}
	for _, e := range s.Entries {
		lines = append(lines, fmt.Sprintf("| %s | %-11s | %-2s | %7s |",
			e.Date, e.ID, e.Kind, e.Amount.StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}

// RenderRuleListing formats the interest rule timeline.
func RenderRuleListing(l *entity.RuleListing) string {
	lines := []string{
		"Interest rules:",
		"| Date     | RuleId | Rate (%) |",
	}
	for _, r := range l.Rules {
		lines = append(lines, fmt.Sprintf("| %s | %-6s | %8s |",
			r.EffectiveDate, r.RuleID, r.Rate.StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}

// RenderMonthlyStatement formats a monthly statement with running balances
// and the trailing interest row, when present.
func RenderMonthlyStatement(s *entity.MonthlyStatement) string {
	lines := []string{
		fmt.Sprintf("Account: %s", s.AccountID),
		fmt.Sprintf("| %-8s | %-11s | %-4s | %7s | %8s |", "Date", "Txn Id", "Type", "Amount", "Balance"),
	}
	for _, row := range s.Rows {
		lines = append(lines, fmt.Sprintf("| %s | %-11s | %-4s | %7s | %8s |",
			row.Entry.Date, row.Entry.ID, row.Entry.Kind,
			row.Entry.Amount.StringFixed(2), row.Balance.StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}
