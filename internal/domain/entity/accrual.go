package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	percentBase = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// AccrueMonthlyInterest computes the interest earned by an account over one
// calendar month using simple daily interest: for each day of the month the
// end-of-day balance earns balance * rate / 100 / 365 at the annual rate in
// force that day. The divisor stays 365 in leap years. The accumulated total
// is rounded to 2 decimal places, half away from zero.
//
// Both the balance and the effective rate are resolved per day because either
// can change mid-month; a single end-of-month snapshot would misprice any
// month containing a transaction or a rule change.
func AccrueMonthlyInterest(ledger *AccountLedger, timeline *RuleTimeline, year int, month time.Month) decimal.Decimal {
	first := FirstOfMonth(year, month)
	last := LastOfMonth(year, month)

	total := decimal.Zero
	for d := first; !d.After(last); d = d.AddDays(1) {
		balance := ledger.BalanceAsOf(d)
		if !balance.IsPositive() {
			continue
		}
		rate := timeline.RateEffectiveOn(d)
		if !rate.IsPositive() {
			continue
		}
		total = total.Add(balance.Mul(rate).Div(percentBase).Div(daysPerYear))
	}
	return total.Round(2)
}
