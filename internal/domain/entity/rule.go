package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// InterestRule is a dated annual percentage rate, in force from its effective
// date until superseded by a later rule.
type InterestRule struct {
	EffectiveDate Date
	RuleID        string
	Rate          decimal.Decimal
}

// RuleTimeline holds the interest rules ordered by effective date ascending.
// Effective dates are unique: defining a rule for a covered date replaces the
// existing rule.
type RuleTimeline struct {
	rules []InterestRule
}

// Upsert inserts the rule, replacing any existing rule with the same
// effective date, and keeps the timeline sorted ascending.
func (t *RuleTimeline) Upsert(r InterestRule) {
	kept := t.rules[:0]
	for _, existing := range t.rules {
		if !existing.EffectiveDate.Equal(r.EffectiveDate) {
			kept = append(kept, existing)
		}
	}
	t.rules = append(kept, r)
	sort.Slice(t.rules, func(i, j int) bool {
		return t.rules[i].EffectiveDate.Before(t.rules[j].EffectiveDate)
	})
}

// RateEffectiveOn returns the rate of the latest rule whose effective date is
// on or before the given date, or zero when no rule applies.
func (t *RuleTimeline) RateEffectiveOn(d Date) decimal.Decimal {
	for i := len(t.rules) - 1; i >= 0; i-- {
		if !t.rules[i].EffectiveDate.After(d) {
			return t.rules[i].Rate
		}
	}
	return decimal.Zero
}

// Rules returns a copy of the timeline in ascending effective-date order.
func (t *RuleTimeline) Rules() []InterestRule {
	out := make([]InterestRule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules in the timeline.
func (t *RuleTimeline) Len() int {
	return len(t.rules)
}

// Copy returns an independent snapshot of the timeline.
func (t *RuleTimeline) Copy() *RuleTimeline {
	return &RuleTimeline{rules: t.Rules()}
}
