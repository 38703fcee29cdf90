package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"gicbank.com/internal/domain/entity"
	"gicbank.com/internal/domain/port"
)

// DefineInterestRuleUseCase handles interest rule intake.
type DefineInterestRuleUseCase struct {
	repository port.BankRepository
}

// NewDefineInterestRuleUseCase creates a new DefineInterestRuleUseCase.
func NewDefineInterestRuleUseCase(repository port.BankRepository) *DefineInterestRuleUseCase {
	return &DefineInterestRuleUseCase{
		repository: repository,
	}
}

// Execute processes one rule line of the form "<Date> <RuleId> <Rate in %>".
// A rule dated the same as an existing rule replaces it. The full sorted rule
// listing is returned on success.
func (uc *DefineInterestRuleUseCase) Execute(ctx context.Context, line string) (*entity.RuleListing, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected <Date> <RuleId> <Rate in %%>", entity.ErrInvalidFormat)
	}
	dateToken, ruleID, rateToken := parts[0], parts[1], parts[2]

	date, err := entity.ParseDate(dateToken)
	if err != nil {
		return nil, fmt.Errorf("%w: use YYYYMMDD", entity.ErrInvalidDate)
	}

	rate, err := decimal.NewFromString(rateToken)
	if err != nil {
		return nil, fmt.Errorf("%w: must be a number", entity.ErrInvalidRate)
	}
	if !rate.IsPositive() || rate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: must be between 0 and 100", entity.ErrInvalidRate)
	}

	rule := entity.InterestRule{
		EffectiveDate: date,
		RuleID:        ruleID,
		Rate:          rate,
	}
	if err := uc.repository.UpsertRule(ctx, rule); err != nil {
		return nil, err
	}

	return &entity.RuleListing{Rules: uc.repository.Rules(ctx)}, nil
}
