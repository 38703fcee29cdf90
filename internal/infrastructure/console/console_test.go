package console

import (
	"context"
	"strings"
	"testing"

	"gicbank.com/internal/application/usecase"
	"gicbank.com/internal/infrastructure/logger"
	"gicbank.com/internal/infrastructure/repository"
)

func newTestConsole(input string, out *strings.Builder) *Console {
	appLogger := logger.NewLogger()
	bank := repository.NewInMemoryBank(appLogger)
	return New(
		usecase.NewRecordTransactionUseCase(bank),
		usecase.NewDefineInterestRuleUseCase(bank),
		usecase.NewPrintStatementUseCase(bank),
		appLogger,
		strings.NewReader(input),
		out,
		"AwesomeGIC Bank",
		"> ",
	)
}

func TestConsole_QuitImmediately(t *testing.T) {
	var out strings.Builder
	c := newTestConsole("Q\n", &out)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Welcome to AwesomeGIC Bank!") {
		t.Errorf("output missing welcome banner:\n%s", got)
	}
	if !strings.Contains(got, "Thank you for banking with AwesomeGIC Bank.") {
		t.Errorf("output missing farewell:\n%s", got)
	}
}

func TestConsole_EndOfInputStopsLoop(t *testing.T) {
	var out strings.Builder
	c := newTestConsole("", &out)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() on EOF error = %v", err)
	}
}

func TestConsole_TransactionSession(t *testing.T) {
	input := strings.Join([]string{
		"T",
		"20230626 AC001 D 150.00",
		"",
		"Q",
	}, "\n") + "\n"

	var out strings.Builder
	c := newTestConsole(input, &out)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Account: AC001") {
		t.Errorf("output missing account statement:\n%s", got)
	}
	if !strings.Contains(got, "| 20230626 | 20230626-01 | D  |  150.00 |") {
		t.Errorf("output missing transaction row:\n%s", got)
	}
}

func TestConsole_InvalidInputStaysInSubPrompt(t *testing.T) {
	input := strings.Join([]string{
		"T",
		"20230626 AC001 X 150.00",
		"20230626 AC001 D 150.00",
		"",
		"Q",
	}, "\n") + "\n"

	var out strings.Builder
	c := newTestConsole(input, &out)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Invalid transaction type") {
		t.Errorf("output missing rejection message:\n%s", got)
	}
	// The valid retry on the same sub-prompt still went through.
	if !strings.Contains(got, "| 20230626 | 20230626-01 | D  |  150.00 |") {
		t.Errorf("output missing accepted transaction after rejection:\n%s", got)
	}
}

func TestConsole_FullSession(t *testing.T) {
	input := strings.Join([]string{
		"T",
		"20230601 AC001 D 150.00",
		"20230626 AC001 W 20.00",
		"20230626 AC001 W 100.00",
		"",
		"I",
		"20230520 RULE02 1.90",
		"20230615 RULE03 2.20",
		"",
		"P",
		"AC001 202306",
		"",
		"Q",
	}, "\n") + "\n"

	var out strings.Builder
	c := newTestConsole(input, &out)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Interest rules:") {
		t.Errorf("output missing rule listing:\n%s", got)
	}
	if !strings.Contains(got, "| 20230615 | RULE03 |     2.20 |") {
		t.Errorf("output missing rule row:\n%s", got)
	}
	// The reference June scenario accrues 0.22 and closes at 30.22.
	if !strings.Contains(got, "| 20230630 |             | I    |    0.22 |    30.22 |") {
		t.Errorf("output missing interest row:\n%s", got)
	}
}

func TestConsole_UnknownMenuOption(t *testing.T) {
	var out strings.Builder
	c := newTestConsole("Z\nQ\n", &out)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Invalid option") {
		t.Errorf("output missing invalid option message:\n%s", out.String())
	}
}
