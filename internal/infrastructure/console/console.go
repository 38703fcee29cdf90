package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"gicbank.com/internal/application/usecase"
	"gicbank.com/internal/infrastructure/logger"
)

// Console is the interactive menu loop. It reads line-based commands,
// dispatches them to the use cases, and renders the results. All ledger
// semantics live behind the use cases; the console only prompts, tokenizes
// nothing, and prints.
type Console struct {
	recordTransaction *usecase.RecordTransactionUseCase
	defineRule        *usecase.DefineInterestRuleUseCase
	printStatement    *usecase.PrintStatementUseCase
	logger            logger.Logger
	scanner           *bufio.Scanner
	out               io.Writer
	bankName          string
	prompt            string
}

// New creates a console bound to the given streams.
func New(
	recordTransaction *usecase.RecordTransactionUseCase,
	defineRule *usecase.DefineInterestRuleUseCase,
	printStatement *usecase.PrintStatementUseCase,
	appLogger logger.Logger,
	in io.Reader,
	out io.Writer,
	bankName string,
	prompt string,
) *Console {
	return &Console{
		recordTransaction: recordTransaction,
		defineRule:        defineRule,
		printStatement:    printStatement,
		logger:            appLogger,
		scanner:           bufio.NewScanner(in),
		out:               out,
		bankName:          bankName,
		prompt:            prompt,
	}
}

// Run drives the menu loop until the operator quits, input ends, or the
// context is cancelled.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintf(c.out, "Welcome to %s! What would you like to do?\n", c.bankName)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		line, ok := c.readLine()
		if !ok {
			return nil
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "T":
			c.inputTransactions(ctx)
		case "I":
			c.defineInterestRules(ctx)
		case "P":
			c.printStatements(ctx)
		case "Q":
			fmt.Fprintf(c.out, "\nThank you for banking with %s.\nHave a nice day!\n", c.bankName)
			return nil
		case "":
			// Blank at the menu just re-prompts.
		default:
			fmt.Fprintln(c.out, "Invalid option. Please choose T, I, P or Q.")
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out, "[T] Input transactions")
	fmt.Fprintln(c.out, "[I] Define interest rules")
	fmt.Fprintln(c.out, "[P] Print statement")
	fmt.Fprintln(c.out, "[Q] Quit")
	fmt.Fprint(c.out, c.prompt)
}

func (c *Console) inputTransactions(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "\nPlease enter transaction details in <Date> <Account> <Type> <Amount> format")
		fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")
		fmt.Fprint(c.out, c.prompt)

		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		sessionLogger := c.logger.WithRequestID(uuid.New().String())
		statement, err := c.recordTransaction.Execute(ctx, line)
		if err != nil {
			sessionLogger.LogWarning(ctx, "Transaction rejected", "input", line, "reason", err.Error())
			fmt.Fprintln(c.out, upperFirst(err.Error()))
			continue
		}
		fmt.Fprintln(c.out, RenderAccountStatement(statement))
	}
}

func (c *Console) defineInterestRules(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "\nPlease enter interest rule details in <Date> <RuleId> <Rate in %> format")
		fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")
		fmt.Fprint(c.out, c.prompt)

		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		sessionLogger := c.logger.WithRequestID(uuid.New().String())
		listing, err := c.defineRule.Execute(ctx, line)
		if err != nil {
			sessionLogger.LogWarning(ctx, "Interest rule rejected", "input", line, "reason", err.Error())
			fmt.Fprintln(c.out, upperFirst(err.Error()))
			continue
		}
		fmt.Fprintln(c.out, RenderRuleListing(listing))
	}
}

func (c *Console) printStatements(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "\nPlease enter account and month to generate the statement <Account> <Year><Month>")
		fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")
		fmt.Fprint(c.out, c.prompt)

		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		sessionLogger := c.logger.WithRequestID(uuid.New().String())
		statement, err := c.printStatement.Execute(ctx, line)
		if err != nil {
			sessionLogger.LogWarning(ctx, "Statement request rejected", "input", line, "reason", err.Error())
			fmt.Fprintln(c.out, upperFirst(err.Error()))
			continue
		}
		fmt.Fprintln(c.out, RenderMonthlyStatement(statement))
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}

// upperFirst capitalizes the first letter of an error message for display.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
