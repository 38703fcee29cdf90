package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gicbank.com/internal/application/usecase"
	"gicbank.com/internal/infrastructure/config"
	"gicbank.com/internal/infrastructure/console"
	"gicbank.com/internal/infrastructure/logger"
	"gicbank.com/internal/infrastructure/repository"

	"github.com/spf13/cobra"
)

const consoleDir = "console"

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run interactive banking console.",
	RunE: func(_ *cobra.Command, _ []string) error {
		// Initialize logger
		appLogger := logger.NewLogger()

		// Get config directory (relative to where the binary is run from)
		configDir := filepath.Join("cmd", "config", consoleDir)
		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			// Try absolute path from project root
			configDir = filepath.Join(".", "cmd", "config", consoleDir)
		}

		// Load configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			appLogger.LogError(context.TODO(), "Failed to load config", err)
			return fmt.Errorf("failed to load config: %w", err)
		}

		appLogger.LogInfo(context.TODO(), "Configuration loaded",
			"bank_name", cfg.Bank.Name)

		// Initialize infrastructure adapters
		bank := repository.NewInMemoryBank(appLogger)

		// Initialize use cases
		recordTransaction := usecase.NewRecordTransactionUseCase(bank)
		defineRule := usecase.NewDefineInterestRuleUseCase(bank)
		printStatement := usecase.NewPrintStatementUseCase(bank)

		// Initialize console
		ui := console.New(
			recordTransaction,
			defineRule,
			printStatement,
			appLogger,
			os.Stdin,
			os.Stdout,
			cfg.Bank.Name,
			cfg.Console.Prompt,
		)

		// Cancel the session context on termination signals
		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
		defer stop()

		appLogger.LogInfo(ctx, "Starting console", "bank_name", cfg.Bank.Name)

		if err := ui.Run(ctx); err != nil && err != context.Canceled {
			appLogger.LogError(ctx, "Console error", err)
			return err
		}

		appLogger.LogInfo(ctx, "Console session ended")
		return nil
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(consoleCmd)
}
