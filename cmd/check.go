package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/stackwatch/check-elastic-stack/internal/check"
	"github.com/stackwatch/check-elastic-stack/internal/config"
	"github.com/stackwatch/check-elastic-stack/internal/history"
	"github.com/stackwatch/check-elastic-stack/internal/logging"
	"github.com/stackwatch/check-elastic-stack/internal/probes"
)

func init() {
	rootCmd.RunE = runCheck
	rootCmd.Flags().String("check", "", "Service to check ("+strings.Join(probes.Names(), ", ")+")")
	rootCmd.Flags().String("endpoint", "", "Service base endpoint URL")
	rootCmd.Flags().String("user", "", "Username for authentication")
	rootCmd.Flags().String("password", "", "Password for authentication (prompted when omitted)")
	rootCmd.Flags().Int("timeout", 0, "HTTP timeout in seconds (overrides HTTP_TIMEOUT)")
	rootCmd.Flags().String("history", "", "SQLite database to append the result to")
	rootCmd.MarkFlagRequired("check")
	rootCmd.MarkFlagRequired("endpoint")
	rootCmd.MarkFlagRequired("user")
}

func runCheck(cmd *cobra.Command, args []string) error {
	service, _ := cmd.Flags().GetString("check")
	endpoint, _ := cmd.Flags().GetString("endpoint")
	user, _ := cmd.Flags().GetString("user")
	password, _ := cmd.Flags().GetString("password")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	historyPath, _ := cmd.Flags().GetString("history")

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer log.Sync()

	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	timeout := cfg.Timeout()
	if timeoutSec > 0 {
		timeout = time.Duration(timeoutSec) * time.Second
	}

	start := time.Now()
	outcome, err := check.Run(cmd.Context(), check.Params{
		Service:  service,
		Endpoint: endpoint,
		User:     user,
		Password: password,
		Timeout:  timeout,
	}, log)
	if err != nil {
		log.Error("check aborted", zap.Error(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), outcome.Line)
	exitCode = outcome.ExitCode

	if historyPath != "" {
		recordHistory(cmd, historyPath, service, endpoint, outcome, time.Since(start), log)
	}
	return nil
}

// recordHistory appends the result to the ledger. Failures are logged but
// never change the reported severity or exit code.
func recordHistory(cmd *cobra.Command, path, service, endpoint string, outcome *check.Outcome, elapsed time.Duration, log *zap.Logger) {
	store, err := history.Open(cmd.Context(), path)
	if err != nil {
		log.Error("open history ledger", zap.Error(err))
		return
	}
	defer store.Close()

	err = store.Record(cmd.Context(), history.Entry{
		Service:   service,
		Endpoint:  endpoint,
		Severity:  outcome.Severity.Code(),
		Message:   outcome.Line,
		Duration:  elapsed,
		CheckedAt: time.Now(),
	})
	if err != nil {
		log.Error("record history entry", zap.Error(err))
	}
}

// promptPassword reads the password from the terminal without echo.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("password is required (no terminal to prompt on)")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(secret), nil
}
