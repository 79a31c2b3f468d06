// Package main provides the CLI entrypoint for the ClouDNS domain sharing
// tool. It wires subcommands (list, share, verify, test-login), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/AgileWorksZA/cloudns-tools/internal/config"
	"github.com/AgileWorksZA/cloudns-tools/internal/report"
	"github.com/AgileWorksZA/cloudns-tools/internal/sharing"
	"github.com/AgileWorksZA/cloudns-tools/pkg/cloudns/cloudnsapi"
	"github.com/AgileWorksZA/cloudns-tools/pkg/domain"
	"github.com/AgileWorksZA/cloudns-tools/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newService builds the sharing service from config, honoring the
// credential flag overrides on the command.
func newService(cmd *cobra.Command, cfg *config.Config) (sharing.Service, domain.Credentials) {
	creds := domain.Credentials{AuthID: cfg.Auth.ID, AuthPassword: cfg.Auth.Password}
	if v, _ := cmd.Flags().GetString("auth-id"); v != "" {
		creds.AuthID = v
	}
	if v, _ := cmd.Flags().GetString("auth-password"); v != "" {
		creds.AuthPassword = v
	}

	client := cloudnsapi.New(
		&http.Client{Timeout: cfg.API.RequestTimeout},
		cfg.API.BaseURL,
		cloudnsapi.RetryPolicy{
			MaxAttempts: cfg.API.MaxAttempts,
			BaseDelay:   cfg.API.RetryBaseDelay,
			Multiplier:  cfg.API.RetryMultiplier,
		},
	)

	return sharing.New(client, sharing.NewOptions(cfg)), creds
}

// domainArgs resolves the zone list from either --domains or --file.
func domainArgs(cmd *cobra.Command) ([]string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return readDomainFile(path)
	}

	raw, _ := cmd.Flags().GetString("domains")
	var domains []string
	for _, d := range strings.Split(raw, ",") {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, d)
		}
	}

	return domains, nil
}

// readDomainFile loads zones from a text file, one per line, skipping
// blank lines.
func readDomainFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read domain file: %w", err)
	}

	var domains []string
	for _, line := range strings.Split(string(b), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			domains = append(domains, line)
		}
	}

	return domains, nil
}

// renderSummary prints the aggregate report and returns an error when any
// domain failed, so the process exits non-zero.
func renderSummary(cmd *cobra.Command, results []domain.OperationResult) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	summary := report.Summarize(results)
	summary.Render(cmd.OutOrStdout(), verbose)

	if !summary.Ok() {
		return fmt.Errorf("%d of %d domains failed", summary.Failed, summary.Total)
	}

	return nil
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:          "cloudns-share",
		Short:        "Lists, shares and verifies ClouDNS zones",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config file: %w", err)
			}
			cfg = *loaded

			logger.Setup(cfg.Environment)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().String("auth-id", "", "ClouDNS auth ID (overrides CLOUDNS_AUTH_ID)")
	rootCmd.PersistentFlags().String("auth-password", "", "ClouDNS auth password (overrides CLOUDNS_AUTH_PASSWORD)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show per-domain detail in reports")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		listCommand(&cfg),
		shareCommand(&cfg),
		verifyCommand(&cfg),
		loginCommand(&cfg),
	)

	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
