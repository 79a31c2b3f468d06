package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/AgileWorksZA/cloudns-tools/internal/config"
	"github.com/AgileWorksZA/cloudns-tools/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCommand constructs the 'list' subcommand that prints every zone in
// the account, or writes them to a file with --output.
func listCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists all zones in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, creds := newService(cmd, cfg)
			if err := svc.TestLogin(ctx, creds); err != nil {
				return err
			}

			domains, err := svc.ListDomains(ctx, creds)
			if err != nil {
				return fmt.Errorf("could not list domains: %w", err)
			}
			logger.Info(ctx, "fetched domains", zap.Int("count", len(domains)))

			if output, _ := cmd.Flags().GetString("output"); output != "" {
				if err := writeDomains(output, domains); err != nil {
					return err
				}
				logger.Info(ctx, "domain list saved", zap.String("path", output))

				return nil
			}

			for _, d := range domains {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write the domain list to this file, one per line")

	return cmd
}

// writeDomains writes one domain per line, plain text.
func writeDomains(path string, domains []string) error {
	var b strings.Builder
	for _, d := range domains {
		b.WriteString(d)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("could not write output file: %w", err)
	}

	return nil
}
