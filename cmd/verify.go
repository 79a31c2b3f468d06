package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/AgileWorksZA/cloudns-tools/internal/config"
	"github.com/AgileWorksZA/cloudns-tools/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCommand constructs the 'verify' subcommand that checks which
// accounts zones are shared with. With --email it verifies that exact
// account; without it, it reports the full list per zone.
func verifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verifies zones are shared, optionally with a specific email",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			email, _ := cmd.Flags().GetString("email")
			domains, err := domainArgs(cmd)
			if err != nil {
				return err
			}

			svc, creds := newService(cmd, cfg)
			if err := svc.TestLogin(ctx, creds); err != nil {
				return err
			}

			if len(domains) == 0 {
				logger.Info(ctx, "no domains to verify")

				return nil
			}
			logger.Info(ctx, "verifying sharing", zap.Int("count", len(domains)), zap.String("email", email))

			results, err := svc.VerifySharing(ctx, creds, domains, email)
			if err != nil {
				return err
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				for _, r := range results {
					logger.Info(ctx, "verification result",
						zap.String("domain", r.Domain),
						zap.String("status", string(r.Status)),
						zap.String("detail", r.Message))
				}
			}

			return renderSummary(cmd, results)
		},
	}

	cmd.Flags().StringP("email", "e", "", "Email address the zones should be shared with")
	cmd.Flags().StringP("domains", "d", "", "Comma-separated list of zones")
	cmd.Flags().StringP("file", "f", "", "Path to a file with one zone per line")
	cmd.MarkFlagsMutuallyExclusive("domains", "file")
	cmd.MarkFlagsOneRequired("domains", "file")

	return cmd
}
