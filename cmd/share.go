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

// shareCommand constructs the 'share' subcommand that shares zones with
// another account by email. Zones come from --domains or --file.
func shareCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Shares zones with another account by email",
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
				logger.Info(ctx, "no domains to share")

				return nil
			}
			logger.Info(ctx, "sharing domains", zap.Int("count", len(domains)), zap.String("email", email))

			results, err := svc.ShareDomains(ctx, creds, domains, email)
			if err != nil {
				return err
			}

			return renderSummary(cmd, results)
		},
	}

	cmd.Flags().StringP("email", "e", "", "Email address to share the zones with")
	cmd.Flags().StringP("domains", "d", "", "Comma-separated list of zones")
	cmd.Flags().StringP("file", "f", "", "Path to a file with one zone per line")
	cmd.MarkFlagsMutuallyExclusive("domains", "file")
	cmd.MarkFlagsOneRequired("domains", "file")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
