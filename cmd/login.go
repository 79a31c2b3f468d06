package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/AgileWorksZA/cloudns-tools/internal/config"
	"github.com/AgileWorksZA/cloudns-tools/pkg/logger"

	"github.com/spf13/cobra"
)

// loginCommand constructs the 'test-login' subcommand that validates the
// credential pair and does nothing else.
func loginCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "test-login",
		Short: "Tests that the ClouDNS credentials are valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, creds := newService(cmd, cfg)
			if err := svc.TestLogin(ctx, creds); err != nil {
				return err
			}

			logger.Info(ctx, "login test complete, credentials are valid")

			return nil
		},
	}
}
