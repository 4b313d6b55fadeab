package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/finchat/internal/http/auth"
)

func tokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the messaging gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.Gateway.JWTSecret == "" {
				return errors.New("GATEWAY_JWT_SECRET is not set")
			}

			token, err := auth.Issue([]byte(cfg.Gateway.JWTSecret), subject, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)

			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "gateway", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (0 never expires)")

	return cmd
}
