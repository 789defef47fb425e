package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stylewriter/internal/auth"
	"stylewriter/internal/config"
	"stylewriter/internal/domain"
)

func tokenCmd() *cobra.Command {
	var (
		name string
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue an API access token signed with the configured JWT secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.UserRole(role)
			if r != domain.RoleAdmin && r != domain.RoleEditor {
				return fmt.Errorf("unknown role %q; allowed: admin, editor", role)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			tok, err := auth.NewTokenManager(cfg.JWT).Issue(args[0], name, r, ttl)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(tok, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name carried in the token")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleEditor), "role: admin|editor")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: jwt.access_expiry)")
	return cmd
}
