package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devservices/backend/pkg/auth"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Print an Argon2id hash for a password read from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
		password, err := p.secret("Password: ")
		if err != nil {
			return err
		}
		password = strings.TrimSpace(password)
		if password == "" {
			return errors.New("password is required")
		}

		hash, err := auth.HashPassword(password, auth.DefaultArgon2Params())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
