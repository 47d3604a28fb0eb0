package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devservices/backend/pkg/auth"
	"github.com/spf13/cobra"
)

const (
	minPasswordLen     = 8
	jwtSecretBytes     = 32
	defaultGenerateLen = 16
)

var errPasswordMismatch = errors.New("passwords don't match")

var (
	generate    bool
	generateLen int
)

var setPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Set the admin password and rotate the JWT secret",
	Long: `Hashes the admin password with Argon2id and stores it as ADMIN_PASSWORD_HASH
in the .env file. A fresh JWT_SECRET is written at the same time, so existing
admin tokens stop working. Any plaintext ADMIN_PASSWORD entry is removed.
Restart the server for the change to take effect.`,
	RunE: runSetPassword,
}

func init() {
	setPasswordCmd.Flags().BoolVar(&generate, "generate", false, "generate a random password instead of prompting")
	setPasswordCmd.Flags().IntVar(&generateLen, "length", defaultGenerateLen, "length of the generated password")
	rootCmd.AddCommand(setPasswordCmd)
}

func runSetPassword(cmd *cobra.Command, _ []string) error {
	var password string
	if generate {
		p, err := auth.GeneratePassword(generateLen)
		if err != nil {
			return err
		}
		password = p
	} else {
		p, err := promptNewPassword(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		password = p
	}

	hash, err := auth.HashPassword(password, auth.DefaultArgon2Params())
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	secret, err := auth.GenerateSecret(jwtSecretBytes)
	if err != nil {
		return fmt.Errorf("generate jwt secret: %w", err)
	}

	err = updateEnvFile(envFile, map[string]string{
		"ADMIN_PASSWORD_HASH": hash,
		"JWT_SECRET":          secret,
	}, "ADMIN_PASSWORD")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if generate {
		fmt.Fprintf(out, "Generated password: %s\n", password)
		fmt.Fprintln(out, "Save this password now. It is not stored anywhere in plaintext.")
	}
	fmt.Fprintf(out, "Admin password updated in %s. Restart the server to apply it.\n", envFile)
	return nil
}

func promptNewPassword(p *prompter) (string, error) {
	password, err := p.secret(fmt.Sprintf("New admin password (min %d characters): ", minPasswordLen))
	if err != nil {
		return "", err
	}
	password = strings.TrimSpace(password)
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	confirm, err := p.secret("Confirm password: ")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(confirm) != password {
		return "", errPasswordMismatch
	}
	return password, nil
}
