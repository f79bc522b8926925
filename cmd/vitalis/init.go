package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// initCmd writes the config file and mints the API token. Only the token's
// bcrypt hash is stored; the token itself is printed once and never again.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the config file and mint an API token",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	token := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash token: %w", err)
	}
	cfg.Auth.TokenHash = string(hash)

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("Config written to %s\n", configPath)
	fmt.Println("API token (shown once, store it now):")
	fmt.Println("  " + token)
	return nil
}
