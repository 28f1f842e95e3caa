// Package main provides the codeport-runner CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/config"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/provider"
)

// providersCmd represents the providers command
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List available LLM providers and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return err
		}

		fmt.Println("Available LLM providers:")
		fmt.Println()
		for _, info := range provider.List(cmd.Context(), &cfg.Provider) {
			status := "not configured"
			if info.Configured {
				status = "ready"
			}
			fmt.Printf("  %-10s %-18s %-5s [%s]\n", info.ID, info.Name, info.Cost, status)
			if info.KeyRequired && !info.Configured {
				fmt.Printf("             set %s (get a key at %s)\n", info.EnvVar, info.URL)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
