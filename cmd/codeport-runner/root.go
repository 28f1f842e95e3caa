// Package main provides the codeport-runner CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "codeport-runner",
	Short: "CodePort AI Toolkit Runner",
	Long: `CodePort AI Toolkit Runner - an AI-powered code conversion assistant.

The runner analyzes a Java codebase with a configurable LLM backend,
exports the extracted knowledge as JSON and converts representative
modules to Node.js.`,
	Version: version.FullString(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
