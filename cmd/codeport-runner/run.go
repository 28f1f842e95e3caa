// Package main provides the codeport-runner CLI application.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/config"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/observability"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/provider"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/runner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze a Java codebase and convert modules to Node.js",
	Long: `Run the full conversion pipeline.

The repository is cloned when missing, every Java file is analyzed with
the configured LLM provider, the extracted knowledge is exported as JSON
and one representative Controller, Service and DAO are converted to
Node.js.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig()
		if err != nil {
			return err
		}

		log := observability.NewLogger(cfg.Global.LogLevel)

		llm, err := provider.Create(cmd.Context(), &cfg.Provider)
		if err != nil {
			return err
		}
		log.Info("using llm provider", observability.String("provider", llm.Name()))

		result, err := runner.New(*cfg, llm, log).Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("\nAnalyzed %d modules in %s\n", result.ModuleCount, result.Duration.Round(time.Second))
		fmt.Printf("Knowledge exported to %s\n", result.KnowledgePath)
		for _, path := range result.ConvertedFiles {
			fmt.Printf("Converted: %s\n", path)
		}
		return nil
	},
}

// runFlags holds the flags for the run command
type runFlags struct {
	config   string
	provider string
	repoURL  string
	repoPath string
	verbose  bool
}

var runOpts runFlags

// loadRunConfig resolves the configuration with flag overrides on top of
// file and environment values.
func loadRunConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if runOpts.config != "" {
		cfg, err = config.Load(runOpts.config)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if runOpts.provider != "" {
		cfg.Provider.Name = runOpts.provider
	}
	if runOpts.repoURL != "" {
		cfg.Repo.URL = runOpts.repoURL
	}
	if runOpts.repoPath != "" {
		cfg.Repo.Path = runOpts.repoPath
	}
	if runOpts.verbose {
		cfg.Global.LogLevel = "debug"
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Local flags for the run command
	runCmd.Flags().StringVarP(&runOpts.config, "config", "c", "", "Path to configuration file")
	runCmd.Flags().StringVarP(&runOpts.provider, "provider", "p", "", "LLM provider: gemini, ollama, openai, anthropic (default: auto-detect)")
	runCmd.Flags().StringVar(&runOpts.repoURL, "repo-url", "", "Git URL of the Java repository to convert")
	runCmd.Flags().StringVar(&runOpts.repoPath, "repo-path", "", "Local checkout path for the repository")
	runCmd.Flags().BoolVarP(&runOpts.verbose, "verbose", "v", false, "Verbose output")
}
