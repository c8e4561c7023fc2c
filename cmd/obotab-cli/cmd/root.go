package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"obotab/internal/adapters/fetch"
	"obotab/internal/logger"
	"obotab/internal/ports"
)

var (
	verbose  bool
	resolver ports.SourceResolver
)

var rootCmd = &cobra.Command{
	Use:   "obotab-cli",
	Short: "CLI for converting and inspecting OBO ontologies",
	Long: `obotab-cli reads ontologies in the OBO flat-file format and turns them
into tab-separated tables.

It provides commands to convert an ontology to TSV, inspect its tag
statistics, print its hierarchy, and build and query a local search index.
Sources may be local files or http(s) URLs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := logger.Init(verbose); err != nil {
			return err
		}
		resolver = fetch.NewResolver()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// GetResolver returns the initialized source resolver
func GetResolver() ports.SourceResolver {
	return resolver
}
