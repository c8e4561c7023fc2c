package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"obotab/internal/application/commands"
	"obotab/internal/logger"
)

var statsCmd = &cobra.Command{
	Use:   "stats <source>",
	Short: "Show tag statistics for an ontology",
	Long: `Parse an ontology and report how often each tag occurs.

For list-valued tags such as is_a and xref the average number of values
per carrying term is reported as well.

Example:
  obotab-cli stats hp.obo`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		statsCmd := commands.NewStatsCommand(GetResolver(), logger.Get(), args[0])
		result, err := statsCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d terms\n\n", result.Source, result.Terms)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TAG\tTERMS\tVALUES/TERM")
		for _, s := range result.Tags {
			if per := s.ValuesPerRecord(); per > 0 {
				fmt.Fprintf(w, "%s\t%d\t%.2f\n", s.Tag, s.Records, per)
			} else {
				fmt.Fprintf(w, "%s\t%d\t\n", s.Tag, s.Records)
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
