package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/requirements"
)

var parseLint bool

func init() {
	parseCmd.Flags().BoolVar(&parseLint, "lint", false, "Warn about constraints that are not semver ranges")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a requirement list and print the accepted specifiers",
	Long: `Parse a requirements.txt-style file and print one accepted specifier per
line. Comments and blank lines are ignored; lines that fail the specifier
pattern are reported on stderr and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs, skips, err := requirements.ParseFile(args[0])
		if err != nil {
			return err
		}

		for _, skip := range skips {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping invalid line: %s\n", skip.Line)
		}
		for _, req := range reqs {
			fmt.Fprintln(cmd.OutOrStdout(), req.Spec())
		}

		if parseLint {
			for _, warning := range requirements.Lint(reqs) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
			}
		}
		return nil
	},
}
