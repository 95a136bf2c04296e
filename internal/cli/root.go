package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/branding"
	"github.com/stencil-labs/stencil/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` bootstraps a project directory: it resets the dependency
manifest, installs each entry of a requirement list through an external
package manager, and generates a fixed source-tree skeleton with logging,
exception, constant, and utility stubs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}
