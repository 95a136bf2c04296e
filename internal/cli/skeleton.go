package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/skeleton"
)

func init() {
	rootCmd.AddCommand(skeletonCmd)
}

var skeletonCmd = &cobra.Command{
	Use:   "skeleton [dir]",
	Short: "Generate the source skeleton without touching dependencies",
	Long: `Create the fixed directory and file layout (configs/, src/Front, src/Back)
in the given directory. Existing directories are reused and existing files
are never overwritten, so re-running is always safe.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := projectDir(args)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Creating source package skeleton...")
		if err := skeleton.Materialize(cmd.OutOrStdout(), dir); err != nil {
			return fmt.Errorf("creating skeleton: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Skeleton complete.")
		return nil
	},
}
