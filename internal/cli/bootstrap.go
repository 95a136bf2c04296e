package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/stencil-labs/stencil/internal/bootstrap"
	"github.com/stencil-labs/stencil/internal/config"
	"github.com/stencil-labs/stencil/internal/logkit"
)

var (
	bootstrapRequirements string
	bootstrapManifest     string
	bootstrapTool         string
	bootstrapTimeout      time.Duration
	bootstrapSkipInstall  bool
	bootstrapNoLog        bool
)

func init() {
	bootstrapCmd.Flags().StringVarP(&bootstrapRequirements, "requirements", "r", config.DefaultRequirements, "Requirement list to ingest")
	bootstrapCmd.Flags().StringVarP(&bootstrapManifest, "manifest", "m", config.DefaultManifest, "Dependency manifest to normalize")
	bootstrapCmd.Flags().StringVar(&bootstrapTool, "tool", config.DefaultTool, "Installer tool invoked as '<tool> add <spec>'")
	bootstrapCmd.Flags().DurationVar(&bootstrapTimeout, "timeout", 0, "Per-install timeout (0 = none)")
	bootstrapCmd.Flags().BoolVar(&bootstrapSkipInstall, "skip-install", false, "Parse requirements and build the skeleton without installing")
	bootstrapCmd.Flags().BoolVar(&bootstrapNoLog, "no-log", false, "Disable the logs/bootstrap.log run log")
	rootCmd.AddCommand(bootstrapCmd)
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [dir]",
	Short: "Reset the manifest, install requirements, and generate the skeleton",
	Long: `Run the full scaffolding pipeline against a project directory:

  1. Clear the dependency list in the manifest (creating a minimal manifest
     if none exists).
  2. Parse the requirement list, skipping comments, blanks, and invalid lines.
  3. Run '<tool> add <spec>' per requirement, halting on the first failure.
  4. Create the source skeleton and configs/configuration.yml, never
     overwriting existing files.

The directory defaults to the current working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBootstrap,
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	opts := bootstrap.Options{
		Dir:              dir,
		RequirementsFile: stringSetting(cmd, "requirements", config.KeyPathRequirements, bootstrapRequirements),
		ManifestFile:     stringSetting(cmd, "manifest", config.KeyPathManifest, bootstrapManifest),
		Tool:             stringSetting(cmd, "tool", config.KeyInstallTool, bootstrapTool),
		Timeout:          bootstrapTimeout,
		SkipInstall:      bootstrapSkipInstall,
		Out:              cmd.OutOrStdout(),
	}

	if !cmd.Flags().Changed("timeout") {
		opts.Timeout = config.GetDuration(config.KeyInstallTimeout)
	}

	if !bootstrapNoLog {
		logs := logkit.New(filepath.Join(dir, "logs"), zapcore.InfoLevel)
		defer logs.Close()
		opts.Logs = logs
	}

	res := bootstrap.Run(cmd.Context(), opts)
	if !res.OK {
		return fmt.Errorf("bootstrap failed at state %s", res.State)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Bootstrap complete.")
	return nil
}

// projectDir resolves the optional positional directory argument.
func projectDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return dir, nil
}

// stringSetting applies flag > config precedence: an explicitly set flag
// wins, otherwise the config/env value (which carries its own default).
func stringSetting(cmd *cobra.Command, flag, key, flagValue string) string {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	if v := config.Get(key); v != "" {
		return v
	}
	return flagValue
}
