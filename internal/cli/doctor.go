package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/config"
	"github.com/stencil-labs/stencil/internal/installer"
	"github.com/stencil-labs/stencil/internal/manifest"
	"github.com/stencil-labs/stencil/internal/skeleton"
)

var doctorCheckConfig string

func init() {
	doctorCmd.Flags().StringVar(&doctorCheckConfig, "check-config", "", "Validate a configuration file at the given path and exit")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [dir]",
	Short: "Health check for a scaffolded project",
	Long: `Run diagnostic checks against a project directory: installer tool
availability, manifest integrity, generated configuration validity, and
skeleton completeness.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if doctorCheckConfig != "" {
		return checkConfigFile(cmd, doctorCheckConfig)
	}

	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	failures := 0

	// Installer tool on PATH.
	runner := &installer.Runner{Tool: config.Get(config.KeyInstallTool)}
	if bin, err := runner.LookupTool(); err != nil {
		fmt.Fprintf(out, "  ✗ installer tool: %v\n", err)
		failures++
	} else {
		fmt.Fprintf(out, "  ✓ installer tool: %s\n", bin)
	}

	// Manifest integrity.
	manifestName := config.Get(config.KeyPathManifest)
	manifestPath := filepath.Join(dir, manifestName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		fmt.Fprintf(out, "  ✓ manifest: %s absent (a default will be synthesized)\n", manifestName)
	} else if doc, err := manifest.Load(manifestPath); err != nil {
		fmt.Fprintf(out, "  ✗ manifest: %v\n", err)
		failures++
	} else {
		fmt.Fprintf(out, "  ✓ manifest: %s %s, %d dependencies\n",
			doc.Project.Name, doc.Project.Version, len(doc.Project.Dependencies))
	}

	// Generated configuration validity.
	configPath := filepath.Join(dir, "configs", "configuration.yml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "  ✓ configuration: not generated yet")
	} else if res, err := manifest.CheckConfigFile(configPath); err != nil {
		fmt.Fprintf(out, "  ✗ configuration: %v\n", err)
		failures++
	} else if !res.Valid {
		fmt.Fprintf(out, "  ✗ configuration: %d schema violations\n", len(res.Issues))
		for _, issue := range res.Issues {
			fmt.Fprintf(out, "      %s: %s\n", issue.Path, issue.Message)
		}
		failures++
	} else {
		fmt.Fprintln(out, "  ✓ configuration: valid")
	}

	// Skeleton completeness.
	if missing := skeleton.Missing(dir); len(missing) > 0 {
		fmt.Fprintf(out, "  ✗ skeleton: %d paths missing (run '%s skeleton')\n",
			len(missing), rootCmd.Use)
		for _, node := range missing {
			fmt.Fprintf(out, "      %s\n", node.Path)
		}
		failures++
	} else {
		fmt.Fprintln(out, "  ✓ skeleton: complete")
	}

	if failures > 0 {
		return fmt.Errorf("%d checks failed", failures)
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}

func checkConfigFile(cmd *cobra.Command, path string) error {
	res, err := manifest.CheckConfigFile(path)
	if err != nil {
		return err
	}
	if !res.Valid {
		for _, issue := range res.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("%s: %d schema violations", path, len(res.Issues))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s is valid\n", path)
	return nil
}
