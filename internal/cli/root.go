package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackforge-labs/stackforge/internal/branding"
	"github.com/stackforge-labs/stackforge/internal/config"
	"github.com/stackforge-labs/stackforge/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a TypeScript server project into the current
directory: it mirrors the bundled template, generates a tailored package.json
and README.md, then installs dependencies and runs a first build with your
package manager.

Run it inside an empty directory (a lone .git directory is fine).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScaffold,
}

func runScaffold(cmd *cobra.Command, args []string) error {
	config.Load()

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	tpl, err := scaffold.TemplateFS()
	if err != nil {
		return fmt.Errorf("broken installation (please reinstall %s): %w", branding.CLIName(), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n\n", branding.DisplayName(), buildVersion)

	result, err := scaffold.Run(scaffold.Options{
		Dir:           dir,
		Template:      tpl,
		In:            cmd.InOrStdin(),
		Out:           cmd.OutOrStdout(),
		Err:           cmd.ErrOrStderr(),
		PreferredTool: config.Get(config.KeyPackageManager),
		SkipInstall:   config.GetBool(config.KeySkipInstall),
		Context:       cmd.Context(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s is ready. Happy hacking!\n", result.ProjectName)
	if result.BuildWarning != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "The scaffold succeeded but the first build did not — see the warning above.\n")
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
