package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackforge-labs/stackforge/internal/branding"
	"github.com/stackforge-labs/stackforge/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write configuration stored at ~/%s/config.yaml.

Recognized keys:
  package_manager   force "yarn" or "npm" instead of probing PATH
  skip_install      "true" skips the install and build steps after scaffolding

Each key can also be set per invocation through its environment variable
(%s, %s).`,
		branding.HomeDir(),
		branding.EnvVar(config.KeyPackageManager),
		branding.EnvVar(config.KeySkipInstall)),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		value := config.Get(args[0])
		fmt.Println(value)
		return nil
	},
}
