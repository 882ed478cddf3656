package cli

import (
	"fmt"

	"github.com/kirubel12/hono-artisan/internal/branding"
	"github.com/kirubel12/hono-artisan/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write ` + branding.DisplayName() + ` settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys:
  create_delay   how long the create step runs (duration, default 1s)
  no_color       disable styled output (true|false)
  log_level      diagnostic log level (debug|info|warn|error)`,
	}
	cmd.AddCommand(newConfigSetCmd(), newConfigGetCmd(), newConfigListCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.IsKnownKey(args[0]) {
				return fmt.Errorf("unknown config key %q (known keys: %v)", args[0], config.Keys())
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range config.Keys() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
			}
			return nil
		},
	}
}
