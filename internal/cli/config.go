package cli

import (
	"fmt"

	"github.com/moka-lang/moka/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long:  `Read and write settings stored at ` + config.FilePath() + `.`,
		Args:  o.exactArgs(0),
		RunE: o.versionFirst(func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		}),
	}
	cmd.AddCommand(newConfigSetCmd(o), newConfigGetCmd(o), newConfigListCmd(o))
	return cmd
}

func newConfigSetCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  o.exactArgs(2),
		RunE: o.versionFirst(func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		}),
	}
}

func newConfigGetCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  o.exactArgs(1),
		RunE: o.versionFirst(func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		}),
	}
}

func newConfigListCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every setting with its effective value",
		Args:  o.exactArgs(0),
		RunE: o.versionFirst(func(cmd *cobra.Command, _ []string) error {
			for _, key := range config.Keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
			}
			return nil
		}),
	}
}
