package cli

import (
	"encoding/json"
	"fmt"

	"github.com/moka-lang/moka/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(o *rootOptions) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  o.exactArgs(0),
		RunE: o.versionFirst(func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			b := o.build

			if short {
				fmt.Fprintln(out, b.displayVersion())
				return nil
			}

			if asJSON {
				info := map[string]string{
					"version": b.Version,
					"commit":  b.Commit,
					"date":    b.Date,
				}
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n",
				branding.CLIName(), b.displayVersion(), b.Commit, b.Date)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}
