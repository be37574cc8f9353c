package cli

import (
	"github.com/moka-lang/moka/internal/dispatch"
	"github.com/spf13/cobra"
)

func newUseCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "use <module> <input> <output>",
		Short: "Run a module against an input file",
		Long: `Parse <input> with the module at <module> and write the result to <output>.
The module must be a folder; archives are not supported yet.`,
		Args:        o.exactArgs(3),
		Annotations: map[string]string{runnerAnnotation: "use"},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := o.raw(dispatch.CommandUse)
			if len(args) == 3 {
				raw.Module, raw.Input, raw.Output = args[0], args[1], args[2]
			}
			return o.dispatch(cmd, raw)
		},
	}
}
