package cli

import (
	"github.com/moka-lang/moka/internal/dispatch"
	"github.com/spf13/cobra"
)

func newCompileCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "compile <module> <output>",
		Short:       "Compile a module",
		Args:        o.exactArgs(2),
		Annotations: map[string]string{runnerAnnotation: "compile"},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := o.raw(dispatch.CommandCompile)
			if len(args) == 2 {
				raw.Module, raw.Output = args[0], args[1]
			}
			return o.dispatch(cmd, raw)
		},
	}
}
