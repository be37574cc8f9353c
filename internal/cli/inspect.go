package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"github.com/moka-lang/moka/internal/dispatch"
	"github.com/moka-lang/moka/internal/logging"
	"github.com/moka-lang/moka/internal/manifest"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	json   bool
	bridge bool
}

func newInspectCmd(o *rootOptions) *cobra.Command {
	var opts inspectOptions

	cmd := &cobra.Command{
		Use:   "inspect <module>",
		Short: "Validate and describe a module",
		Long: `Validate <module>/` + manifest.FileName + ` against the descriptor schema, check its
version constraint against this build, and print its metadata and options.

With --bridge the module's options are also sent to the interpreter bridge.`,
		Args: o.exactArgs(1),
		RunE: o.versionFirst(func(cmd *cobra.Command, args []string) error {
			if o.archive {
				return &dispatch.UnsupportedFeatureError{Feature: dispatch.FeatureArchive}
			}
			return runInspect(cmd, o, args[0], opts)
		}),
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the descriptor as JSON")
	cmd.Flags().BoolVar(&opts.bridge, "bridge", false, "Send the module options to the interpreter bridge")
	return cmd
}

func runInspect(cmd *cobra.Command, o *rootOptions, dir string, opts inspectOptions) error {
	path := filepath.Join(dir, manifest.FileName)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "%s is invalid:\n", path)
		for _, issue := range result.Issues {
			at := issue.Path
			if at == "" {
				at = "/"
			}
			fmt.Fprintf(w, "  %s: %s\n", at, issue.Message)
		}
		return fmt.Errorf("%s failed validation with %d issue(s)", path, len(result.Issues))
	}

	m, err := manifest.ParseFile(path)
	if err != nil {
		return err
	}
	if err := manifest.CheckVersion(m, o.build.toolchain()); err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug("module loaded", "name", m.Meta.Name, "version", m.Meta.Version)

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
	} else {
		printModule(out, m)
	}

	if !opts.bridge {
		return nil
	}
	options := m.Options
	if options == nil {
		options = map[string]any{}
	}
	res, err := o.invokeBridge(cmd, options)
	if err != nil {
		return err
	}
	printStreams(out, res)
	return res.Failure()
}

func printModule(w io.Writer, m *manifest.Module) {
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(w, "%-12s %s\n", label+":", value)
		}
	}
	field("name", m.Meta.Name)
	field("version", m.Meta.Version)
	field("author", m.Meta.Author)
	field("license", m.Meta.License)
	field("description", m.Meta.Description)
	field("requires", m.Meta.Moka)

	if len(m.Options) == 0 {
		return
	}
	fmt.Fprintln(w, "options:")
	for _, key := range slices.Sorted(maps.Keys(m.Options)) {
		fmt.Fprintf(w, "  %s = %v\n", key, m.Options[key])
	}
}
