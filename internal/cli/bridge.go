package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/moka-lang/moka/internal/bridge"
	"github.com/moka-lang/moka/internal/logging"
	"github.com/moka-lang/moka/internal/resources"
	"github.com/spf13/cobra"
)

// invokeBridge runs the support script from the resource directory with
// options as its JSON payload.
func (o *rootOptions) invokeBridge(cmd *cobra.Command, options any) (*bridge.Result, error) {
	dir, err := resources.Dir(o.settings.ResourcesDir)
	if err != nil {
		return nil, err
	}
	inv, err := bridge.NewInvocation(resources.RunnerScriptPath(dir), dir, options)
	if err != nil {
		return nil, err
	}

	in := &bridge.Interpreter{
		Path:    o.settings.Interpreter,
		Timeout: o.settings.BridgeTimeout,
	}
	if o.verbose {
		in.Stderr = cmd.ErrOrStderr()
	}

	logging.FromContext(cmd.Context()).Debug("invoking bridge",
		"interpreter", in.Path, "script", inv.Script, "resources", dir)
	return in.Invoke(cmd.Context(), inv)
}

// printStreams writes the captured streams in the Out/Err form.
func printStreams(w io.Writer, res *bridge.Result) {
	fmt.Fprintf(w, "Out %s\n", strings.TrimRight(string(res.Stdout), "\n"))
	fmt.Fprintf(w, "Err %s\n", strings.TrimRight(string(res.Stderr), "\n"))
}
