package cli

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/moka-lang/moka/internal/bridge"
	"github.com/moka-lang/moka/internal/resources"
	"github.com/spf13/cobra"
)

func newDoctorCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the interpreter bridge works",
		Long: `Resolve the resource directory, look up the configured interpreter and run
` + resources.PyEnvDir + `/` + resources.RunnerScript + ` with the default options, printing what it wrote.`,
		Args: o.exactArgs(0),
		RunE: o.versionFirst(func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, o)
		}),
	}
}

func runDoctor(cmd *cobra.Command, o *rootOptions) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Bridge check:")

	dir, err := resources.Dir(o.settings.ResourcesDir)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	switch ok, err := resources.Exists(dir); {
	case err != nil:
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
	case !ok:
		fmt.Fprintf(out, "  [MISS] resource directory %s not found\n", dir)
	default:
		fmt.Fprintf(out, "  [ OK ] resource directory %s\n", dir)
	}
	checkBinary(out, o.settings.Interpreter)

	res, err := o.invokeBridge(cmd, resources.DefaultOptions())
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %s: %v\n", classify(err), err)
		return err
	}
	if res.Success() {
		fmt.Fprintf(out, "  [ OK ] %s exited cleanly\n", resources.RunnerScript)
	} else {
		fmt.Fprintf(out, "  [FAIL] %s exited with code %d\n", resources.RunnerScript, res.ExitCode)
	}
	printStreams(out, res)
	return res.Failure()
}

func checkBinary(w io.Writer, name string) {
	if name == "" {
		name = bridge.DefaultInterpreter
	}
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

// classify names the bridge failure category for the doctor report.
func classify(err error) string {
	switch {
	case errors.Is(err, bridge.ErrBridgeSpawn):
		return "spawn"
	case errors.Is(err, bridge.ErrBridgeTimeout):
		return "timeout"
	case errors.Is(err, bridge.ErrBridgeIO):
		return "io"
	default:
		return "error"
	}
}
