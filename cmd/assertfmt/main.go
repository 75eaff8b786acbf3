package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"assertfmt/internal/version"
)

// main runs the CLI and exits with status 1 when the command fails.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	st := &state{}
	root := newRootCmd(st)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if st.cleanup != nil {
		st.cleanup()
	}
	if err != nil {
		return 1
	}
	return 0
}

func newRootCmd(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "assertfmt",
		Short: "Render diagnostics for failed assertions",
		Long: `assertfmt takes captured assertion failures (expression text, operand values,
stack frames) and renders them as highlighted, column-aligned reports`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if st.timings && st.timer != nil {
				fmt.Fprint(cmd.ErrOrStderr(), st.timer.Summary())
			}
			return nil
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("width", 0, "terminal width; 0 selects the narrow layout (default: detected)")
	pf.String("scheme", "", "color scheme (auto|rgb|basic|blank)")
	pf.String("path-mode", "", "stack trace paths (full|disambiguated|basename)")
	pf.String("config", "", "config file (default: assertfmt.toml searched upwards)")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "", "trace storage (stream|ring|both)")
	pf.String("trace-format", "", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "ring buffer size for ring trace mode")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 disables)")

	root.AddCommand(
		newTokenizeCmd(st),
		newHighlightCmd(st),
		newDecomposeCmd(st),
		newPathsCmd(st),
		newRenderCmd(st),
		newVersionCmd(),
	)
	return root
}
