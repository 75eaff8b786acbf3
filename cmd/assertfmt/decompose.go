package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"assertfmt/internal/diagfmt"
	"assertfmt/internal/driver"
)

type decomposeOutput struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Index int    `json:"index"`
}

func newDecomposeCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompose [flags] <expr> <op>",
		Short: "Split an expression around its top-level operator",
		Long: `Decompose finds the single top-level occurrence of <op> in <expr>, trying
both readings of every '<' that could open a template argument list`,
		Args: cobra.ExactArgs(2),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		var result *driver.DecomposeResult
		splitErr := st.timer.Measure("decompose", func() error {
			result, err = driver.Decompose(args[0], args[1], st.cfg.Resolve.MaxDepth, st.tracer, st.maxDiag)
			return err
		})
		if result.Bag.Len() > 0 {
			opts := diagfmt.PrettyOpts{Color: st.color, ShowNotes: true}
			if err := diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, args[0], opts); err != nil {
				return err
			}
		}
		if splitErr != nil {
			return splitErr
		}

		out := cmd.OutOrStdout()
		switch format {
		case "pretty":
			_, err = fmt.Fprintf(out, "left:  %s\nright: %s\n", result.Split.Left, result.Split.Right)
			return err
		case "json":
			enc := json.NewEncoder(out)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(decomposeOutput{Left: result.Split.Left, Right: result.Split.Right, Index: result.Split.Index})
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return cmd
}
