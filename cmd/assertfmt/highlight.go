package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"assertfmt/internal/highlight"
)

type blockOutput struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func newHighlightCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlight [flags] <expr>",
		Short: "Print an expression with syntax highlighting",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().String("format", "text", "output format (text|blocks|json)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		hl := highlight.New(st.model, st.scheme)
		blocks := hl.Blocks(args[0])
		out := cmd.OutOrStdout()
		switch format {
		case "text":
			_, err = fmt.Fprintln(out, highlight.Flatten(blocks, st.scheme))
			return err
		case "blocks":
			for _, b := range blocks {
				if _, err := fmt.Fprintf(out, "%-16s %q\n", b.Role, b.Text); err != nil {
					return err
				}
			}
			return nil
		case "json":
			payload := make([]blockOutput, 0, len(blocks))
			for _, b := range blocks {
				payload = append(payload, blockOutput{Role: b.Role.String(), Text: b.Text})
			}
			enc := json.NewEncoder(out)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return cmd
}
