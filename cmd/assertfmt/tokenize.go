package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"assertfmt/internal/diagfmt"
	"assertfmt/internal/driver"
)

func newTokenizeCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <expr>",
		Short: "Tokenize an expression",
		Long:  `Tokenize breaks an expression down into keyword, literal, identifier and punctuation tokens`,
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("decompose-shr", false, `split ">>" into two ">" tokens`)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		shr, err := cmd.Flags().GetBool("decompose-shr")
		if err != nil {
			return fmt.Errorf("failed to get decompose-shr flag: %w", err)
		}

		var result *driver.TokenizeResult
		lexErr := st.timer.Measure("tokenize", func() error {
			result, err = driver.Tokenize(args[0], shr, st.maxDiag)
			return err
		})

		// Выводим диагностику в stderr, если есть
		if result.Bag.Len() > 0 {
			opts := diagfmt.PrettyOpts{Color: st.color, ShowNotes: true}
			if err := diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.Source, opts); err != nil {
				return err
			}
		}
		if lexErr != nil {
			return fmt.Errorf("tokenization failed: %w", lexErr)
		}

		switch format {
		case "pretty":
			return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
		case "json":
			return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	return cmd
}
