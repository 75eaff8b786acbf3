package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"assertfmt/internal/paths"
)

func newPathsCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths [flags] <path>...",
		Short: "Shorten file paths the way stack traces print them",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.Flags().String("mode", "", "path mode (full|disambiguated|basename); defaults to the configured mode")
	cmd.Flags().Bool("windows", false, `treat '\' as a separator too`)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		modeFlag, err := cmd.Flags().GetString("mode")
		if err != nil {
			return fmt.Errorf("failed to get mode flag: %w", err)
		}
		if modeFlag == "" {
			modeFlag = st.cfg.Render.PathMode
		}
		mode, err := paths.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		windows, _ := cmd.Flags().GetBool("windows")

		h, err := paths.HandlerByMode(mode, paths.Options{Windows: windows})
		if err != nil {
			return err
		}
		for _, p := range args {
			if err := h.Add(p); err != nil {
				return err
			}
		}
		if err := h.Finalize(); err != nil {
			return err
		}
		for _, p := range args {
			short, err := h.Resolve(p)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), short); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}
