package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"assertfmt/internal/driver"
	"assertfmt/internal/report"
)

func newRenderCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] <file|->",
		Short: "Render failure reports from captured check records",
		Long: `Render reads check records (json, msgpack or toml) and prints one report per
record, separated by a blank line`,
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().String("input-format", "auto", "record format (auto|json|msgpack|toml)")
	cmd.Flags().Int("jobs", 0, "max parallel renders (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse reports rendered by earlier runs")
	cmd.Flags().Bool("clear-cache", false, "drop the render cache before rendering")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("input-format")
		format, err := driver.ParseInputFormat(formatFlag)
		if err != nil {
			return err
		}
		jobs, _ := cmd.Flags().GetInt("jobs")
		useCache, _ := cmd.Flags().GetBool("cache")
		clearCache, _ := cmd.Flags().GetBool("clear-cache")

		var cache *driver.RenderCache
		if useCache || clearCache {
			if cache, err = driver.OpenRenderCache("assertfmt"); err != nil {
				return fmt.Errorf("render cache: %w", err)
			}
			if clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("render cache: %w", err)
				}
			}
			if !useCache {
				cache = nil
			}
		}

		var checks []report.Check
		if err := st.timer.Measure("load", func() error {
			checks, err = driver.LoadChecks(args[0], format)
			return err
		}); err != nil {
			return err
		}

		opts, err := st.renderOptions()
		if err != nil {
			return err
		}
		renderer := report.New(st.model, opts)

		var results []driver.RenderResult
		if err := st.timer.Measure("render", func() error {
			results, err = driver.RenderAll(cmd.Context(), checks, renderer, driver.RenderOptions{Jobs: jobs, Cache: cache})
			return err
		}); err != nil {
			return err
		}
		return st.timer.Measure("write", func() error {
			return writeReports(cmd.OutOrStdout(), results)
		})
	}
	return cmd
}

func writeReports(w io.Writer, results []driver.RenderResult) error {
	for i, res := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, res.Output); err != nil {
			return fmt.Errorf("write report %s: %w", strconv.Itoa(res.Index+1), err)
		}
	}
	return nil
}
