package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"assertfmt/internal/config"
	"assertfmt/internal/highlight"
	"assertfmt/internal/observ"
	"assertfmt/internal/paths"
	"assertfmt/internal/report"
	"assertfmt/internal/syntax"
	"assertfmt/internal/trace"
)

// state is shared by every subcommand of one invocation.
type state struct {
	cfg     config.Config
	scheme  highlight.Scheme
	width   int
	color   bool
	timings bool
	maxDiag int
	model   *syntax.Model
	timer   *observ.Timer
	tracer  trace.Tracer
	cleanup func()
}

func (st *state) init(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	st.model = syntax.NewModel()
	st.timer = observ.NewTimer()
	st.timings, _ = flags.GetBool("timings")
	st.maxDiag, _ = flags.GetInt("max-diagnostics")

	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Load(cfgPath, ".")
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	st.cfg = cfg

	colorFlag, _ := flags.GetString("color")
	switch strings.ToLower(colorFlag) {
	case "on", "always":
		st.color = true
	case "off", "never":
		st.color = false
	case "auto", "":
		st.color = !color.NoColor && isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected: auto|on|off)", colorFlag)
	}
	color.NoColor = !st.color

	if st.scheme, err = pickScheme(cfg.Render.Scheme, st.color); err != nil {
		return err
	}
	st.width = cfg.Render.Width
	if !flags.Changed("width") && st.width == 0 {
		st.width = detectWidth()
	}

	cleanup, err := setupTracing(cmd, st)
	if err != nil {
		return err
	}
	st.cleanup = cleanup
	return nil
}

// applyFlags overlays explicitly set flags on the config file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("width") {
		cfg.Render.Width, _ = flags.GetInt("width")
	}
	for name, dst := range map[string]*string{
		"scheme":       &cfg.Render.Scheme,
		"path-mode":    &cfg.Render.PathMode,
		"trace-level":  &cfg.Trace.Level,
		"trace-mode":   &cfg.Trace.Mode,
		"trace-format": &cfg.Trace.Format,
		"trace":        &cfg.Trace.Output,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	// --trace без уровня включает phase
	if flags.Changed("trace") && !flags.Changed("trace-level") && strings.EqualFold(cfg.Trace.Level, "off") {
		cfg.Trace.Level = "phase"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

func pickScheme(name string, colored bool) (highlight.Scheme, error) {
	if !colored {
		return highlight.Blank, nil
	}
	if name == "" || strings.EqualFold(name, "auto") {
		switch strings.ToLower(os.Getenv("COLORTERM")) {
		case "truecolor", "24bit":
			return highlight.ANSIRGB, nil
		}
		return highlight.ANSIBasic, nil
	}
	return highlight.SchemeByName(name)
}

// detectWidth asks the terminal first, then $COLUMNS; 0 when neither knows.
func detectWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return 0
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (st *state) renderOptions() (report.Options, error) {
	mode, err := paths.ParseMode(st.cfg.Render.PathMode)
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		Scheme:    st.scheme,
		Width:     st.width,
		PathMode:  mode,
		Separator: st.cfg.Render.Separator,
		MaxDepth:  st.cfg.Resolve.MaxDepth,
		Tracer:    st.tracer,
	}, nil
}
