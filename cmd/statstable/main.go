// statstable renders per-file build statistics as a ranked, fixed-width table.
//
// Usage:
//
//	statstable < liquid-stats.json
//	statstable -n 20 --format json < liquid-stats.yaml
//	jekyll-profile-report | statstable --query '.liquid.stats'
//
// The input is a JSON or YAML mapping of name -> {count, bytes, time}.
//
// Output formats:
//
//	text      — plain ASCII table (default when piped)
//	terminal  — the same table, colored (default when TTY)
//	json      — structured JSON for automation
//	yaml      — the JSON document as YAML
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/statstable/internal/config"
	"github.com/dkoosis/statstable/internal/logging"
	"github.com/dkoosis/statstable/internal/version"
	"github.com/dkoosis/statstable/pkg/mapper"
	"github.com/dkoosis/statstable/pkg/pattern"
	"github.com/dkoosis/statstable/pkg/render"
	"github.com/dkoosis/statstable/pkg/stats"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	// cobra falls back to os.Args on a nil slice.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "statstable: %v\n", err)
		return 2
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags config.CliFlags

	cmd := &cobra.Command{
		Use:           "statstable [flags] < stats.json",
		Short:         "Render per-file build statistics as a ranked table",
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			flags.MaxRowsSet = f.Changed("max-rows")
			flags.FormatSet = f.Changed("format")
			flags.ThemeSet = f.Changed("theme")
			flags.QuerySet = f.Changed("query")
			flags.DebugSet = f.Changed("debug")
			flags.LogFormatSet = f.Changed("log-format")

			setupLogging(flags.LogFormat, flags.Debug, stderr)
			resolved, err := config.ResolveConfig(flags)
			if err != nil {
				return err
			}
			setupLogging(resolved.LogFormat, resolved.Debug, stderr)
			slog.Debug("resolved config",
				"max_rows", resolved.MaxRows, "max_rows_source", resolved.MaxRowsSource,
				"format", resolved.Format, "format_source", resolved.FormatSource,
				"theme", resolved.Theme, "theme_source", resolved.ThemeSource,
				"query", resolved.Query,
				"log_format", resolved.LogFormat, "log_format_source", resolved.LogFormatSource)

			return execute(resolved, stdin, stdout)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(version.String() + "\n")

	f := cmd.Flags()
	f.StringVar(&flags.ConfigPath, "config", "", "Config file (default: ./.statstable.yaml, then the user config dir)")
	f.IntVarP(&flags.MaxRows, "max-rows", "n", config.DefaultMaxRows, "Maximum number of data rows")
	f.StringVar(&flags.Format, "format", config.DefaultFormat, "Output format: auto, text, terminal, json, yaml")
	f.StringVar(&flags.Theme, "theme", config.DefaultTheme, "Terminal theme: default, orca, mono")
	f.StringVar(&flags.Query, "query", "", "jq expression selecting the stats mapping inside the input")
	f.BoolVar(&flags.Debug, "debug", false, "Log debug information to stderr")
	f.StringVar(&flags.LogFormat, "log-format", config.DefaultLogFormat, "Log format on stderr: text, json")
	return cmd
}

func setupLogging(format string, debug bool, w io.Writer) {
	if format == "json" {
		logging.SetupJSON(debug, w)
		return
	}
	logging.Setup(debug, w)
}

// execute reads the stats document, builds the table and writes it.
func execute(cfg *config.ResolvedConfig, stdin io.Reader, stdout io.Writer) error {
	input, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	doc, err := stats.ParseDocument(input)
	if errors.Is(err, stats.ErrEmptyInput) {
		return errors.New("no input on stdin")
	}
	if err != nil {
		return err
	}
	doc, err = stats.Select(doc, cfg.Query)
	if err != nil {
		return err
	}
	m, err := stats.FromDocument(doc)
	if err != nil {
		return err
	}
	slog.Debug("decoded stats", "entries", len(m))

	tbl, err := mapper.FromStats(m, cfg.MaxRows)
	if err != nil {
		return err
	}

	mode := resolveFormat(cfg.Format, stdout)
	slog.Debug("rendering", "format", mode, "rows", len(tbl.Rows))
	_, err = fmt.Fprint(stdout, selectRenderer(mode, cfg.Theme, stdout).Render([]pattern.Pattern{tbl}))
	return err
}

func selectRenderer(mode, themeName string, w io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "yaml":
		return render.NewYAML()
	case "terminal":
		return render.NewTerminal(render.ThemeByName(themeName), termWidth(w))
	default:
		return render.NewText()
	}
}

// resolveFormat maps "auto" to terminal on a TTY and text otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if isTTYWriter(w) {
		return "terminal"
	}
	return "text"
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
