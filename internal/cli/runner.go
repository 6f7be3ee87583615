package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/entraops/internal/catalog"
	"github.com/idilsaglam/entraops/internal/checklist"
	"github.com/idilsaglam/entraops/internal/config"
	"github.com/idilsaglam/entraops/internal/logging"
	"github.com/idilsaglam/entraops/internal/model"
	"github.com/idilsaglam/entraops/internal/report"
	"github.com/idilsaglam/entraops/internal/tui"
	"github.com/idilsaglam/entraops/internal/ui"
)

// usageError marks errors that map to exit code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if !cmd.HasParent() {
		return usageError{fmt.Errorf("unknown subcommand: %s", args[0])}
	}
	return usageError{fmt.Errorf("%s takes no arguments, got %q", cmd.Name(), args[0])}
}

// app carries per-invocation state between cobra hooks and commands.
type app struct {
	stdout, stderr io.Writer

	// flags
	configPath string
	theme      string
	logFile    string
	verbose    bool

	cfg     config.Config
	log     *zap.Logger
	catalog model.Catalog

	// runDash is swapped in tests; the real one needs a terminal.
	runDash func(tui.Options) (tui.Model, error)
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, runDash: tui.Run}
	return a.run(args)
}

func (a *app) run(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err == nil {
		return 0
	}
	ui.Fail(a.stderr, ui.ThemeFor(a.cfg.Theme), err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(a.stderr)
		_ = root.Usage()
		return 2
	}
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "entraops",
		Short: "Entra ID security posture checklist",
		Long: `entraops is a self-assessment checklist for Microsoft Entra ID tenants.

Run without arguments to open the interactive dashboard. Completion state
lives only for the session; pass --done to pre-mark checks.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dash(nil)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ~/.entraops/config.yaml)")
	pf.StringVar(&a.theme, "theme", "", "appearance: dark or light")
	pf.StringVar(&a.logFile, "log-file", "", "write JSON logs to this file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.dashCmd(), a.lsCmd(), a.reportCmd(), a.scoreCmd())
	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("theme") {
		if !ui.ValidTheme(a.theme) {
			return usageError{fmt.Errorf("--theme must be dark or light, got %q", a.theme)}
		}
		cfg.Theme = a.theme
	}
	if a.logFile != "" {
		cfg.Logging.File = a.logFile
	}
	a.cfg = cfg

	a.log, err = logging.New(cfg.Logging.File, cfg.Logging.Level, a.verbose)
	if err != nil {
		return err
	}

	a.catalog = catalog.Default()
	if err := a.catalog.Validate(); err != nil {
		return fmt.Errorf("built-in catalog: %w", err)
	}
	a.log.Debug("start", zap.String("command", cmd.Name()), zap.String("config", path))
	return nil
}

// tracker seeds a completion set from --done. Unknown ids are kept, as the
// tracker does, and reported.
func (a *app) tracker(done []string) *checklist.Tracker {
	t := checklist.NewTracker()
	for _, id := range done {
		if t.IsComplete(id) {
			continue
		}
		t.Toggle(id)
		if !a.catalog.Has(id) {
			a.log.Warn("unknown check id", zap.String("id", id))
			fmt.Fprintln(a.stderr, ui.ThemeFor(a.cfg.Theme).Muted.Render(
				fmt.Sprintf("note: %q is not a known check; it does not count toward the score", id)))
		}
	}
	return t
}

func (a *app) dashCmd() *cobra.Command {
	var done []string
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dash(done)
		},
	}
	cmd.Flags().StringSliceVar(&done, "done", nil, "check ids to pre-mark as done")
	return cmd
}

func (a *app) dash(done []string) error {
	// Without a report file, printed reports are held until the alt screen
	// is gone and then written to stdout.
	var held bytes.Buffer
	m, err := a.runDash(tui.Options{
		Catalog: a.catalog,
		Tracker: a.tracker(done),
		Theme:   a.cfg.Theme,
		Printer: report.PrinterFor(a.cfg.Report.Out, &held),
		Logger:  a.log,
	})
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	if held.Len() > 0 {
		if _, err := held.WriteTo(a.stdout); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	st := checklist.ComputeStats(a.catalog, m.Tracker())
	ui.OK(a.stdout, ui.ThemeFor(a.cfg.Theme), fmt.Sprintf("score %d%% (%d/%d)", st.Rounded(), st.Completed, st.Total))
	return nil
}

func (a *app) lsCmd() *cobra.Command {
	var (
		done  []string
		query string
		group bool
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List checks",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.tracker(done)
			a.log.Debug("list", zap.String("query", query), zap.Bool("group", group))
			ui.Panel(a.stdout, ui.ThemeFor(a.cfg.Theme), listLines(ui.ThemeFor(a.cfg.Theme), a.catalog, t, query, group))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&done, "done", nil, "check ids to mark as done")
	cmd.Flags().StringVarP(&query, "query", "q", "", "only show checks whose text or description contains this")
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func (a *app) reportCmd() *cobra.Command {
	var (
		done []string
		out  string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the assessment report",
		Long:  "Print the assessment report as Markdown, or export it with --out (.md or .json).",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				out = a.cfg.Report.Out
			}
			r := checklist.BuildReport(a.catalog, a.tracker(done))
			if err := report.PrinterFor(out, a.stdout).Print(cmd.Context(), r); err != nil {
				if errors.Is(err, report.ErrUnsupportedFormat) {
					return usageError{err}
				}
				return err
			}
			a.log.Info("report printed", zap.String("report_id", r.ID), zap.String("out", out), zap.Float64("score", r.Score))
			if out != "" {
				ui.OK(a.stdout, ui.ThemeFor(a.cfg.Theme), "report written to "+out)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&done, "done", nil, "check ids to mark as done")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout (.md or .json)")
	return cmd
}

func (a *app) scoreCmd() *cobra.Command {
	var done []string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print the completion score",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := checklist.ComputeStats(a.catalog, a.tracker(done))
			fmt.Fprintf(a.stdout, "%d%% (%d/%d) %s\n", st.Rounded(), st.Completed, st.Total, st.Status())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&done, "done", nil, "check ids to mark as done")
	return cmd
}
