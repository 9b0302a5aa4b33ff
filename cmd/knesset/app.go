package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/knesset/internal/config"
	"github.com/phrazzld/knesset/internal/events"
	"github.com/phrazzld/knesset/internal/platform/logger"
	"github.com/phrazzld/knesset/internal/platform/metrics"
	"github.com/phrazzld/knesset/internal/simulation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// options holds the flags shared by the subcommands.
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	metrics    bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Legislative assembly simulator",
		Long: `Knesset runs scripted sessions against a fixed-capacity assembly.

Members pledge support to laws based on their leanings and the laws' survey
results; the assembly enforces per-member caps and suggests the best law
for each member.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML, JSON or TOML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (json, text)")

	cmd.AddCommand(runCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func runCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.Context(), opts, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print the run's counters in prometheus text format after the report")

	return cmd
}

// initializeApp loads configuration, applies flag overrides and sets up
// structured logging.
func initializeApp(opts *options, logOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	var l *slog.Logger
	if logOut == os.Stderr {
		l, err = logger.Setup(cfg.Log)
	} else {
		l, err = logger.SetupWithWriter(cfg.Log, logOut)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Debug("configuration loaded",
		"law_capacity", cfg.Assembly.LawCapacity,
		"member_capacity", cfg.Assembly.MemberCapacity,
		"max_laws_per_member", cfg.Assembly.MaxLawsPerMember,
		"enthusiasm_threshold", cfg.Assembly.EnthusiasmThreshold)

	return cfg, l, nil
}

func runScenario(ctx context.Context, opts *options, path string, out, logOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, l, err := initializeApp(opts, logOut)
	if err != nil {
		return err
	}

	scenario, err := simulation.LoadScenario(path)
	if err != nil {
		return err
	}

	emitter := events.NewInMemoryEventEmitter(l)
	emitter.RegisterHandler(newEventLogger(l))

	reg := prometheus.NewRegistry()
	runner := simulation.NewRunner(cfg.Assembly.Params(), l, emitter, metrics.New(reg))
	report, err := runner.Run(ctx, scenario)
	if err != nil {
		return fmt.Errorf("failed to run scenario %s: %w", path, err)
	}

	l.Debug("events dispatched",
		"delivered", emitter.Delivered(),
		"failed", emitter.Failed())

	if err := report.WriteTable(out); err != nil {
		return err
	}
	if !opts.metrics {
		return nil
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return metrics.WriteText(out, reg)
}

// eventLogger writes every assembly event to the debug log.
type eventLogger struct {
	logger *slog.Logger
}

func newEventLogger(l *slog.Logger) *eventLogger {
	return &eventLogger{logger: l.With("component", "event_logger")}
}

// HandleEvent implements events.EventHandler.
func (h *eventLogger) HandleEvent(ctx context.Context, event *events.Event) error {
	h.logger.DebugContext(ctx, "event",
		"event_id", event.ID,
		"event_type", event.Type,
		"payload", string(event.Payload))
	return nil
}
