package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	appgames "github.com/qwerty111-ops/power4-college-football-betting/internal/app/games"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/config"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/dataset"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/logging"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/metrics"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/timeutil"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDate     string
	flagOutput   string
	flagProvider string
	flagVerbose  bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-data",
		Short: "Build the weekly Power-4 college football betting dataset",
		Long: `Fetches the ESPN college football scoreboard for a given Saturday,
keeps games involving at least one Power-4 conference team, enriches them
with betting odds and boxscore statistics, and writes the result as JSON.`,
		SilenceUsage: true,
		RunE:         runUpdate,
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "Scoreboard date as YYYYMMDD (default: next Saturday)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Dataset output path (default: data/games.json)")
	cmd.Flags().StringVar(&flagProvider, "provider", "", "Data provider: espn or fixture (default: espn)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagOutput != "" {
		cfg.Output.Path = flagOutput
	}
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}

	if flagDate != "" {
		if _, err := timeutil.ParseDate(flagDate); err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYYMMDD", flagDate)
		}
	}

	level := "info"
	if flagVerbose {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{
		Level:   level,
		Service: "update-data",
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logging.Warn(logger, "telemetry shutdown failed", "error", err)
		}
	}()

	provider, err := buildProvider(cfg, logger, recorder)
	if err != nil {
		return err
	}

	date := timeutil.ResolveDate(flagDate, time.Now)
	logging.Info(logger, "building dataset",
		logging.FieldDate, date,
		logging.FieldPath, cfg.Output.Path,
		"provider", cfg.Provider)

	start := time.Now()
	svc := appgames.NewService(provider, logger, recorder)
	games, err := svc.BuildGames(ctx, date)
	if err != nil {
		return err
	}

	if err := dataset.NewWriter(cfg.Output.Path).WriteGames(date, games); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	logging.Info(logger, "dataset written",
		logging.FieldCount, len(games),
		logging.FieldPath, cfg.Output.Path,
		logging.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
