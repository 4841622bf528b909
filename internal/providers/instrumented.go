package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/games"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/metrics"
)

const (
	EndpointScoreboard = "scoreboard"
	EndpointTeam       = "team"
	EndpointSummary    = "summary"
)

// instrumentedProvider wraps a DataProvider with per-endpoint metrics and
// debug logging.
type instrumentedProvider struct {
	inner    DataProvider
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewInstrumentedProvider decorates the given provider. Recorder and logger
// may be nil; both are nil-safe.
func NewInstrumentedProvider(inner DataProvider, recorder *metrics.Recorder, logger *slog.Logger) DataProvider {
	return &instrumentedProvider{
		inner:    inner,
		recorder: recorder,
		logger:   logger,
	}
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, date string) ([]ScoreboardEvent, error) {
	start := time.Now()
	events, err := p.inner.FetchScoreboard(ctx, date)
	p.observe(ctx, EndpointScoreboard, start, err, "date", date)
	return events, err
}

func (p *instrumentedProvider) FetchTeam(ctx context.Context, teamID string) (teams.TeamMeta, error) {
	start := time.Now()
	meta, err := p.inner.FetchTeam(ctx, teamID)
	p.observe(ctx, EndpointTeam, start, err, "team_id", teamID)
	return meta, err
}

func (p *instrumentedProvider) FetchEventStats(ctx context.Context, eventID string) (domaingames.StatsMap, error) {
	start := time.Now()
	stats, err := p.inner.FetchEventStats(ctx, eventID)
	p.observe(ctx, EndpointSummary, start, err, "event_id", eventID)
	return stats, err
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, start time.Time, err error, args ...any) {
	elapsed := time.Since(start)
	p.recorder.RecordFetchAttempt(endpoint, elapsed, err)
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
		args = append(args, "error", err)
	}
	args = append(args, "duration_ms", elapsed.Milliseconds())
	logWithEndpoint(ctx, p.logger, level, endpoint, "upstream fetch", args...)
}
