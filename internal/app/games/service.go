package games

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domaingames "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/games"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/logging"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/metrics"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers"
)

// Service runs the build pipeline: fetch the scoreboard, resolve each
// competitor's conference, keep Power-4 games, enrich them with boxscore
// statistics and assemble the output records. Strictly sequential; a fatal
// error at any stage aborts the whole run.
type Service struct {
	provider providers.DataProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewService constructs a Service. Logger and recorder may be nil.
func NewService(provider providers.DataProvider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		recorder: recorder,
	}
}

// BuildGames produces the ordered game records for a YYYYMMDD date.
func (s *Service) BuildGames(ctx context.Context, date string) ([]domaingames.Game, error) {
	start := time.Now()
	built, err := s.buildGames(ctx, date)
	s.recorder.RecordBuildRun(time.Since(start), err)
	return built, err
}

func (s *Service) buildGames(ctx context.Context, date string) ([]domaingames.Game, error) {
	events, err := s.provider.FetchScoreboard(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}
	logging.Info(s.logger, "fetched scoreboard",
		logging.FieldDate, date, logging.FieldCount, len(events))

	built := make([]domaingames.Game, 0, len(events))
	for _, ev := range events {
		competitors := make([]teams.Team, 0, len(ev.Competitors))
		power4 := false
		for _, c := range ev.Competitors {
			meta := s.resolveTeam(ctx, c)
			team := teams.Team{
				ID:           c.TeamID,
				Name:         meta.Name,
				Abbreviation: meta.Abbreviation,
				GroupID:      meta.GroupID,
				Logo:         meta.Logo,
				HomeAway:     c.HomeAway,
			}
			competitors = append(competitors, team)
			if team.IsPower4() {
				power4 = true
			}
		}

		// The summary endpoint is never called for excluded events.
		if !power4 {
			logging.Debug(s.logger, "skipping non-power-4 event", logging.FieldEventID, ev.ID)
			continue
		}

		stats, err := s.provider.FetchEventStats(ctx, ev.ID)
		if err != nil {
			return nil, fmt.Errorf("fetching stats for event %s: %w", ev.ID, err)
		}

		built = append(built, assembleGame(ev, competitors, stats))
	}

	return built, nil
}

// assembleGame combines a normalized event, its resolved competitors and the
// per-team statistics into one output record. Pure, no I/O.
func assembleGame(ev providers.ScoreboardEvent, competitors []teams.Team, stats domaingames.StatsMap) domaingames.Game {
	if stats == nil {
		stats = domaingames.StatsMap{}
	}
	return domaingames.Game{
		ID:          ev.ID,
		Date:        ev.Date,
		Network:     ev.Network,
		Odds:        ev.Odds,
		Competitors: competitors,
		Stats:       stats,
	}
}
