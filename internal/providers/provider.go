package providers

import (
	"context"

	domaingames "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/games"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"
)

// Competitor is one side of a scoreboard event. Embedded carries whatever team
// fields the scoreboard payload itself supplied; a nil Embedded.GroupID means
// the conference id was missing or unparseable and a secondary lookup is needed.
type Competitor struct {
	TeamID   string
	HomeAway string
	Embedded teams.TeamMeta
}

// ScoreboardEvent is one game on the scoreboard, normalized from the upstream
// payload. Competitors preserve payload order.
type ScoreboardEvent struct {
	ID          string
	Date        string
	Network     string
	Odds        domaingames.Odds
	Competitors []Competitor
}

// ScoreboardProvider fetches the normalized scoreboard for a YYYYMMDD date.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, date string) ([]ScoreboardEvent, error)
}

// TeamProvider fetches per-team metadata, used as the fallback when the
// scoreboard payload omits conference membership.
type TeamProvider interface {
	FetchTeam(ctx context.Context, teamID string) (teams.TeamMeta, error)
}

// StatsProvider fetches per-team numeric statistics for a single event.
type StatsProvider interface {
	FetchEventStats(ctx context.Context, eventID string) (domaingames.StatsMap, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScoreboardProvider
	TeamProvider
	StatsProvider
}
