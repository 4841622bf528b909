package fixture

import (
	"context"

	domaingames "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/games"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers"
)

// Provider returns a static scoreboard useful for local testing and for
// exercising the pipeline without hitting ESPN. One game involves a Power-4
// team, one does not, and one team requires the fallback lookup.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchScoreboard returns a deterministic pair of events.
func (p *Provider) FetchScoreboard(ctx context.Context, date string) ([]providers.ScoreboardEvent, error) {
	_ = ctx
	_ = date

	over := 52.5
	spread := -7.5
	details := "UGA -7.5"
	favorite := "61"

	return []providers.ScoreboardEvent{
		{
			ID:      "fixture-1",
			Date:    "2025-09-06T19:30Z",
			Network: "ABC",
			Odds: domaingames.Odds{
				Details:   &details,
				OverUnder: &over,
				Spread:    &spread,
				Favorite:  &favorite,
			},
			Competitors: []providers.Competitor{
				{
					TeamID:   "61",
					HomeAway: "home",
					Embedded: teams.TeamMeta{GroupID: intPtr(8), Name: "Georgia Bulldogs", Abbreviation: "UGA"},
				},
				{
					// No embedded conference; resolved via FetchTeam.
					TeamID:   "2655",
					HomeAway: "away",
					Embedded: teams.TeamMeta{Name: "Tulane Green Wave", Abbreviation: "TULN"},
				},
			},
		},
		{
			ID:      "fixture-2",
			Date:    "2025-09-06T23:00Z",
			Network: "",
			Odds:    domaingames.Odds{},
			Competitors: []providers.Competitor{
				{
					TeamID:   "2117",
					HomeAway: "home",
					Embedded: teams.TeamMeta{GroupID: intPtr(12), Name: "UCF Knights", Abbreviation: "UCF"},
				},
				{
					TeamID:   "2309",
					HomeAway: "away",
					Embedded: teams.TeamMeta{GroupID: intPtr(18), Name: "Kent State Golden Flashes", Abbreviation: "KENT"},
				},
			},
		},
	}, nil
}

// FetchTeam returns deterministic metadata for the fixture teams.
func (p *Provider) FetchTeam(ctx context.Context, teamID string) (teams.TeamMeta, error) {
	_ = ctx
	switch teamID {
	case "2655":
		return teams.TeamMeta{GroupID: intPtr(151), Name: "Tulane Green Wave", Abbreviation: "TULN"}, nil
	default:
		return teams.TeamMeta{}, nil
	}
}

// FetchEventStats returns deterministic stats for the qualifying fixture game.
func (p *Provider) FetchEventStats(ctx context.Context, eventID string) (domaingames.StatsMap, error) {
	_ = ctx
	if eventID != "fixture-1" {
		return domaingames.StatsMap{}, nil
	}
	return domaingames.StatsMap{
		"61":   {"totalYards": 412, "turnovers": 1},
		"2655": {"totalYards": 287, "turnovers": 2},
	}, nil
}

func intPtr(v int) *int { return &v }
