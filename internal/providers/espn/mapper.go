package espn

import (
	"strconv"

	domaingames "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/games"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers"
)

func mapScoreboard(resp scoreboardResponse) []providers.ScoreboardEvent {
	events := make([]providers.ScoreboardEvent, 0, len(resp.Events))
	for _, ev := range resp.Events {
		mapped, ok := mapEvent(ev)
		if !ok {
			continue
		}
		events = append(events, mapped)
	}
	return events
}

// mapEvent normalizes one scoreboard event. Events without a competition
// carry nothing usable and are dropped.
func mapEvent(ev eventResponse) (providers.ScoreboardEvent, bool) {
	if len(ev.Competitions) == 0 {
		return providers.ScoreboardEvent{}, false
	}
	comp := ev.Competitions[0]

	competitors := make([]providers.Competitor, 0, len(comp.Competitors))
	for _, c := range comp.Competitors {
		competitors = append(competitors, mapCompetitor(c))
	}

	return providers.ScoreboardEvent{
		ID:          ev.ID,
		Date:        comp.Date,
		Network:     mapNetwork(comp.Broadcasts),
		Odds:        mapOdds(comp.Odds),
		Competitors: competitors,
	}, true
}

func mapCompetitor(c competitorResponse) providers.Competitor {
	embedded := teams.TeamMeta{
		Name:         firstNonEmpty(c.Team.DisplayName, c.Team.Name, c.Team.ShortDisplayName),
		Abbreviation: firstNonEmpty(c.Team.Abbreviation, c.Team.ShortDisplayName),
	}
	if c.Team.Logo != "" {
		embedded.Logo = strPtr(c.Team.Logo)
	}
	if groupID, err := strconv.Atoi(c.Team.ConferenceID); err == nil {
		embedded.GroupID = &groupID
	}

	return providers.Competitor{
		TeamID:   c.Team.ID,
		HomeAway: c.HomeAway,
		Embedded: embedded,
	}
}

// mapOdds extracts the first odds entry; an event without odds yields the
// all-null Odds object.
func mapOdds(list []oddsResponse) domaingames.Odds {
	if len(list) == 0 {
		return domaingames.Odds{}
	}
	first := list[0]

	odds := domaingames.Odds{
		OverUnder: first.OverUnder,
		Spread:    first.Spread,
	}
	if first.Details != "" {
		odds.Details = strPtr(first.Details)
	}
	if first.Team != nil && first.Team.ID != "" {
		odds.Favorite = strPtr(first.Team.ID)
	}
	return odds
}

func mapNetwork(broadcasts []broadcastResponse) string {
	if len(broadcasts) == 0 {
		return ""
	}
	return broadcasts[0].Media.ShortName
}

func mapTeamDetail(resp teamDetailResponse) teams.TeamMeta {
	meta := teams.TeamMeta{
		Name:         firstNonEmpty(resp.DisplayName, resp.Name, resp.ShortDisplayName),
		Abbreviation: firstNonEmpty(resp.Abbreviation, resp.ShortDisplayName),
	}
	if groupID, err := strconv.Atoi(resp.Groups.ID); err == nil {
		meta.GroupID = &groupID
	}
	for _, logo := range resp.Logos {
		if logo.Href != "" {
			meta.Logo = strPtr(logo.Href)
			break
		}
	}
	return meta
}

// mapStats builds the per-team stats map. Statistics whose display value is
// not numeric (dashes, "N/A") are omitted entirely.
func mapStats(resp summaryResponse) domaingames.StatsMap {
	stats := make(domaingames.StatsMap, len(resp.Boxscore.Teams))
	for _, t := range resp.Boxscore.Teams {
		teamStats := make(map[string]float64, len(t.Statistics))
		for _, stat := range t.Statistics {
			value, err := strconv.ParseFloat(stat.DisplayValue, 64)
			if err != nil {
				continue
			}
			teamStats[stat.Name] = value
		}
		stats[t.Team.ID] = teamStats
	}
	return stats
}

// firstNonEmpty returns the first non-empty value, or "" when all are empty.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func strPtr(v string) *string { return &v }
