package games

import "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"

// Odds captures the first betting line attached to a competition. Every field
// is nullable; an event without odds entries serializes as an all-null object.
type Odds struct {
	Details   *string  `json:"details"`
	OverUnder *float64 `json:"overUnder"`
	Spread    *float64 `json:"spread"`
	Favorite  *string  `json:"favorite"`
}

// StatsMap maps team id to a map of statistic name to numeric value. Keys are
// exactly the team ids present in the event's summary payload.
type StatsMap map[string]map[string]float64

// Game is the canonical output record, one per qualifying event. Immutable
// once assembled; its lifecycle ends at serialization.
type Game struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Network     string       `json:"network"`
	Odds        Odds         `json:"odds"`
	Competitors []teams.Team `json:"competitors"`
	Stats       StatsMap     `json:"stats"`
}
