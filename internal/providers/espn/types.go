package espn

// Wire types for the three ESPN payloads we consume. Only the fields the
// pipeline reads are declared; everything else in the responses is ignored.

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Date        string               `json:"date"`
	Competitors []competitorResponse `json:"competitors"`
	Odds        []oddsResponse       `json:"odds"`
	Broadcasts  []broadcastResponse  `json:"broadcasts"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	ID               string `json:"id"`
	ConferenceID     string `json:"conferenceId"`
	DisplayName      string `json:"displayName"`
	Name             string `json:"name"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Logo             string `json:"logo"`
}

type oddsResponse struct {
	Details   string            `json:"details"`
	OverUnder *float64          `json:"overUnder"`
	Spread    *float64          `json:"spread"`
	Team      *oddsTeamResponse `json:"team"`
}

type oddsTeamResponse struct {
	ID string `json:"id"`
}

type broadcastResponse struct {
	Media mediaResponse `json:"media"`
}

type mediaResponse struct {
	ShortName string `json:"shortName"`
}

// Core API team detail (the fallback lookup).

type teamDetailResponse struct {
	DisplayName      string         `json:"displayName"`
	Name             string         `json:"name"`
	ShortDisplayName string         `json:"shortDisplayName"`
	Abbreviation     string         `json:"abbreviation"`
	Groups           groupsResponse `json:"groups"`
	Logos            []logoResponse `json:"logos"`
}

type groupsResponse struct {
	ID string `json:"id"`
}

type logoResponse struct {
	Href string `json:"href"`
}

// Event summary (boxscore statistics).

type summaryResponse struct {
	Boxscore boxscoreResponse `json:"boxscore"`
}

type boxscoreResponse struct {
	Teams []boxscoreTeamResponse `json:"teams"`
}

type boxscoreTeamResponse struct {
	Team       teamRefResponse     `json:"team"`
	Statistics []statisticResponse `json:"statistics"`
}

type teamRefResponse struct {
	ID string `json:"id"`
}

type statisticResponse struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}
