package espn

import "time"

const (
	defaultSiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/college-football"
	defaultCoreBaseURL = "https://sports.core.api.espn.com/v2/sports/football/leagues/college-football"
	defaultHTTPTimeout = 30 * time.Second
)
