package config

import "time"

const (
	envEspnSiteBaseURL = "ESPN_SITE_API_BASE_URL"
	envEspnCoreBaseURL = "ESPN_CORE_API_BASE_URL"
	envEspnHTTPTimeout = "ESPN_HTTP_TIMEOUT"

	defaultEspnSiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/college-football"
	defaultEspnCoreBaseURL = "https://sports.core.api.espn.com/v2/sports/football/leagues/college-football"
)

// ESPNConfig controls how we talk to the ESPN site and core APIs.
type ESPNConfig struct {
	SiteBaseURL string
	CoreBaseURL string
	HTTPTimeout time.Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		SiteBaseURL: envOrDefault(envEspnSiteBaseURL, defaultEspnSiteBaseURL),
		CoreBaseURL: envOrDefault(envEspnCoreBaseURL, defaultEspnCoreBaseURL),
		HTTPTimeout: durationEnvOrDefault(envEspnHTTPTimeout, defaultHTTPTimeout),
	}
}
