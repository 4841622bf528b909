package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domaingames "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/games"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers"
)

// Config controls how the ESPN client reaches the upstream APIs.
type Config struct {
	SiteBaseURL string
	CoreBaseURL string
	HTTPClient  *http.Client
	HTTPTimeout time.Duration
}

// Client fetches college-football data from ESPN's site and core APIs and
// maps it to normalized provider shapes. One request per call, no retries;
// callers decide whether a failure is fatal.
type Client struct {
	siteBaseURL string
	coreBaseURL string
	httpClient  httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		siteBaseURL: normalizeBaseURL(cfg.SiteBaseURL, defaultSiteBaseURL),
		coreBaseURL: normalizeBaseURL(cfg.CoreBaseURL, defaultCoreBaseURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient, cfg.HTTPTimeout),
	}
}

// FetchScoreboard retrieves all events for a YYYYMMDD date.
func (c *Client) FetchScoreboard(ctx context.Context, date string) ([]providers.ScoreboardEvent, error) {
	url := fmt.Sprintf("%s/scoreboard?dates=%s", c.siteBaseURL, date)

	var payload scoreboardResponse
	if err := c.getJSON(ctx, providers.EndpointScoreboard, url, &payload); err != nil {
		return nil, err
	}
	return mapScoreboard(payload), nil
}

// FetchTeam retrieves team metadata from the core API, used as the fallback
// when the scoreboard payload omits conference membership.
func (c *Client) FetchTeam(ctx context.Context, teamID string) (teams.TeamMeta, error) {
	url := fmt.Sprintf("%s/teams/%s?lang=en&region=us", c.coreBaseURL, teamID)

	var payload teamDetailResponse
	if err := c.getJSON(ctx, providers.EndpointTeam, url, &payload); err != nil {
		return teams.TeamMeta{}, err
	}
	return mapTeamDetail(payload), nil
}

// FetchEventStats retrieves the event summary and extracts per-team numeric
// statistics from its boxscore section.
func (c *Client) FetchEventStats(ctx context.Context, eventID string) (domaingames.StatsMap, error) {
	url := fmt.Sprintf("%s/summary?event=%s", c.siteBaseURL, eventID)

	var payload summaryResponse
	if err := c.getJSON(ctx, providers.EndpointSummary, url, &payload); err != nil {
		return nil, err
	}
	return mapStats(payload), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.FetchError{Endpoint: endpoint, URL: url, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.FetchError{
			Endpoint:   endpoint,
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    "unexpected status: " + strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &providers.FetchError{Endpoint: endpoint, URL: url, Message: "decoding response: " + err.Error()}
	}
	return nil
}
