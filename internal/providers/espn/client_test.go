package espn

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers"
)

const scoreboardFixture = `{
	"events": [
		{
			"id": "401628455",
			"date": "2025-09-06T19:30Z",
			"competitions": [
				{
					"date": "2025-09-06T19:30Z",
					"competitors": [
						{
							"homeAway": "home",
							"team": {
								"id": "61",
								"conferenceId": "8",
								"displayName": "Georgia Bulldogs",
								"abbreviation": "UGA",
								"logo": "https://a.espncdn.com/i/teamlogos/ncaa/500/61.png"
							}
						},
						{
							"homeAway": "away",
							"team": {
								"id": "2306",
								"displayName": "Kansas Jayhawks",
								"abbreviation": "KU"
							}
						}
					],
					"odds": [
						{
							"details": "UGA -7.5",
							"overUnder": 52.5,
							"spread": -7.5,
							"team": { "id": "61" }
						}
					],
					"broadcasts": [
						{ "media": { "shortName": "ABC" } }
					]
				}
			]
		},
		{
			"id": "401628999",
			"date": "2025-09-06T16:00Z",
			"competitions": []
		}
	]
}`

func TestFetchScoreboardHitsAPIAndMapsResponse(t *testing.T) {
	var capturedPath string
	var capturedQuery string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		capturedQuery = req.URL.RawQuery
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(scoreboardFixture)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		SiteBaseURL: "http://example.com/site",
		HTTPClient:  &http.Client{Transport: rt},
	})

	events, err := client.FetchScoreboard(context.Background(), "20250906")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedPath != "/site/scoreboard" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	q, err := url.ParseQuery(capturedQuery)
	if err != nil {
		t.Fatalf("failed parsing query %s: %v", capturedQuery, err)
	}
	if q.Get("dates") != "20250906" {
		t.Fatalf("expected dates=20250906, got %s", q.Get("dates"))
	}

	// The competition-less event is dropped during mapping.
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.ID != "401628455" || ev.Date != "2025-09-06T19:30Z" {
		t.Fatalf("unexpected event identity %+v", ev)
	}
	if ev.Network != "ABC" {
		t.Fatalf("unexpected network %s", ev.Network)
	}
	if len(ev.Competitors) != 2 {
		t.Fatalf("expected 2 competitors, got %d", len(ev.Competitors))
	}

	home := ev.Competitors[0]
	if home.TeamID != "61" || home.HomeAway != "home" {
		t.Fatalf("unexpected home competitor %+v", home)
	}
	if home.Embedded.GroupID == nil || *home.Embedded.GroupID != 8 {
		t.Fatalf("expected embedded group 8, got %v", home.Embedded.GroupID)
	}

	away := ev.Competitors[1]
	if away.Embedded.GroupID != nil {
		t.Fatalf("expected no embedded group for away team, got %v", away.Embedded.GroupID)
	}

	if ev.Odds.Details == nil || *ev.Odds.Details != "UGA -7.5" {
		t.Fatalf("unexpected odds details %v", ev.Odds.Details)
	}
	if ev.Odds.Favorite == nil || *ev.Odds.Favorite != "61" {
		t.Fatalf("unexpected favorite %v", ev.Odds.Favorite)
	}
}

func TestFetchScoreboardHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("boom")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		SiteBaseURL: "http://example.com",
		HTTPClient:  &http.Client{Transport: rt},
	})

	_, err := client.FetchScoreboard(context.Background(), "20250906")
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
	fetchErr, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fetchErr.StatusCode != http.StatusBadGateway || fetchErr.Endpoint != providers.EndpointScoreboard {
		t.Fatalf("unexpected fetch error %+v", fetchErr)
	}
}

func TestFetchScoreboardHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{bad json")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		SiteBaseURL: "http://example.com",
		HTTPClient:  &http.Client{Transport: rt},
	})

	if _, err := client.FetchScoreboard(context.Background(), "20250906"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchTeamQueriesCoreAPI(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/core/teams/2306" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		q := req.URL.Query()
		if q.Get("lang") != "en" || q.Get("region") != "us" {
			t.Fatalf("unexpected query %s", req.URL.RawQuery)
		}
		body := `{
			"displayName": "Kansas Jayhawks",
			"abbreviation": "KU",
			"groups": { "id": "4" },
			"logos": [ { "href": "https://a.espncdn.com/i/teamlogos/ncaa/500/2306.png" } ]
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		CoreBaseURL: "http://example.com/core",
		HTTPClient:  &http.Client{Transport: rt},
	})

	meta, err := client.FetchTeam(context.Background(), "2306")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if meta.GroupID == nil || *meta.GroupID != 4 {
		t.Fatalf("expected group 4, got %v", meta.GroupID)
	}
	if meta.Name != "Kansas Jayhawks" || meta.Abbreviation != "KU" {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if meta.Logo == nil || !strings.Contains(*meta.Logo, "2306.png") {
		t.Fatalf("unexpected logo %v", meta.Logo)
	}
}

func TestFetchEventStatsParsesBoxscore(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/site/summary" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		if got := req.URL.Query().Get("event"); got != "401628455" {
			t.Fatalf("expected event id in query, got %s", got)
		}
		body := `{
			"boxscore": {
				"teams": [
					{
						"team": { "id": "61" },
						"statistics": [
							{ "name": "totalYards", "displayValue": "412" },
							{ "name": "turnovers", "displayValue": "N/A" },
							{ "name": "possessionTime", "displayValue": "32:45" }
						]
					},
					{
						"team": { "id": "2306" },
						"statistics": [
							{ "name": "totalYards", "displayValue": "377" }
						]
					}
				]
			}
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		SiteBaseURL: "http://example.com/site",
		HTTPClient:  &http.Client{Transport: rt},
	})

	stats, err := client.FetchEventStats(context.Background(), "401628455")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected stats for both teams, got %d", len(stats))
	}
	if got := stats["61"]["totalYards"]; got != 412 {
		t.Fatalf("expected totalYards 412, got %v", got)
	}
	if _, ok := stats["61"]["turnovers"]; ok {
		t.Fatal("expected non-numeric stat to be omitted")
	}
	if _, ok := stats["61"]["possessionTime"]; ok {
		t.Fatal("expected clock-style stat to be omitted")
	}
	if got := stats["2306"]["totalYards"]; got != 377 {
		t.Fatalf("expected totalYards 377, got %v", got)
	}
}

func TestFetchEventStatsWithEmptySummary(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		SiteBaseURL: "http://example.com",
		HTTPClient:  &http.Client{Transport: rt},
	})

	stats, err := client.FetchEventStats(context.Background(), "401")
	if err != nil {
		t.Fatalf("expected no error for missing boxscore, got %v", err)
	}
	if len(stats) != 0 {
		t.Fatalf("expected empty stats map, got %v", stats)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.siteBaseURL != defaultSiteBaseURL || c.coreBaseURL != defaultCoreBaseURL {
		t.Fatalf("expected default base urls, got %s / %s", c.siteBaseURL, c.coreBaseURL)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
