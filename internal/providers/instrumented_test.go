package providers

import (
	"context"
	"errors"
	"testing"

	domaingames "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/games"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/metrics"
)

type fakeProvider struct {
	scoreboardErr error
	teamErr       error
	statsErr      error
}

func (f *fakeProvider) FetchScoreboard(ctx context.Context, date string) ([]ScoreboardEvent, error) {
	return []ScoreboardEvent{{ID: "1"}}, f.scoreboardErr
}

func (f *fakeProvider) FetchTeam(ctx context.Context, teamID string) (teams.TeamMeta, error) {
	return teams.TeamMeta{Name: "Team"}, f.teamErr
}

func (f *fakeProvider) FetchEventStats(ctx context.Context, eventID string) (domaingames.StatsMap, error) {
	return domaingames.StatsMap{}, f.statsErr
}

func TestInstrumentedProviderRecordsPerEndpoint(t *testing.T) {
	rec := metrics.NewRecorder()
	provider := NewInstrumentedProvider(&fakeProvider{teamErr: errors.New("boom")}, rec, nil)

	if _, err := provider.FetchScoreboard(context.Background(), "20250906"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := provider.FetchTeam(context.Background(), "61"); err == nil {
		t.Fatal("expected team error to pass through")
	}
	if _, err := provider.FetchEventStats(context.Background(), "401"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.FetchCalls(EndpointScoreboard); got != 1 {
		t.Fatalf("expected 1 scoreboard call, got %d", got)
	}
	if got := rec.FetchErrors(EndpointTeam); got != 1 {
		t.Fatalf("expected 1 team error, got %d", got)
	}
	if got := rec.FetchCalls(EndpointSummary); got != 1 {
		t.Fatalf("expected 1 summary call, got %d", got)
	}
}

func TestInstrumentedProviderTolerateNilRecorderAndLogger(t *testing.T) {
	provider := NewInstrumentedProvider(&fakeProvider{}, nil, nil)
	if _, err := provider.FetchScoreboard(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
