package games

import (
	"context"

	"github.com/qwerty111-ops/power4-college-football-betting/internal/domain/teams"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/logging"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers"
)

// resolveTeam performs the two-tier team resolution. When the scoreboard
// payload already carries a parseable conference id the embedded fields are
// used as-is and no lookup happens. Otherwise the core API is consulted and
// its non-empty fields override the embedded ones. A failed lookup degrades
// to the embedded fields alone instead of aborting the run.
func (s *Service) resolveTeam(ctx context.Context, c providers.Competitor) teams.TeamMeta {
	if c.Embedded.GroupID != nil {
		return c.Embedded
	}

	fallback, err := s.provider.FetchTeam(ctx, c.TeamID)
	if err != nil {
		logging.Warn(s.logger, "team lookup failed, keeping scoreboard fields",
			logging.FieldTeamID, c.TeamID, "error", err)
		fallback = teams.TeamMeta{}
	}

	return c.Embedded.MergeFallback(fallback)
}
