package cli

import (
	"fmt"
	"log/slog"

	"github.com/qwerty111-ops/power4-college-football-betting/internal/config"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/metrics"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers/espn"
	"github.com/qwerty111-ops/power4-college-football-betting/internal/providers/fixture"
)

// buildProvider selects the data provider named by configuration and wraps it
// with fetch instrumentation.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.DataProvider, error) {
	var inner providers.DataProvider
	switch cfg.Provider {
	case "", "espn":
		inner = espn.NewClient(espn.Config{
			SiteBaseURL: cfg.ESPN.SiteBaseURL,
			CoreBaseURL: cfg.ESPN.CoreBaseURL,
			HTTPTimeout: cfg.ESPN.HTTPTimeout,
		})
	case "fixture":
		inner = fixture.New()
	default:
		return nil, fmt.Errorf("unknown provider %q (expected espn or fixture)", cfg.Provider)
	}
	return providers.NewInstrumentedProvider(inner, recorder, logger), nil
}
