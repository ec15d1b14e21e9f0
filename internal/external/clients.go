package external

import (
	"time"

	"github.com/DhavalSuthar-24/livescore/config"
)

// Clients bundles the three provider clients. Disabled providers answer ErrProviderDisabled.
type Clients struct {
	Cricket    *CricketClient
	Football   *FootballClient
	Scoreboard *ScoreboardClient
}

func NewClients(p config.Providers) *Clients {
	timeout := time.Duration(p.TimeoutSeconds) * time.Second
	return &Clients{
		Cricket:    NewCricketClient(p.Cricket.BaseURL, p.Cricket.APIKey, p.Cricket.Enabled, timeout),
		Football:   NewFootballClient(p.Football.BaseURL, p.Football.APIKey, p.Football.Enabled, timeout),
		Scoreboard: NewScoreboardClient(p.Scoreboard.BaseURL, p.Scoreboard.APIKey, p.Scoreboard.Enabled, timeout),
	}
}

// LiveFetchers returns the sources the poller should query.
func (c *Clients) LiveFetchers(p config.Providers) map[Source]LiveFetcher {
	fetchers := make(map[Source]LiveFetcher)
	if p.Cricket.Pollable() {
		fetchers[SourceCricket] = c.Cricket
	}
	if p.Football.Pollable() {
		fetchers[SourceFootball] = c.Football
	}
	return fetchers
}
