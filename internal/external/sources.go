package external

import (
	"context"
	"time"
)

// Source names an external provider.
type Source string

const (
	SourceCricket    Source = "cricket"
	SourceFootball   Source = "football"
	SourceScoreboard Source = "scoreboard"
)

// ParseSource accepts the pollable sources only.
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case SourceCricket, SourceFootball:
		return Source(s), true
	}
	return "", false
}

// LiveScore is a provider match normalized for the cache and socket events.
type LiveScore struct {
	ID          string     `json:"id"`
	Source      Source     `json:"source"`
	Title       string     `json:"title"`
	Competition string     `json:"competition,omitempty"`
	HomeTeam    string     `json:"home_team"`
	AwayTeam    string     `json:"away_team"`
	HomeScore   string     `json:"home_score"`
	AwayScore   string     `json:"away_score"`
	Status      string     `json:"status"`
	Venue       string     `json:"venue,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
}

// LiveFetcher returns a provider's current live matches.
type LiveFetcher interface {
	LiveScores(ctx context.Context) ([]LiveScore, error)
}
