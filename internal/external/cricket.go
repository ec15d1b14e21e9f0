package external

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	cricketCurrentMatches = "currentMatches"
	cricketMatchInfo      = "match_info"
	cricketPlayers        = "players"
	cricketPlayerInfo     = "players_info"
)

// CricketClient talks to the cricapi v1 API. The key travels as a query parameter.
type CricketClient struct {
	*BaseClient
}

func NewCricketClient(baseURL, apiKey string, enabled bool, timeout time.Duration) *CricketClient {
	c := &CricketClient{BaseClient: NewBaseClient(baseURL, timeout)}
	c.SetQueryParam("apikey", apiKey)
	c.SetQueryParam("offset", "0")
	c.SetEnabled(enabled && apiKey != "")
	return c
}

type cricketEnvelope[T any] struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
	Data   T      `json:"data"`
}

type CricketScore struct {
	Runs    int     `json:"r"`
	Wickets int     `json:"w"`
	Overs   float64 `json:"o"`
	Inning  string  `json:"inning"`
}

type CricketMatch struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	MatchType    string         `json:"matchType"`
	Status       string         `json:"status"`
	Venue        string         `json:"venue"`
	Date         string         `json:"date"`
	DateTimeGMT  string         `json:"dateTimeGMT"`
	Teams        []string       `json:"teams"`
	Score        []CricketScore `json:"score"`
	MatchStarted bool           `json:"matchStarted"`
	MatchEnded   bool           `json:"matchEnded"`
}

type CricketPlayerRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type CricketPlayer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DateOfBirth  string `json:"dateOfBirth"`
	Role         string `json:"role"`
	BattingStyle string `json:"battingStyle"`
	BowlingStyle string `json:"bowlingStyle"`
	PlaceOfBirth string `json:"placeOfBirth"`
	Country      string `json:"country"`
	PlayerImg    string `json:"playerImg"`
}

func cricketGet[T any](ctx context.Context, c *CricketClient, endpoint string, params url.Values) (T, error) {
	var env cricketEnvelope[T]
	if err := c.getJSON(ctx, endpoint, params, &env); err != nil {
		return env.Data, fmt.Errorf("cricket %s: %w", endpoint, err)
	}
	if env.Status != "" && env.Status != "success" {
		return env.Data, fmt.Errorf("cricket %s: %s %s", endpoint, env.Status, env.Reason)
	}
	return env.Data, nil
}

func (c *CricketClient) CurrentMatches(ctx context.Context) ([]CricketMatch, error) {
	return cricketGet[[]CricketMatch](ctx, c, cricketCurrentMatches, nil)
}

func (c *CricketClient) MatchInfo(ctx context.Context, id string) (*CricketMatch, error) {
	m, err := cricketGet[*CricketMatch](ctx, c, cricketMatchInfo, url.Values{"id": {id}})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (c *CricketClient) SearchPlayers(ctx context.Context, name string) ([]CricketPlayerRef, error) {
	return cricketGet[[]CricketPlayerRef](ctx, c, cricketPlayers, url.Values{"search": {name}})
}

func (c *CricketClient) PlayerInfo(ctx context.Context, id string) (*CricketPlayer, error) {
	p, err := cricketGet[*CricketPlayer](ctx, c, cricketPlayerInfo, url.Values{"id": {id}})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// LiveScores reports started, unfinished matches.
func (c *CricketClient) LiveScores(ctx context.Context) ([]LiveScore, error) {
	matches, err := c.CurrentMatches(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LiveScore, 0, len(matches))
	for _, m := range matches {
		if !m.MatchStarted || m.MatchEnded {
			continue
		}
		out = append(out, m.toLiveScore())
	}
	return out, nil
}

func (m CricketMatch) toLiveScore() LiveScore {
	ls := LiveScore{
		ID:          m.ID,
		Source:      SourceCricket,
		Title:       m.Name,
		Competition: m.MatchType,
		Status:      m.Status,
		Venue:       m.Venue,
	}
	if len(m.Teams) > 0 {
		ls.HomeTeam = m.Teams[0]
		ls.HomeScore = inningsFor(m.Score, m.Teams[0])
	}
	if len(m.Teams) > 1 {
		ls.AwayTeam = m.Teams[1]
		ls.AwayScore = inningsFor(m.Score, m.Teams[1])
	}
	if t, err := time.Parse("2006-01-02T15:04:05", m.DateTimeGMT); err == nil {
		ls.StartTime = &t
	}
	return ls
}

// inningsFor formats a team's innings as "187/4 (20)", joining multiple innings with " & ".
func inningsFor(scores []CricketScore, team string) string {
	var parts []string
	for _, s := range scores {
		if !strings.HasPrefix(strings.ToLower(s.Inning), strings.ToLower(team)) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d/%d (%g)", s.Runs, s.Wickets, s.Overs))
	}
	return strings.Join(parts, " & ")
}
