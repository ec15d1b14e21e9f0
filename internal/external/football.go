package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// FootballClient talks to football-data.org v4. The key travels in X-Auth-Token.
type FootballClient struct {
	*BaseClient
}

func NewFootballClient(baseURL, apiKey string, enabled bool, timeout time.Duration) *FootballClient {
	c := &FootballClient{BaseClient: NewBaseClient(baseURL, timeout)}
	c.SetHeader("X-Auth-Token", apiKey)
	c.SetEnabled(enabled && apiKey != "")
	return c
}

type FootballTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type FootballScoreLine struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type FootballScore struct {
	Winner   string            `json:"winner"`
	Duration string            `json:"duration"`
	FullTime FootballScoreLine `json:"fullTime"`
	HalfTime FootballScoreLine `json:"halfTime"`
}

type FootballCompetition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type FootballMatch struct {
	ID          int                 `json:"id"`
	UTCDate     time.Time           `json:"utcDate"`
	Status      string              `json:"status"`
	Matchday    int                 `json:"matchday"`
	Stage       string              `json:"stage"`
	Venue       string              `json:"venue"`
	HomeTeam    FootballTeam        `json:"homeTeam"`
	AwayTeam    FootballTeam        `json:"awayTeam"`
	Score       FootballScore       `json:"score"`
	Competition FootballCompetition `json:"competition"`
}

type footballMatchesResponse struct {
	Matches []FootballMatch `json:"matches"`
}

type FootballPerson struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	DateOfBirth string       `json:"dateOfBirth"`
	Nationality string       `json:"nationality"`
	Position    string       `json:"position"`
	ShirtNumber *int         `json:"shirtNumber"`
	CurrentTeam FootballTeam `json:"currentTeam"`
}

func (c *FootballClient) LiveMatches(ctx context.Context) ([]FootballMatch, error) {
	var resp footballMatchesResponse
	if err := c.getJSON(ctx, "matches", url.Values{"status": {"LIVE"}}, &resp); err != nil {
		return nil, fmt.Errorf("football live matches: %w", err)
	}
	return resp.Matches, nil
}

// CompetitionMatches lists a competition's matches. params may carry
// status, matchday, dateFrom and dateTo filters.
func (c *FootballClient) CompetitionMatches(ctx context.Context, code string, params url.Values) ([]FootballMatch, error) {
	var resp footballMatchesResponse
	if err := c.getJSON(ctx, "competitions/"+url.PathEscape(code)+"/matches", params, &resp); err != nil {
		return nil, fmt.Errorf("football competition %s matches: %w", code, err)
	}
	return resp.Matches, nil
}

func (c *FootballClient) Person(ctx context.Context, id int) (*FootballPerson, error) {
	var p FootballPerson
	if err := c.getJSON(ctx, "persons/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, fmt.Errorf("football person %d: %w", id, err)
	}
	return &p, nil
}

func (c *FootballClient) LiveScores(ctx context.Context) ([]LiveScore, error) {
	matches, err := c.LiveMatches(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LiveScore, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.toLiveScore())
	}
	return out, nil
}

func (m FootballMatch) toLiveScore() LiveScore {
	start := m.UTCDate
	return LiveScore{
		ID:          strconv.Itoa(m.ID),
		Source:      SourceFootball,
		Title:       m.HomeTeam.Name + " vs " + m.AwayTeam.Name,
		Competition: m.Competition.Name,
		HomeTeam:    m.HomeTeam.Name,
		AwayTeam:    m.AwayTeam.Name,
		HomeScore:   goals(m.Score.FullTime.Home),
		AwayScore:   goals(m.Score.FullTime.Away),
		Status:      m.Status,
		Venue:       m.Venue,
		StartTime:   &start,
	}
}

func goals(n *int) string {
	if n == nil {
		return "0"
	}
	return strconv.Itoa(*n)
}
