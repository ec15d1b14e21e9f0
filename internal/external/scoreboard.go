package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ScoreboardClient talks to TheSportsDB v1. The key is a path segment.
type ScoreboardClient struct {
	*BaseClient
}

func NewScoreboardClient(baseURL, apiKey string, enabled bool, timeout time.Duration) *ScoreboardClient {
	if apiKey == "" {
		apiKey = "3"
	}
	c := &ScoreboardClient{BaseClient: NewBaseClient(strings.TrimRight(baseURL, "/")+"/"+apiKey, timeout)}
	c.SetEnabled(enabled)
	return c
}

type ScoreboardSport struct {
	ID          string `json:"idSport"`
	Name        string `json:"strSport"`
	Format      string `json:"strFormat"`
	Thumb       string `json:"strSportThumb"`
	Description string `json:"strSportDescription"`
}

type ScoreboardLeague struct {
	ID            string `json:"idLeague"`
	Name          string `json:"strLeague"`
	Sport         string `json:"strSport"`
	Country       string `json:"strCountry"`
	CurrentSeason string `json:"strCurrentSeason"`
	Badge         string `json:"strBadge"`
}

type ScoreboardVenue struct {
	ID        string `json:"idVenue"`
	Name      string `json:"strVenue"`
	Location  string `json:"strLocation"`
	Country   string `json:"strCountry"`
	Capacity  string `json:"intCapacity"`
	Thumb     string `json:"strThumb"`
	Latitude  string `json:"strLatitude"`
	Longitude string `json:"strLongitude"`
}

// CapacityInt parses the capacity string; unknown is 0.
func (v ScoreboardVenue) CapacityInt() int {
	n, _ := strconv.Atoi(strings.ReplaceAll(v.Capacity, ",", ""))
	return n
}

type ScoreboardEvent struct {
	ID        string  `json:"idEvent"`
	Name      string  `json:"strEvent"`
	League    string  `json:"strLeague"`
	HomeTeam  string  `json:"strHomeTeam"`
	AwayTeam  string  `json:"strAwayTeam"`
	HomeScore *string `json:"intHomeScore"`
	AwayScore *string `json:"intAwayScore"`
	Date      string  `json:"dateEvent"`
	Time      string  `json:"strTime"`
	Status    string  `json:"strStatus"`
	Venue     string  `json:"strVenue"`
}

type ScoreboardPlayer struct {
	ID          string `json:"idPlayer"`
	Name        string `json:"strPlayer"`
	Team        string `json:"strTeam"`
	Sport       string `json:"strSport"`
	Nationality string `json:"strNationality"`
	DateBorn    string `json:"dateBorn"`
	Position    string `json:"strPosition"`
	Description string `json:"strDescriptionEN"`
	Thumb       string `json:"strThumb"`
	Cutout      string `json:"strCutout"`
}

func (c *ScoreboardClient) AllSports(ctx context.Context) ([]ScoreboardSport, error) {
	var resp struct {
		Sports []ScoreboardSport `json:"sports"`
	}
	if err := c.getJSON(ctx, "all_sports.php", nil, &resp); err != nil {
		return nil, fmt.Errorf("scoreboard sports: %w", err)
	}
	return resp.Sports, nil
}

// LeaguesBySport searches leagues of one sport. The endpoint names its list "countries".
func (c *ScoreboardClient) LeaguesBySport(ctx context.Context, sport string) ([]ScoreboardLeague, error) {
	var resp struct {
		Countries []ScoreboardLeague `json:"countries"`
	}
	if err := c.getJSON(ctx, "search_all_leagues.php", url.Values{"s": {sport}}, &resp); err != nil {
		return nil, fmt.Errorf("scoreboard leagues for %s: %w", sport, err)
	}
	return resp.Countries, nil
}

func (c *ScoreboardClient) LookupLeague(ctx context.Context, id string) (*ScoreboardLeague, error) {
	var resp struct {
		Leagues []ScoreboardLeague `json:"leagues"`
	}
	if err := c.getJSON(ctx, "lookupleague.php", url.Values{"id": {id}}, &resp); err != nil {
		return nil, fmt.Errorf("scoreboard league %s: %w", id, err)
	}
	if len(resp.Leagues) == 0 {
		return nil, nil
	}
	return &resp.Leagues[0], nil
}

func (c *ScoreboardClient) LookupVenue(ctx context.Context, id string) (*ScoreboardVenue, error) {
	var resp struct {
		Venues []ScoreboardVenue `json:"venues"`
	}
	if err := c.getJSON(ctx, "lookupvenue.php", url.Values{"id": {id}}, &resp); err != nil {
		return nil, fmt.Errorf("scoreboard venue %s: %w", id, err)
	}
	if len(resp.Venues) == 0 {
		return nil, nil
	}
	return &resp.Venues[0], nil
}

// LeagueEvents returns the next (past=false) or most recent (past=true) events of a league.
func (c *ScoreboardClient) LeagueEvents(ctx context.Context, leagueID string, past bool) ([]ScoreboardEvent, error) {
	endpoint := "eventsnextleague.php"
	if past {
		endpoint = "eventspastleague.php"
	}
	var resp struct {
		Events []ScoreboardEvent `json:"events"`
	}
	if err := c.getJSON(ctx, endpoint, url.Values{"id": {leagueID}}, &resp); err != nil {
		return nil, fmt.Errorf("scoreboard league %s events: %w", leagueID, err)
	}
	return resp.Events, nil
}

func (c *ScoreboardClient) SearchPlayers(ctx context.Context, name string) ([]ScoreboardPlayer, error) {
	var resp struct {
		Player []ScoreboardPlayer `json:"player"`
	}
	if err := c.getJSON(ctx, "searchplayers.php", url.Values{"p": {name}}, &resp); err != nil {
		return nil, fmt.Errorf("scoreboard player search %q: %w", name, err)
	}
	return resp.Player, nil
}
