package external

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/livescore/config"
)

func TestCricketClientSendsKeyAndFiltersLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/currentMatches" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("apikey"); got != "k1" {
			t.Errorf("apikey = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":[
			{"id":"a","name":"India vs Australia","matchType":"t20","status":"India need 20 runs","teams":["India","Australia"],
			 "score":[{"r":187,"w":4,"o":20,"inning":"Australia Inning 1"},{"r":168,"w":3,"o":18.2,"inning":"India Inning 1"}],
			 "dateTimeGMT":"2026-10-19T14:00:00","matchStarted":true,"matchEnded":false},
			{"id":"b","name":"Done","teams":["X","Y"],"matchStarted":true,"matchEnded":true},
			{"id":"c","name":"Later","teams":["X","Y"],"matchStarted":false,"matchEnded":false}
		]}`))
	}))
	defer srv.Close()

	c := NewCricketClient(srv.URL, "k1", true, time.Second)
	got, err := c.LiveScores(context.Background())
	if err != nil {
		t.Fatalf("LiveScores: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d live matches, want 1", len(got))
	}
	m := got[0]
	if m.ID != "a" || m.HomeTeam != "India" || m.AwayTeam != "Australia" {
		t.Errorf("unexpected match %+v", m)
	}
	if m.HomeScore != "168/3 (18.2)" || m.AwayScore != "187/4 (20)" {
		t.Errorf("scores = %q / %q", m.HomeScore, m.AwayScore)
	}
	if m.StartTime == nil || m.StartTime.Hour() != 14 {
		t.Errorf("start time = %v", m.StartTime)
	}
}

func TestCricketClientFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failure","reason":"hits today exceeded"}`))
	}))
	defer srv.Close()

	c := NewCricketClient(srv.URL, "k1", true, time.Second)
	if _, err := c.CurrentMatches(context.Background()); err == nil {
		t.Fatal("expected failure status to surface as error")
	}
}

func TestFootballClientUsesAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "fk" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.URL.Query().Get("status") != "LIVE" {
			t.Errorf("status query = %q", r.URL.Query().Get("status"))
		}
		_, _ = w.Write([]byte(`{"matches":[{"id":42,"utcDate":"2026-10-19T19:00:00Z","status":"IN_PLAY",
			"homeTeam":{"name":"Arsenal"},"awayTeam":{"name":"Chelsea"},
			"score":{"fullTime":{"home":2,"away":null}},"competition":{"name":"Premier League","code":"PL"}}]}`))
	}))
	defer srv.Close()

	c := NewFootballClient(srv.URL, "fk", true, time.Second)
	got, err := c.LiveScores(context.Background())
	if err != nil {
		t.Fatalf("LiveScores: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
	if got[0].ID != "42" || got[0].HomeScore != "2" || got[0].AwayScore != "0" || got[0].Competition != "Premier League" {
		t.Errorf("unexpected %+v", got[0])
	}
}

func TestFootballClientNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewFootballClient(srv.URL, "fk", true, time.Second)
	if _, err := c.LiveMatches(context.Background()); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestScoreboardClientKeyInPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/3/lookupvenue.php":
			_, _ = w.Write([]byte(`{"venues":[{"idVenue":"15528","strVenue":"Wembley","intCapacity":"90,000"}]}`))
		case "/3/eventspastleague.php":
			_, _ = w.Write([]byte(`{"events":[{"idEvent":"1","strEvent":"A vs B"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewScoreboardClient(srv.URL, "", true, time.Second)
	v, err := c.LookupVenue(context.Background(), "15528")
	if err != nil {
		t.Fatalf("LookupVenue: %v", err)
	}
	if v == nil || v.Name != "Wembley" || v.CapacityInt() != 90000 {
		t.Errorf("venue = %+v", v)
	}

	events, err := c.LeagueEvents(context.Background(), "4328", true)
	if err != nil {
		t.Fatalf("LeagueEvents: %v", err)
	}
	if len(events) != 1 || events[0].Name != "A vs B" {
		t.Errorf("events = %+v", events)
	}
}

func TestDisabledClientShortCircuits(t *testing.T) {
	c := NewCricketClient("http://127.0.0.1:1", "", true, time.Second)
	if _, err := c.CurrentMatches(context.Background()); !errors.Is(err, ErrProviderDisabled) {
		t.Fatalf("err = %v, want ErrProviderDisabled", err)
	}
}

func TestInningsFor(t *testing.T) {
	scores := []CricketScore{
		{Runs: 250, Wickets: 10, Overs: 80.3, Inning: "England Inning 1"},
		{Runs: 300, Wickets: 6, Overs: 90, Inning: "India Inning 1"},
		{Runs: 120, Wickets: 2, Overs: 30, Inning: "England Inning 2"},
	}
	if got := inningsFor(scores, "England"); got != "250/10 (80.3) & 120/2 (30)" {
		t.Errorf("England = %q", got)
	}
	if got := inningsFor(scores, "Pakistan"); got != "" {
		t.Errorf("Pakistan = %q, want empty", got)
	}
}

func TestLiveFetchersOnlyPollable(t *testing.T) {
	p := config.DefaultProviders()
	p.Football.APIKey = "fk"
	clients := NewClients(p)

	fetchers := clients.LiveFetchers(p)
	if len(fetchers) != 1 {
		t.Fatalf("got %d fetchers, want 1", len(fetchers))
	}
	if _, ok := fetchers[SourceFootball]; !ok {
		t.Error("football should be polled")
	}
	if clients.Cricket.Enabled() {
		t.Error("cricket without a key must be disabled")
	}
}
