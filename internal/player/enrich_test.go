package player

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/livescore/internal/external"
	"gorm.io/datatypes"
)

type stubScoreboard struct {
	players []external.ScoreboardPlayer
	err     error
	calls   int
}

func (s *stubScoreboard) SearchPlayers(context.Context, string) ([]external.ScoreboardPlayer, error) {
	s.calls++
	return s.players, s.err
}

type stubCricket struct {
	refs      []external.CricketPlayerRef
	info      *external.CricketPlayer
	searchErr error
	infoIDs   []string
}

func (s *stubCricket) SearchPlayers(context.Context, string) ([]external.CricketPlayerRef, error) {
	return s.refs, s.searchErr
}

func (s *stubCricket) PlayerInfo(_ context.Context, id string) (*external.CricketPlayer, error) {
	s.infoIDs = append(s.infoIDs, id)
	return s.info, nil
}

type stubFootball struct {
	person *external.FootballPerson
	ids    []int
}

func (s *stubFootball) Person(_ context.Context, id int) (*external.FootballPerson, error) {
	s.ids = append(s.ids, id)
	return s.person, nil
}

func TestEnrichFillsOnlyMissingFields(t *testing.T) {
	sb := &stubScoreboard{players: []external.ScoreboardPlayer{
		{Name: "Harry Kane", Sport: "Soccer", Nationality: "England", DateBorn: "1993-07-28",
			Position: "Forward", Description: "Striker.", Cutout: "http://img/kane.png"},
	}}
	p := &Player{Name: "Harry Kane", Sport: "football", Nationality: "English", Bio: "Kept bio"}

	changes := NewEnricher(sb, nil, nil).Enrich(context.Background(), p)

	if p.Bio != "Kept bio" || p.Nationality != "English" {
		t.Errorf("existing fields overwritten: %+v", p)
	}
	if p.DateOfBirth != "1993-07-28" || p.ImageURL != "http://img/kane.png" || len(p.Positions) != 1 {
		t.Errorf("missing fields not filled: %+v", p)
	}
	if _, ok := changes["bio"]; ok {
		t.Error("bio should not be in changes")
	}
	if len(changes) != 3 {
		t.Errorf("changes = %v, want date_of_birth, image_url, positions", changes)
	}
}

func TestEnrichSkipsCompletePlayer(t *testing.T) {
	sb := &stubScoreboard{}
	p := &Player{Name: "X", Bio: "b", Nationality: "n", DateOfBirth: "2000-01-01", ImageURL: "i", Positions: datatypes.JSONSlice[string]{"p"}}

	if changes := NewEnricher(sb, nil, nil).Enrich(context.Background(), p); len(changes) != 0 {
		t.Errorf("changes = %v", changes)
	}
	if sb.calls != 0 {
		t.Error("complete player should not hit the provider")
	}
}

func TestEnrichFallsBackToCricket(t *testing.T) {
	sb := &stubScoreboard{err: errors.New("provider down")}
	cr := &stubCricket{
		refs: []external.CricketPlayerRef{{ID: "other", Name: "Virat Kohli Jr"}, {ID: "vk", Name: "Virat Kohli"}},
		info: &external.CricketPlayer{
			Country: "India", DateOfBirth: "1988-11-05T00:00:00", Role: "Batsman",
			BattingStyle: "Right Handed Bat", PlaceOfBirth: "Delhi",
		},
	}
	p := &Player{Name: "Virat Kohli", Sport: "cricket"}

	changes := NewEnricher(sb, cr, nil).Enrich(context.Background(), p)

	if len(cr.infoIDs) != 1 || cr.infoIDs[0] != "vk" {
		t.Errorf("info lookups = %v, want exact name match", cr.infoIDs)
	}
	if p.Nationality != "India" || p.DateOfBirth != "1988-11-05" {
		t.Errorf("player = %+v", p)
	}
	if p.Bio != "Batsman. Batting: Right Handed Bat. Born in Delhi." {
		t.Errorf("bio = %q", p.Bio)
	}
	if changes["nationality"] != "India" {
		t.Errorf("changes = %v", changes)
	}
}

func TestEnrichCricketOnlyForCricketers(t *testing.T) {
	cr := &stubCricket{refs: []external.CricketPlayerRef{{ID: "1", Name: "Someone"}}}
	p := &Player{Name: "Someone", Sport: "football"}

	NewEnricher(&stubScoreboard{}, cr, nil).Enrich(context.Background(), p)
	if len(cr.infoIDs) != 0 {
		t.Error("cricket provider consulted for a football player")
	}
}

func TestEnrichToleratesCricketErrors(t *testing.T) {
	cr := &stubCricket{searchErr: external.ErrProviderDisabled}
	p := &Player{Name: "Someone", Sport: "cricket"}

	if changes := NewEnricher(nil, cr, nil).Enrich(context.Background(), p); len(changes) != 0 {
		t.Errorf("changes = %v", changes)
	}
}

func TestEnrichFallsBackToFootballPerson(t *testing.T) {
	sb := &stubScoreboard{err: errors.New("provider down")}
	fb := &stubFootball{person: &external.FootballPerson{
		ID: 8004, Name: "Bukayo Saka", Nationality: "England", DateOfBirth: "2001-09-05", Position: "Right Winger",
	}}
	p := &Player{Name: "Bukayo Saka", Sport: "Soccer", ExternalID: "8004"}

	changes := NewEnricher(sb, nil, fb).Enrich(context.Background(), p)

	if len(fb.ids) != 1 || fb.ids[0] != 8004 {
		t.Fatalf("person lookups = %v", fb.ids)
	}
	if p.Nationality != "England" || p.DateOfBirth != "2001-09-05" {
		t.Errorf("player = %+v", p)
	}
	if len(p.Positions) != 1 || p.Positions[0] != "Right Winger" {
		t.Errorf("positions = %v", p.Positions)
	}
	if len(changes) != 3 {
		t.Errorf("changes = %v, want nationality, date_of_birth, positions", changes)
	}
}

func TestEnrichFootballNeedsNumericExternalID(t *testing.T) {
	fb := &stubFootball{person: &external.FootballPerson{Nationality: "Spain"}}
	for _, p := range []*Player{
		{Name: "A", Sport: "football", ExternalID: ""},
		{Name: "B", Sport: "football", ExternalID: "sdb-34145937"},
		{Name: "C", Sport: "cricket", ExternalID: "42"},
	} {
		if changes := NewEnricher(&stubScoreboard{}, nil, fb).Enrich(context.Background(), p); len(changes) != 0 {
			t.Errorf("%s: changes = %v", p.Name, changes)
		}
	}
	if len(fb.ids) != 0 {
		t.Errorf("football provider consulted: %v", fb.ids)
	}
}

func TestPickScoreboardPrefersSport(t *testing.T) {
	results := []external.ScoreboardPlayer{
		{ID: "1", Name: "John Smith", Sport: "Rugby"},
		{ID: "2", Name: "John Smith", Sport: "Cricket"},
	}
	got := pickScoreboard(results, &Player{Name: "john smith", Sport: "cricket"})
	if got == nil || got.ID != "2" {
		t.Errorf("picked %+v", got)
	}
	got = pickScoreboard(results, &Player{Name: "John Smith", Sport: "tennis"})
	if got == nil || got.ID != "1" {
		t.Errorf("picked %+v, want first name match", got)
	}
	if pickScoreboard(nil, &Player{}) != nil {
		t.Error("empty results should pick nothing")
	}
}
