package player

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/DhavalSuthar-24/livescore/internal/external"
	"github.com/rs/zerolog/log"
)

type ScoreboardPlayers interface {
	SearchPlayers(ctx context.Context, name string) ([]external.ScoreboardPlayer, error)
}

type CricketPlayers interface {
	SearchPlayers(ctx context.Context, name string) ([]external.CricketPlayerRef, error)
	PlayerInfo(ctx context.Context, id string) (*external.CricketPlayer, error)
}

// FootballPeople looks up a football-data.org person by numeric ID.
type FootballPeople interface {
	Person(ctx context.Context, id int) (*external.FootballPerson, error)
}

// Enricher backfills missing biography fields from the external providers.
// It never overwrites a field that already has a value.
type Enricher struct {
	scoreboard ScoreboardPlayers
	cricket    CricketPlayers
	football   FootballPeople
}

func NewEnricher(scoreboard ScoreboardPlayers, cricket CricketPlayers, football FootballPeople) *Enricher {
	return &Enricher{scoreboard: scoreboard, cricket: cricket, football: football}
}

// Enrich fills p in place and returns the changed columns, ready for
// PlayerRepository.UpdateFields. Provider errors are logged and skipped.
func (e *Enricher) Enrich(ctx context.Context, p *Player) map[string]interface{} {
	changes := map[string]interface{}{}
	if !needsEnrichment(p) {
		return changes
	}

	if e.scoreboard != nil {
		e.fromScoreboard(ctx, p, changes)
	}
	if needsEnrichment(p) && e.cricket != nil && strings.EqualFold(p.Sport, "cricket") {
		e.fromCricket(ctx, p, changes)
	}
	if needsEnrichment(p) && e.football != nil && isFootball(p.Sport) {
		e.fromFootball(ctx, p, changes)
	}
	return changes
}

func needsEnrichment(p *Player) bool {
	return p.Bio == "" || p.Nationality == "" || p.DateOfBirth == "" || p.ImageURL == "" || len(p.Positions) == 0
}

func (e *Enricher) fromScoreboard(ctx context.Context, p *Player, changes map[string]interface{}) {
	results, err := e.scoreboard.SearchPlayers(ctx, p.Name)
	if err != nil {
		logProviderError(err, "scoreboard", p)
		return
	}
	match := pickScoreboard(results, p)
	if match == nil {
		return
	}

	fill(&p.Bio, match.Description, "bio", changes)
	fill(&p.Nationality, match.Nationality, "nationality", changes)
	fill(&p.DateOfBirth, dateOnly(match.DateBorn), "date_of_birth", changes)
	image := match.Cutout
	if image == "" {
		image = match.Thumb
	}
	fill(&p.ImageURL, image, "image_url", changes)
	if len(p.Positions) == 0 && match.Position != "" {
		p.Positions = []string{match.Position}
		changes["positions"] = p.Positions
	}
}

func (e *Enricher) fromCricket(ctx context.Context, p *Player, changes map[string]interface{}) {
	refs, err := e.cricket.SearchPlayers(ctx, p.Name)
	if err != nil {
		logProviderError(err, "cricket", p)
		return
	}
	if len(refs) == 0 {
		return
	}
	ref := refs[0]
	for _, r := range refs {
		if strings.EqualFold(r.Name, p.Name) {
			ref = r
			break
		}
	}

	info, err := e.cricket.PlayerInfo(ctx, ref.ID)
	if err != nil {
		logProviderError(err, "cricket", p)
		return
	}
	if info == nil {
		return
	}

	fill(&p.Nationality, info.Country, "nationality", changes)
	fill(&p.DateOfBirth, dateOnly(info.DateOfBirth), "date_of_birth", changes)
	fill(&p.ImageURL, info.PlayerImg, "image_url", changes)
	fill(&p.Bio, cricketBio(info), "bio", changes)
	if len(p.Positions) == 0 && info.Role != "" {
		p.Positions = []string{info.Role}
		changes["positions"] = p.Positions
	}
}

// fromFootball only runs for players linked to a football-data.org person,
// whose ExternalID is that person's numeric ID.
func (e *Enricher) fromFootball(ctx context.Context, p *Player, changes map[string]interface{}) {
	id, err := strconv.Atoi(p.ExternalID)
	if err != nil || id <= 0 {
		return
	}
	person, err := e.football.Person(ctx, id)
	if err != nil {
		logProviderError(err, "football", p)
		return
	}
	if person == nil {
		return
	}

	fill(&p.Nationality, person.Nationality, "nationality", changes)
	fill(&p.DateOfBirth, dateOnly(person.DateOfBirth), "date_of_birth", changes)
	if len(p.Positions) == 0 && person.Position != "" {
		p.Positions = []string{person.Position}
		changes["positions"] = p.Positions
	}
}

func isFootball(sport string) bool {
	return strings.EqualFold(sport, "football") || strings.EqualFold(sport, "soccer")
}

// pickScoreboard prefers an exact name match in the player's sport, then any
// exact name match, then the first result.
func pickScoreboard(results []external.ScoreboardPlayer, p *Player) *external.ScoreboardPlayer {
	if len(results) == 0 {
		return nil
	}
	var byName *external.ScoreboardPlayer
	for i := range results {
		r := &results[i]
		if !strings.EqualFold(r.Name, p.Name) {
			continue
		}
		if p.Sport == "" || strings.EqualFold(r.Sport, p.Sport) {
			return r
		}
		if byName == nil {
			byName = r
		}
	}
	if byName != nil {
		return byName
	}
	return &results[0]
}

func fill(dst *string, value, column string, changes map[string]interface{}) {
	if *dst != "" || value == "" {
		return
	}
	*dst = value
	changes[column] = value
}

// dateOnly trims provider timestamps such as 1988-11-05T00:00:00 to the date.
func dateOnly(s string) string {
	if len(s) > 10 && s[10] == 'T' {
		return s[:10]
	}
	return s
}

func cricketBio(info *external.CricketPlayer) string {
	var parts []string
	if info.Role != "" {
		parts = append(parts, info.Role)
	}
	if info.BattingStyle != "" {
		parts = append(parts, "Batting: "+info.BattingStyle)
	}
	if info.BowlingStyle != "" {
		parts = append(parts, "Bowling: "+info.BowlingStyle)
	}
	if info.PlaceOfBirth != "" {
		parts = append(parts, "Born in "+info.PlaceOfBirth)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

func logProviderError(err error, provider string, p *Player) {
	if errors.Is(err, external.ErrProviderDisabled) {
		log.Debug().Str("provider", provider).Msg("enrichment provider disabled")
		return
	}
	log.Warn().Err(err).Str("provider", provider).Uint("player_id", p.ID).Msg("player enrichment lookup failed")
}
