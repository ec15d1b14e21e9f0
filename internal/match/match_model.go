package match

import (
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/sport"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/DhavalSuthar-24/livescore/internal/venue"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusMatchUpcoming  MatchStatus = "upcoming"
	StatusMatchLive      MatchStatus = "live"
	StatusMatchCompleted MatchStatus = "completed"
	StatusMatchPostponed MatchStatus = "postponed"
	StatusMatchCancelled MatchStatus = "cancelled"
)

// Match is a fixture between two teams. Scores are free-form strings so a
// cricket innings ("187/4 (20)") and a football score ("2") fit the same column.
type Match struct {
	gorm.Model
	Title      string        `json:"title" gorm:"size:200"`
	Sport      string        `json:"sport" gorm:"size:50;index"`
	HomeTeamID uint          `json:"home_team_id" gorm:"not null;index"`
	HomeTeam   *team.Team    `json:"home_team,omitempty" gorm:"foreignKey:HomeTeamID"`
	AwayTeamID uint          `json:"away_team_id" gorm:"not null;index"`
	AwayTeam   *team.Team    `json:"away_team,omitempty" gorm:"foreignKey:AwayTeamID"`
	HomeScore  string        `json:"home_score" gorm:"size:50"`
	AwayScore  string        `json:"away_score" gorm:"size:50"`
	Status     MatchStatus   `json:"status" gorm:"type:varchar(20);default:'upcoming';index"`
	StartTime  *time.Time    `json:"start_time"`
	VenueID    *uint         `json:"venue_id"`
	Venue      *venue.Venue  `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
	LeagueID   *uint         `json:"league_id"`
	League     *sport.League `json:"league,omitempty" gorm:"foreignKey:LeagueID"`
	Summary    string        `json:"summary" gorm:"type:text"`
	Result     string        `json:"result" gorm:"type:text"`
}

type CreateMatchRequest struct {
	Title      string      `json:"title" binding:"max=200" example:"MI vs CSK"`
	Sport      string      `json:"sport" binding:"required,max=50" example:"cricket"`
	HomeTeamID uint        `json:"home_team_id" binding:"required,min=1" example:"1"`
	AwayTeamID uint        `json:"away_team_id" binding:"required,min=1,nefield=HomeTeamID" example:"2"`
	Status     MatchStatus `json:"status" binding:"omitempty,oneof=upcoming live completed postponed cancelled"`
	StartTime  *time.Time  `json:"start_time"`
	VenueID    *uint       `json:"venue_id" binding:"omitempty,min=1"`
	LeagueID   *uint       `json:"league_id" binding:"omitempty,min=1"`
	Summary    string      `json:"summary"`
}

type UpdateMatchRequest struct {
	Title      *string    `json:"title" binding:"omitempty,max=200"`
	Sport      *string    `json:"sport" binding:"omitempty,max=50"`
	HomeTeamID *uint      `json:"home_team_id" binding:"omitempty,min=1"`
	AwayTeamID *uint      `json:"away_team_id" binding:"omitempty,min=1"`
	StartTime  *time.Time `json:"start_time"`
	VenueID    *uint      `json:"venue_id" binding:"omitempty,min=1"`
	LeagueID   *uint      `json:"league_id" binding:"omitempty,min=1"`
	Summary    *string    `json:"summary"`
	Result     *string    `json:"result"`
}

type UpdateScoreRequest struct {
	HomeScore string  `json:"home_score" binding:"required,max=50" example:"187/4 (20)"`
	AwayScore string  `json:"away_score" binding:"required,max=50" example:"120/3 (14.2)"`
	Summary   *string `json:"summary"`
}

type UpdateStatusRequest struct {
	Status MatchStatus `json:"status" binding:"required,oneof=upcoming live completed postponed cancelled" example:"live"`
	Result *string     `json:"result"`
}

// MatchFilter narrows GetMatches. Zero values mean no filter.
type MatchFilter struct {
	Status MatchStatus
	Sport  string
	TeamID *uint
}

// ScoreUpdate is the score:update payload.
type ScoreUpdate struct {
	MatchID   uint        `json:"match_id"`
	HomeScore string      `json:"home_score"`
	AwayScore string      `json:"away_score"`
	Summary   string      `json:"summary"`
	Status    MatchStatus `json:"status"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// StatusUpdate is the match:status payload.
type StatusUpdate struct {
	MatchID   uint        `json:"match_id"`
	Title     string      `json:"title"`
	Status    MatchStatus `json:"status"`
	Result    string      `json:"result"`
	UpdatedAt time.Time   `json:"updated_at"`
}
