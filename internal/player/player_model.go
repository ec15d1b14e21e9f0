package player

import (
	"github.com/DhavalSuthar-24/livescore/internal/search"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Player struct {
	gorm.Model
	Name        string                      `json:"name" gorm:"size:100;not null;index"`
	TeamID      *uint                       `json:"team_id" gorm:"index"`
	Team        *team.Team                  `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Sport       string                      `json:"sport" gorm:"size:50;index"`
	Positions   datatypes.JSONSlice[string] `json:"positions" gorm:"type:jsonb;not null;default:'[]'"`
	Nationality string                      `json:"nationality" gorm:"size:100"`
	DateOfBirth string                      `json:"date_of_birth" gorm:"size:20"`
	Bio         string                      `json:"bio" gorm:"type:text"`
	ImageURL    string                      `json:"image_url" gorm:"type:text"`
	Stats       datatypes.JSONMap           `json:"stats" gorm:"type:jsonb"`
	ExternalID  string                      `json:"external_id,omitempty" gorm:"size:50;index"`
}

func (p *Player) searchDocument() search.Document {
	return search.Document{
		Kind:      search.KindPlayer,
		ID:        p.ID,
		Name:      p.Name,
		Sport:     p.Sport,
		Country:   p.Nationality,
		TeamID:    p.TeamID,
		UpdatedAt: p.UpdatedAt,
	}
}

type CreatePlayerRequest struct {
	Name        string                 `json:"name" binding:"required,min=2,max=100" example:"Virat Kohli"`
	TeamID      *uint                  `json:"team_id" binding:"omitempty,min=1"`
	Sport       string                 `json:"sport" binding:"required,max=50" example:"cricket"`
	Positions   []string               `json:"positions" example:"batsman"`
	Nationality string                 `json:"nationality" binding:"max=100"`
	DateOfBirth string                 `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02" example:"1988-11-05"`
	Bio         string                 `json:"bio"`
	ImageURL    string                 `json:"image_url" binding:"omitempty,url"`
	Stats       map[string]interface{} `json:"stats"`
	ExternalID  string                 `json:"external_id" binding:"max=50"`
}

// UpdatePlayerRequest replaces the stats bag when Stats is present.
type UpdatePlayerRequest struct {
	Name        *string                `json:"name" binding:"omitempty,min=2,max=100"`
	TeamID      *uint                  `json:"team_id" binding:"omitempty,min=1"`
	ClearTeam   bool                   `json:"clear_team"`
	Sport       *string                `json:"sport" binding:"omitempty,max=50"`
	Positions   []string               `json:"positions"`
	Nationality *string                `json:"nationality" binding:"omitempty,max=100"`
	DateOfBirth *string                `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Bio         *string                `json:"bio"`
	ImageURL    *string                `json:"image_url" binding:"omitempty,url"`
	Stats       map[string]interface{} `json:"stats"`
	ExternalID  *string                `json:"external_id" binding:"omitempty,max=50"`
}

type UpdateStatsRequest struct {
	Stats map[string]interface{} `json:"stats" binding:"required"`
}

// PlayerFilter narrows GetAllPlayers. Zero values mean no filter.
type PlayerFilter struct {
	TeamID *uint
	Sport  string
	Search string
}
