package team

import (
	"github.com/DhavalSuthar-24/livescore/internal/models"
	"github.com/DhavalSuthar-24/livescore/internal/search"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Team struct {
	gorm.Model
	Name        string                                 `json:"name" gorm:"size:100;not null;index"`
	ShortName   string                                 `json:"short_name" gorm:"size:20"`
	Sport       string                                 `json:"sport" gorm:"size:50;index"`
	Country     string                                 `json:"country" gorm:"size:100"`
	LogoURL     string                                 `json:"logo_url" gorm:"type:text"`
	Founded     int                                    `json:"founded,omitempty"`
	SocialMedia datatypes.JSONType[models.SocialMedia] `json:"social_media" gorm:"type:jsonb;not null;default:'{}'"`
	ExternalID  string                                 `json:"external_id,omitempty" gorm:"size:50;index"`

	Players []RosterPlayer `json:"players,omitempty" gorm:"-"`
}

// RosterPlayer is the slice of a player row shown on a team page.
type RosterPlayer struct {
	ID          uint                        `json:"id"`
	Name        string                      `json:"name"`
	Positions   datatypes.JSONSlice[string] `json:"positions"`
	Nationality string                      `json:"nationality"`
	ImageURL    string                      `json:"image_url"`
}

func (t *Team) searchDocument() search.Document {
	return search.Document{
		Kind:      search.KindTeam,
		ID:        t.ID,
		Name:      t.Name,
		Sport:     t.Sport,
		Country:   t.Country,
		UpdatedAt: t.UpdatedAt,
	}
}

type CreateTeamRequest struct {
	Name        string             `json:"name" binding:"required,min=2,max=100" example:"Mumbai Indians"`
	ShortName   string             `json:"short_name" binding:"max=20" example:"MI"`
	Sport       string             `json:"sport" binding:"required,max=50" example:"cricket"`
	Country     string             `json:"country" binding:"max=100" example:"India"`
	LogoURL     string             `json:"logo_url" binding:"omitempty,url"`
	Founded     int                `json:"founded" binding:"omitempty,min=1800,max=2100" example:"2008"`
	SocialMedia models.SocialMedia `json:"social_media"`
	ExternalID  string             `json:"external_id" binding:"max=50"`
}

type UpdateTeamRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=2,max=100"`
	ShortName   *string             `json:"short_name" binding:"omitempty,max=20"`
	Sport       *string             `json:"sport" binding:"omitempty,max=50"`
	Country     *string             `json:"country" binding:"omitempty,max=100"`
	LogoURL     *string             `json:"logo_url" binding:"omitempty,url"`
	Founded     *int                `json:"founded" binding:"omitempty,min=1800,max=2100"`
	SocialMedia *models.SocialMedia `json:"social_media"`
	ExternalID  *string             `json:"external_id" binding:"omitempty,max=50"`
}

// TeamFilter narrows GetAllTeams. Zero values mean no filter.
type TeamFilter struct {
	Sport  string
	Search string
}
