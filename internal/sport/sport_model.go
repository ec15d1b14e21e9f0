package sport

import (
	"gorm.io/gorm"
)

// Sport is a discipline such as cricket or football.
type Sport struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Format      string `json:"format" gorm:"size:50"`
	Description string `json:"description" gorm:"type:text"`
	IconURL     string `json:"icon_url" gorm:"type:text"`
	ExternalID  string `json:"external_id,omitempty" gorm:"size:50;index"`
}

// League is a competition inside a sport.
type League struct {
	gorm.Model
	Name       string `json:"name" gorm:"size:150;not null;index"`
	SportID    uint   `json:"sport_id" gorm:"not null;index"`
	Sport      *Sport `json:"sport,omitempty" gorm:"foreignKey:SportID"`
	Country    string `json:"country" gorm:"size:100"`
	Season     string `json:"season" gorm:"size:20"`
	LogoURL    string `json:"logo_url" gorm:"type:text"`
	ExternalID string `json:"external_id,omitempty" gorm:"size:50;index"`
}

type CreateSportRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Cricket"`
	Format      string `json:"format" binding:"max=50" example:"TeamvsTeam"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url" binding:"omitempty,url"`
	ExternalID  string `json:"external_id" binding:"max=50"`
}

type UpdateSportRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Format      *string `json:"format" binding:"omitempty,max=50"`
	Description *string `json:"description"`
	IconURL     *string `json:"icon_url" binding:"omitempty,url"`
	ExternalID  *string `json:"external_id" binding:"omitempty,max=50"`
}

type CreateLeagueRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=150" example:"Indian Premier League"`
	SportID    uint   `json:"sport_id" binding:"required,min=1" example:"1"`
	Country    string `json:"country" binding:"max=100" example:"India"`
	Season     string `json:"season" binding:"max=20" example:"2026"`
	LogoURL    string `json:"logo_url" binding:"omitempty,url"`
	ExternalID string `json:"external_id" binding:"max=50"`
}

type UpdateLeagueRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=150"`
	SportID    *uint   `json:"sport_id" binding:"omitempty,min=1"`
	Country    *string `json:"country" binding:"omitempty,max=100"`
	Season     *string `json:"season" binding:"omitempty,max=20"`
	LogoURL    *string `json:"logo_url" binding:"omitempty,url"`
	ExternalID *string `json:"external_id" binding:"omitempty,max=50"`
}

// SyncResult counts what a sync created and updated.
type SyncResult struct {
	SportsCreated  int      `json:"sports_created"`
	SportsUpdated  int      `json:"sports_updated"`
	LeaguesCreated int      `json:"leagues_created"`
	LeaguesUpdated int      `json:"leagues_updated"`
	Failed         []string `json:"failed,omitempty"`
}
