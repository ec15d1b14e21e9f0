package venue

import (
	"github.com/DhavalSuthar-24/livescore/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Venue struct {
	gorm.Model
	Name        string                                 `json:"name" gorm:"size:150;uniqueIndex;not null"`
	City        string                                 `json:"city" gorm:"size:100;index"`
	Country     string                                 `json:"country" gorm:"size:100"`
	Capacity    int                                    `json:"capacity"`
	Coordinates datatypes.JSONType[models.Coordinates] `json:"coordinates" gorm:"type:jsonb;not null;default:'{}'"`
	ImageURL    string                                 `json:"image_url" gorm:"type:text"`
	ExternalID  string                                 `json:"external_id,omitempty" gorm:"size:50;index"`
}

type CreateVenueRequest struct {
	Name        string             `json:"name" binding:"required,min=2,max=150" example:"Wankhede Stadium"`
	City        string             `json:"city" binding:"max=100" example:"Mumbai"`
	Country     string             `json:"country" binding:"max=100" example:"India"`
	Capacity    int                `json:"capacity" binding:"min=0" example:"33108"`
	Coordinates models.Coordinates `json:"coordinates"`
	ImageURL    string             `json:"image_url" binding:"omitempty,url"`
	ExternalID  string             `json:"external_id" binding:"max=50"`
}

type UpdateVenueRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=2,max=150"`
	City        *string             `json:"city" binding:"omitempty,max=100"`
	Country     *string             `json:"country" binding:"omitempty,max=100"`
	Capacity    *int                `json:"capacity" binding:"omitempty,min=0"`
	Coordinates *models.Coordinates `json:"coordinates"`
	ImageURL    *string             `json:"image_url" binding:"omitempty,url"`
	ExternalID  *string             `json:"external_id" binding:"omitempty,max=50"`
}
