package favorite

import "gorm.io/gorm"

// EntityType names what a favorite points at.
type EntityType string

const (
	EntityTeam   EntityType = "team"
	EntityPlayer EntityType = "player"
	EntityMatch  EntityType = "match"
)

// Favorite joins a user to a team, player or match. The (user, type, entity)
// triple is unique.
type Favorite struct {
	gorm.Model
	UserID     uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_entity"`
	EntityType EntityType `json:"entity_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_favorite_user_entity"`
	EntityID   uint       `json:"entity_id" gorm:"not null;uniqueIndex:idx_favorite_user_entity"`
}

type CreateFavoriteRequest struct {
	EntityType EntityType `json:"entity_type" binding:"required,oneof=team player match" example:"team"`
	EntityID   uint       `json:"entity_id" binding:"required,min=1" example:"3"`
}
