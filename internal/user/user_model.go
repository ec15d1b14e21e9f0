package user

import (
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/favorite"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name       string              `json:"name" gorm:"not null"`
	Email      string              `json:"email" gorm:"uniqueIndex;not null"`
	Password   string              `json:"-" gorm:"not null"`
	Role       string              `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	Avatar     string              `json:"avatar"`
	LastActive time.Time           `json:"last_active"`
	Favorites  []favorite.Favorite `json:"favorites,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// RefreshToken is a stored, revocable refresh JWT.
type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin" example:"admin"`
}
