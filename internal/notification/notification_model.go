package notification

import (
	"github.com/DhavalSuthar-24/livescore/internal/user"
	"gorm.io/gorm"
)

const (
	TypeInfo  = "info"
	TypeMatch = "match"
	TypeAlert = "alert"
)

// Notification is either a broadcast (UserID nil) or addressed to one user.
// Readers are recorded in the notification_reads join table.
type Notification struct {
	gorm.Model
	Title       string      `json:"title" gorm:"not null"`
	Message     string      `json:"message" gorm:"type:text;not null"`
	Type        string      `json:"type" gorm:"type:varchar(20);default:'info'"`
	UserID      *uint       `json:"user_id,omitempty" gorm:"index"`
	MatchID     *uint       `json:"match_id,omitempty"`
	CreatedByID uint        `json:"created_by_id"`
	ReadBy      []user.User `json:"-" gorm:"many2many:notification_reads;constraint:OnDelete:CASCADE"`

	// Read is computed per caller when listing.
	Read bool `json:"read" gorm:"column:is_read;->;-:migration"`
}

// IsBroadcast reports whether every user receives n.
func (n *Notification) IsBroadcast() bool {
	return n.UserID == nil
}

// VisibleTo reports whether userID may see n.
func (n *Notification) VisibleTo(userID uint) bool {
	return n.UserID == nil || *n.UserID == userID
}

type CreateNotificationRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200" example:"Final over!"`
	Message string `json:"message" binding:"required,min=1" example:"India need 6 runs from the last over."`
	Type    string `json:"type" binding:"omitempty,oneof=info match alert" example:"match"`
	UserID  *uint  `json:"user_id" binding:"omitempty,min=1"`
	MatchID *uint  `json:"match_id" binding:"omitempty,min=1"`
}
