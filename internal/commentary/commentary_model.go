package commentary

import "time"

// Commentary is one entry in a match's append-only event log. It has no
// UpdatedAt or DeletedAt: entries are never edited or removed.
type Commentary struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MatchID   uint      `json:"match_id" gorm:"not null;index:idx_commentary_match_created,priority:1"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Period    string    `json:"period" gorm:"size:20"`
	EventType string    `json:"event_type" gorm:"size:30;default:'general'"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_commentary_match_created,priority:2"`
}

func (Commentary) TableName() string { return "commentaries" }

type CreateCommentaryRequest struct {
	Text      string `json:"text" binding:"required,min=1,max=2000" example:"FOUR! Driven through the covers."`
	Period    string `json:"period" binding:"max=20" example:"14.3"`
	EventType string `json:"event_type" binding:"omitempty,oneof=general boundary six wicket goal card substitution milestone" example:"boundary"`
}
