package commentary

import "gorm.io/gorm"

type CommentaryRepository interface {
	Append(entry *Commentary) error
	ListByMatch(matchID uint, limit int) ([]Commentary, error)
}

type commentaryRepository struct {
	db *gorm.DB
}

func NewCommentaryRepository(db *gorm.DB) CommentaryRepository {
	return &commentaryRepository{db: db}
}

func (r *commentaryRepository) Append(entry *Commentary) error {
	return r.db.Create(entry).Error
}

// ListByMatch returns the newest entries first.
func (r *commentaryRepository) ListByMatch(matchID uint, limit int) ([]Commentary, error) {
	var entries []Commentary
	err := r.db.Where("match_id = ?", matchID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
