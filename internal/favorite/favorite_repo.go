package favorite

import (
	"errors"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	CreateFavorite(f *Favorite) error
	GetFavoriteByID(id uint) (*Favorite, error)
	FindFavorite(userID uint, entityType EntityType, entityID uint) (*Favorite, error)
	ListFavorites(userID uint, entityType EntityType) ([]Favorite, error)
	DeleteFavorite(id uint) error
	EntityExists(entityType EntityType, entityID uint) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

var entityTables = map[EntityType]string{
	EntityTeam:   "teams",
	EntityPlayer: "players",
	EntityMatch:  "matches",
}

func (r *favoriteRepository) CreateFavorite(f *Favorite) error {
	return r.db.Create(f).Error
}

func (r *favoriteRepository) GetFavoriteByID(id uint) (*Favorite, error) {
	var f Favorite
	if err := r.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// FindFavorite includes soft-deleted rows since they still hold the unique index.
func (r *favoriteRepository) FindFavorite(userID uint, entityType EntityType, entityID uint) (*Favorite, error) {
	var f Favorite
	err := r.db.Unscoped().
		Where("user_id = ? AND entity_type = ? AND entity_id = ?", userID, entityType, entityID).
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *favoriteRepository) ListFavorites(userID uint, entityType EntityType) ([]Favorite, error) {
	query := r.db.Where("user_id = ?", userID)
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	var favorites []Favorite
	if err := query.Order("created_at desc").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteFavorite removes the row for good so the pair can be favorited again.
func (r *favoriteRepository) DeleteFavorite(id uint) error {
	return r.db.Unscoped().Delete(&Favorite{}, id).Error
}

func (r *favoriteRepository) EntityExists(entityType EntityType, entityID uint) (bool, error) {
	table, ok := entityTables[entityType]
	if !ok {
		return false, nil
	}
	var count int64
	err := r.db.Table(table).Where("id = ? AND deleted_at IS NULL", entityID).Count(&count).Error
	return count > 0, err
}
