package player

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetAllPlayers(page, pageSize int, filter PlayerFilter) ([]Player, int64, error)
	UpdatePlayer(p *Player) error
	// UpdateFields writes only the given columns.
	UpdateFields(id uint, fields map[string]interface{}) error
	// MergeStats adds or overwrites keys in the stats bag and returns the result.
	MergeStats(id uint, stats map[string]interface{}) (datatypes.JSONMap, error)
	DeletePlayer(id uint) error
	PlayerExists(id uint) (bool, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.Preload("Team").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetAllPlayers(page, pageSize int, filter PlayerFilter) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Sport != "" {
		query = query.Where("sport = ?", filter.Sport)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := query.Preload("Team").Offset(offset).Limit(pageSize).Order("name asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) UpdatePlayer(p *Player) error {
	return r.db.Omit("Team").Save(p).Error
}

func (r *playerRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&Player{}).Where("id = ?", id).Updates(fields).Error
}

func (r *playerRepository) MergeStats(id uint, stats map[string]interface{}) (datatypes.JSONMap, error) {
	var merged datatypes.JSONMap
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var p Player
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id", "stats").First(&p, id).Error; err != nil {
			return err
		}
		if p.Stats == nil {
			p.Stats = datatypes.JSONMap{}
		}
		for k, v := range stats {
			p.Stats[k] = v
		}
		merged = p.Stats
		return tx.Model(&Player{}).Where("id = ?", id).Update("stats", p.Stats).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return merged, err
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}

func (r *playerRepository) PlayerExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Player{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
