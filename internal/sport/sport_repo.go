package sport

import (
	"errors"

	"gorm.io/gorm"
)

type SportRepository interface {
	CreateSport(sport *Sport) error
	GetSportByID(id uint) (*Sport, error)
	GetAllSports(page, pageSize int, searchTerm string) ([]Sport, int64, error)
	UpdateSport(sport *Sport) error
	DeleteSport(id uint) error
	FindSportByName(name string) (*Sport, error)
	// UpsertSport matches on ExternalID, then on name, and reports whether a row was created.
	UpsertSport(sport *Sport) (bool, error)

	CreateLeague(league *League) error
	GetLeagueByID(id uint) (*League, error)
	GetAllLeagues(page, pageSize int, sportID *uint) ([]League, int64, error)
	UpdateLeague(league *League) error
	DeleteLeague(id uint) error
	UpsertLeague(league *League) (bool, error)
}

type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository creates a new instance of SportRepository.
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

// --- Sport Methods ---

func (r *sportRepository) CreateSport(sport *Sport) error {
	return r.db.Create(sport).Error
}

func (r *sportRepository) GetSportByID(id uint) (*Sport, error) {
	var sport Sport
	if err := r.db.First(&sport, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) GetAllSports(page, pageSize int, searchTerm string) ([]Sport, int64, error) {
	var sports []Sport
	var total int64

	query := r.db.Model(&Sport{})
	if searchTerm != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?", "%"+searchTerm+"%", "%"+searchTerm+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := query.Order("name asc").Offset(offset).Limit(pageSize).Find(&sports).Error; err != nil {
		return nil, 0, err
	}
	return sports, total, nil
}

func (r *sportRepository) UpdateSport(sport *Sport) error {
	return r.db.Save(sport).Error
}

func (r *sportRepository) DeleteSport(id uint) error {
	return r.db.Delete(&Sport{}, id).Error
}

func (r *sportRepository) FindSportByName(name string) (*Sport, error) {
	var sport Sport
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&sport).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) UpsertSport(sport *Sport) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing Sport
		err := tx.Where("external_id = ?", sport.ExternalID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = tx.Where("LOWER(name) = LOWER(?)", sport.Name).First(&existing).Error
		}
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Create(sport).Error
		case err != nil:
			return err
		}
		sport.Model = existing.Model
		return tx.Save(sport).Error
	})
	return created, err
}

// --- League Methods ---

func (r *sportRepository) CreateLeague(league *League) error {
	return r.db.Create(league).Error
}

func (r *sportRepository) GetLeagueByID(id uint) (*League, error) {
	var league League
	if err := r.db.Preload("Sport").First(&league, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &league, nil
}

func (r *sportRepository) GetAllLeagues(page, pageSize int, sportID *uint) ([]League, int64, error) {
	var leagues []League
	var total int64

	query := r.db.Model(&League{})
	if sportID != nil {
		query = query.Where("sport_id = ?", *sportID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := query.Preload("Sport").Order("name asc").Offset(offset).Limit(pageSize).Find(&leagues).Error; err != nil {
		return nil, 0, err
	}
	return leagues, total, nil
}

func (r *sportRepository) UpdateLeague(league *League) error {
	return r.db.Omit("Sport").Save(league).Error
}

func (r *sportRepository) DeleteLeague(id uint) error {
	return r.db.Delete(&League{}, id).Error
}

func (r *sportRepository) UpsertLeague(league *League) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing League
		err := tx.Where("external_id = ?", league.ExternalID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Create(league).Error
		case err != nil:
			return err
		}
		league.Model = existing.Model
		return tx.Omit("Sport").Save(league).Error
	})
	return created, err
}
