package venue

import (
	"errors"

	"gorm.io/gorm"
)

type VenueRepository interface {
	CreateVenue(venue *Venue) error
	GetVenueByID(id uint) (*Venue, error)
	GetVenueByName(name string) (*Venue, error)
	GetVenueByExternalID(externalID string) (*Venue, error)
	GetAllVenues(page, pageSize int, city string) ([]Venue, int64, error)
	UpdateVenue(venue *Venue) error
	DeleteVenue(id uint) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) CreateVenue(venue *Venue) error {
	return r.db.Create(venue).Error
}

func (r *venueRepository) GetVenueByID(id uint) (*Venue, error) {
	return r.first(r.db.Where("id = ?", id))
}

func (r *venueRepository) GetVenueByName(name string) (*Venue, error) {
	return r.first(r.db.Where("LOWER(name) = LOWER(?)", name))
}

func (r *venueRepository) GetVenueByExternalID(externalID string) (*Venue, error) {
	return r.first(r.db.Where("external_id = ?", externalID))
}

func (r *venueRepository) first(query *gorm.DB) (*Venue, error) {
	var venue Venue
	if err := query.First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) GetAllVenues(page, pageSize int, city string) ([]Venue, int64, error) {
	var venues []Venue
	var total int64

	query := r.db.Model(&Venue{})
	if city != "" {
		query = query.Where("city ILIKE ?", city)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := query.Order("name asc").Offset(offset).Limit(pageSize).Find(&venues).Error; err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}

func (r *venueRepository) UpdateVenue(venue *Venue) error {
	return r.db.Save(venue).Error
}

func (r *venueRepository) DeleteVenue(id uint) error {
	return r.db.Delete(&Venue{}, id).Error
}
