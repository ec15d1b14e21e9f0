package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetAllTeams(page, pageSize int, filter TeamFilter) ([]Team, int64, error)
	GetRoster(teamID uint) ([]RosterPlayer, error)
	UpdateTeam(team *Team) error
	DeleteTeam(id uint) error
	TeamExists(id uint) (bool, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetAllTeams(page, pageSize int, filter TeamFilter) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{})
	if filter.Sport != "" {
		query = query.Where("sport = ?", filter.Sport)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR short_name ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("name asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

// GetRoster reads the players table directly so this package stays free of
// the player package, which itself references teams.
func (r *teamRepository) GetRoster(teamID uint) ([]RosterPlayer, error) {
	var roster []RosterPlayer
	err := r.db.Table("players").
		Select("id, name, positions, nationality, image_url").
		Where("team_id = ? AND deleted_at IS NULL", teamID).
		Order("name asc").
		Scan(&roster).Error
	if err != nil {
		return nil, err
	}
	return roster, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

// DeleteTeam soft-deletes the team and detaches its players.
func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("players").Where("team_id = ?", id).Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, id).Error
	})
}

func (r *teamRepository) TeamExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Team{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
