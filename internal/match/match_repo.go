package match

import (
	"errors"

	"gorm.io/gorm"
)

type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatches(filter MatchFilter, page, pageSize int) ([]Match, int64, error)
	GetLiveMatches() ([]Match, error)
	UpdateMatch(match *Match) error
	UpdateScore(id uint, homeScore, awayScore string, summary *string) error
	UpdateStatus(id uint, status MatchStatus, result *string) error
	DeleteMatch(id uint) error
	MatchExists(id uint) (bool, error)
}

type GormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

func (r *GormMatchRepository) withRefs() *gorm.DB {
	return r.db.Preload("HomeTeam").Preload("AwayTeam").Preload("Venue").Preload("League")
}

func (r *GormMatchRepository) CreateMatch(match *Match) error {
	return r.db.Omit("HomeTeam", "AwayTeam", "Venue", "League").Create(match).Error
}

func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	if err := r.withRefs().First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *GormMatchRepository) GetMatches(filter MatchFilter, page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Sport != "" {
		query = query.Where("sport = ?", filter.Sport)
	}
	if filter.TeamID != nil {
		query = query.Where("home_team_id = ? OR away_team_id = ?", *filter.TeamID, *filter.TeamID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Preload("HomeTeam").Preload("AwayTeam").Preload("Venue").Preload("League").
		Order("start_time desc nulls last, id desc").
		Offset(offset).Limit(pageSize).
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *GormMatchRepository) GetLiveMatches() ([]Match, error) {
	var matches []Match
	if err := r.withRefs().Where("status = ?", StatusMatchLive).Order("start_time asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *GormMatchRepository) UpdateMatch(match *Match) error {
	return r.db.Omit("HomeTeam", "AwayTeam", "Venue", "League").Save(match).Error
}

func (r *GormMatchRepository) UpdateScore(id uint, homeScore, awayScore string, summary *string) error {
	fields := map[string]interface{}{"home_score": homeScore, "away_score": awayScore}
	if summary != nil {
		fields["summary"] = *summary
	}
	return r.db.Model(&Match{}).Where("id = ?", id).Updates(fields).Error
}

func (r *GormMatchRepository) UpdateStatus(id uint, status MatchStatus, result *string) error {
	fields := map[string]interface{}{"status": status}
	if result != nil {
		fields["result"] = *result
	}
	return r.db.Model(&Match{}).Where("id = ?", id).Updates(fields).Error
}

func (r *GormMatchRepository) DeleteMatch(id uint) error {
	return r.db.Delete(&Match{}, id).Error
}

func (r *GormMatchRepository) MatchExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Match{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
