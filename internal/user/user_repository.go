package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"gorm.io/gorm"
)

// UserRepository persists users. Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	CreateUser(u *User) error
	GetUserByID(id uint) (*User, error)
	GetUserWithFavorites(id uint) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserRole(id uint) (string, error)
	UpdateUser(u *User) error
	UpdateRole(id uint, role string) error
	TouchLastActive(id uint) error
	DeleteUser(id uint) error
	ListUsers(page, pageSize int, search string) ([]User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(u *User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.Create(u).Error
}

func (r *userRepository) first(query *gorm.DB) (*User, error) {
	var u User
	if err := query.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUserByID(id uint) (*User, error) {
	return r.first(r.db.Where("id = ?", id))
}

func (r *userRepository) GetUserWithFavorites(id uint) (*User, error) {
	return r.first(r.db.Preload("Favorites").Where("id = ?", id))
}

func (r *userRepository) GetUserByEmail(email string) (*User, error) {
	return r.first(r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))))
}

func (r *userRepository) GetUserRole(id uint) (string, error) {
	var roles []string
	if err := r.db.Model(&User{}).Where("id = ?", id).Limit(1).Pluck("role", &roles).Error; err != nil {
		return "", fmt.Errorf("failed to load role for user %d: %w", id, err)
	}
	if len(roles) == 0 {
		return "", nil
	}
	if roles[0] == "" {
		return common.RoleUser, nil
	}
	return roles[0], nil
}

func (r *userRepository) UpdateUser(u *User) error {
	return r.db.Save(u).Error
}

func (r *userRepository) UpdateRole(id uint, role string) error {
	return r.db.Model(&User{}).Where("id = ?", id).Update("role", role).Error
}

func (r *userRepository) TouchLastActive(id uint) error {
	return r.db.Model(&User{}).Where("id = ?", id).Update("last_active", time.Now()).Error
}

func (r *userRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
}

func (r *userRepository) ListUsers(page, pageSize int, search string) ([]User, int64, error) {
	var users []User
	var total int64

	query := r.db.Model(&User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").
		Offset(common.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&users).Error
	return users, total, err
}
