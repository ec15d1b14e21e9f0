package main

import (
	"testing"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/user"
	"github.com/DhavalSuthar-24/livescore/utils"
	"gorm.io/gorm"
)

type seedUsers struct {
	byEmail  map[string]*user.User
	promoted []uint
}

func (s *seedUsers) CreateUser(u *user.User) error {
	u.ID = uint(len(s.byEmail) + 1)
	s.byEmail[u.Email] = u
	return nil
}

func (s *seedUsers) GetUserByID(id uint) (*user.User, error)          { return nil, nil }
func (s *seedUsers) GetUserWithFavorites(id uint) (*user.User, error) { return nil, nil }
func (s *seedUsers) GetUserByEmail(email string) (*user.User, error)  { return s.byEmail[email], nil }
func (s *seedUsers) GetUserRole(id uint) (string, error)              { return "", nil }
func (s *seedUsers) UpdateUser(u *user.User) error                    { return nil }
func (s *seedUsers) TouchLastActive(id uint) error                    { return nil }
func (s *seedUsers) DeleteUser(id uint) error                         { return nil }

func (s *seedUsers) UpdateRole(id uint, role string) error {
	s.promoted = append(s.promoted, id)
	return nil
}

func (s *seedUsers) ListUsers(page, pageSize int, search string) ([]user.User, int64, error) {
	return nil, 0, nil
}

func TestSeedAdminCreates(t *testing.T) {
	utils.BcryptCost = 4
	users := &seedUsers{byEmail: map[string]*user.User{}}
	if err := seedAdmin(users, "admin@example.com", "changeme123"); err != nil {
		t.Fatal(err)
	}
	admin := users.byEmail["admin@example.com"]
	if admin == nil || admin.Role != common.RoleAdmin {
		t.Fatalf("admin = %+v", admin)
	}
	if !utils.CheckPassword(admin.Password, "changeme123") {
		t.Error("password not hashed with the seeded value")
	}
}

func TestSeedAdminPromotesExisting(t *testing.T) {
	users := &seedUsers{byEmail: map[string]*user.User{
		"fan@example.com": {Model: gorm.Model{ID: 4}, Email: "fan@example.com", Role: common.RoleUser},
	}}
	if err := seedAdmin(users, "fan@example.com", "x"); err != nil {
		t.Fatal(err)
	}
	if len(users.promoted) != 1 || users.promoted[0] != 4 {
		t.Errorf("promoted = %v", users.promoted)
	}

	users.byEmail["fan@example.com"].Role = common.RoleAdmin
	users.promoted = nil
	if err := seedAdmin(users, "fan@example.com", "x"); err != nil {
		t.Fatal(err)
	}
	if len(users.promoted) != 0 {
		t.Error("existing admin promoted again")
	}
}
