package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/user"
	"github.com/DhavalSuthar-24/livescore/utils"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the admin account from ADMIN_EMAIL and ADMIN_PASSWORD",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			return seedAdmin(user.NewUserRepository(config.DB), cfg.Admin.Email, cfg.Admin.Password)
		},
	}
}

// seedAdmin creates the admin or promotes an existing account with that email.
func seedAdmin(users user.UserRepository, email, password string) error {
	existing, err := users.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("look up admin: %w", err)
	}
	if existing != nil {
		if existing.Role == common.RoleAdmin {
			log.Info().Str("email", email).Msg("admin already exists")
			return nil
		}
		if err := users.UpdateRole(existing.ID, common.RoleAdmin); err != nil {
			return fmt.Errorf("promote admin: %w", err)
		}
		log.Info().Str("email", email).Msg("existing user promoted to admin")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &user.User{Name: "Admin", Email: email, Password: hash, Role: common.RoleAdmin}
	if err := users.CreateUser(admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Info().Str("email", email).Uint("id", admin.ID).Msg("admin created")
	return nil
}
