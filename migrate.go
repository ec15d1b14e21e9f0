package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/commentary"
	"github.com/DhavalSuthar-24/livescore/internal/favorite"
	"github.com/DhavalSuthar-24/livescore/internal/match"
	"github.com/DhavalSuthar-24/livescore/internal/notification"
	"github.com/DhavalSuthar-24/livescore/internal/player"
	"github.com/DhavalSuthar-24/livescore/internal/sport"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/DhavalSuthar-24/livescore/internal/user"
	"github.com/DhavalSuthar-24/livescore/internal/venue"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := bootstrap(); err != nil {
				return err
			}
			return migrate(config.DB)
		},
	}
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&user.User{}, &user.RefreshToken{}, &favorite.Favorite{},
		&sport.Sport{}, &sport.League{}, &venue.Venue{},
		&team.Team{}, &player.Player{},
		&match.Match{}, &commentary.Commentary{},
		&notification.Notification{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info().Msg("database migrated")
	return nil
}
