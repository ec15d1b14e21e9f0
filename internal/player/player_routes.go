package player

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/external"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/internal/search"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, users middleware.RoleLookup, clients *external.Clients, indexer search.Indexer) {
	enricher := NewEnricher(clients.Scoreboard, clients.Cricket, clients.Football)
	playerController := NewPlayerController(NewPlayerRepository(db), team.NewTeamRepository(db), enricher, indexer)

	players := router.Group("/players")
	{
		players.GET("", playerController.GetAllPlayers)
		players.GET("/:id", playerController.GetPlayerByID)
	}

	admin := router.Group("/players")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users), rmiddleware.AdminMiddleware())
	{
		admin.POST("", playerController.CreatePlayer)
		admin.PUT("/:id", playerController.UpdatePlayer)
		admin.PATCH("/:id/stats", playerController.UpdateStats)
		admin.DELETE("/:id", playerController.DeletePlayer)
	}
}
