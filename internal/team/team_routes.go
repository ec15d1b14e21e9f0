package team

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/internal/search"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTeamRoutes sets up all team-related routes
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, users middleware.RoleLookup, indexer search.Indexer) {
	teamController := NewTeamController(NewTeamRepository(db), indexer)

	teams := router.Group("/teams")
	{
		teams.GET("", teamController.GetAllTeams)
		teams.GET("/:id", teamController.GetTeamByID)
	}

	admin := router.Group("/teams")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users), rmiddleware.AdminMiddleware())
	{
		admin.POST("", teamController.CreateTeam)
		admin.PUT("/:id", teamController.UpdateTeam)
		admin.DELETE("/:id", teamController.DeleteTeam)
	}
}
