package match

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterMatchRoutes sets up all match-related routes.
func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, users middleware.RoleLookup, emitter realtime.Emitter) {
	matchController := NewMatchController(NewGormMatchRepository(db), team.NewTeamRepository(db), emitter)

	public := router.Group("/matches")
	{
		public.GET("", matchController.GetMatches)
		public.GET("/live", matchController.GetLiveMatches)
		public.GET("/:id", matchController.GetMatchByID)
	}

	admin := router.Group("/matches")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users), rmiddleware.AdminMiddleware())
	{
		admin.POST("", matchController.CreateMatch)
		admin.PUT("/:id", matchController.UpdateMatch)
		admin.DELETE("/:id", matchController.DeleteMatch)
		admin.PATCH("/:id/score", matchController.UpdateScore)
		admin.PATCH("/:id/status", matchController.UpdateStatus)
	}
}
