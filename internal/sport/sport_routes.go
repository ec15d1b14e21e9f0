package sport

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSportRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, users middleware.RoleLookup, taxonomy Taxonomy) {
	sportController := NewSportController(NewSportRepository(db), taxonomy)

	publicSports := router.Group("/sports")
	{
		publicSports.GET("", sportController.GetAllSports)
		publicSports.GET("/:id", sportController.GetSportByID)
	}
	publicLeagues := router.Group("/leagues")
	{
		publicLeagues.GET("", sportController.GetAllLeagues)
		publicLeagues.GET("/:id", sportController.GetLeagueByID)
	}

	authenticated := router.Group("/")
	authenticated.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users), rmiddleware.AdminMiddleware())
	{
		adminSports := authenticated.Group("/sports")
		{
			adminSports.POST("", sportController.CreateSport)
			adminSports.POST("/sync", sportController.SyncSports)
			adminSports.PUT("/:id", sportController.UpdateSport)
			adminSports.DELETE("/:id", sportController.DeleteSport)
		}

		adminLeagues := authenticated.Group("/leagues")
		{
			adminLeagues.POST("", sportController.CreateLeague)
			adminLeagues.POST("/sync/:external_id", sportController.SyncLeague)
			adminLeagues.PUT("/:id", sportController.UpdateLeague)
			adminLeagues.DELETE("/:id", sportController.DeleteLeague)
		}
	}
}
