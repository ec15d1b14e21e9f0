package venue

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterVenueRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, users middleware.RoleLookup, provider VenueLookup) {
	venueController := NewVenueController(NewVenueRepository(db), provider)

	venues := router.Group("/venues")
	{
		venues.GET("", venueController.GetAllVenues)
		venues.GET("/:id", venueController.GetVenueByID)
	}

	admin := router.Group("/venues")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users), rmiddleware.AdminMiddleware())
	{
		admin.POST("", venueController.CreateVenue)
		admin.POST("/sync/:external_id", venueController.SyncVenue)
		admin.PUT("/:id", venueController.UpdateVenue)
		admin.DELETE("/:id", venueController.DeleteVenue)
	}
}
