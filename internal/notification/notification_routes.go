package notification

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterNotificationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, users middleware.RoleLookup, emitter realtime.Emitter, mirror Mirror) {
	controller := NewNotificationController(NewNotificationRepository(db), emitter, mirror)

	notifications := router.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users))
	{
		notifications.GET("", controller.GetNotifications)
		notifications.PATCH("/:id/read", controller.MarkRead)
		notifications.POST("/read-all", controller.MarkAllRead)
	}

	admin := router.Group("/notifications")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users), rmiddleware.AdminMiddleware())
	{
		admin.POST("", controller.CreateNotification)
		admin.DELETE("/:id", controller.DeleteNotification)
	}
}
