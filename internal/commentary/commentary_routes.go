package commentary

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/match"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterCommentaryRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, users middleware.RoleLookup, emitter realtime.Emitter) {
	controller := NewCommentaryController(NewCommentaryRepository(db), match.NewGormMatchRepository(db), emitter)

	router.GET("/matches/:id/commentary", controller.ListCommentary)

	admin := router.Group("/matches")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users), rmiddleware.AdminMiddleware())
	admin.POST("/:id/commentary", controller.AddCommentary)
}
