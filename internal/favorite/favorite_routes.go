package favorite

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterFavoriteRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, users middleware.RoleLookup) {
	controller := NewFavoriteController(NewFavoriteRepository(db))

	favorites := router.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, users))
	{
		favorites.GET("", controller.GetFavorites)
		favorites.POST("", controller.AddFavorite)
		favorites.DELETE("/:id", controller.RemoveFavorite)
	}
}
