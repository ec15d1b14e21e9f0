package user

import (
	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo)

	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, repo), rmiddleware.AdminMiddleware())
	{
		users.GET("", controller.ListUsers)
		users.GET("/:id", controller.GetUser)
		users.PUT("/:id/role", controller.UpdateRole)
		users.DELETE("/:id", controller.DeleteUser)
	}
}
