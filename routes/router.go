package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/livescore/config"
	_ "github.com/DhavalSuthar-24/livescore/docs"
	"github.com/DhavalSuthar-24/livescore/internal/auth"
	"github.com/DhavalSuthar-24/livescore/internal/commentary"
	"github.com/DhavalSuthar-24/livescore/internal/external"
	"github.com/DhavalSuthar-24/livescore/internal/favorite"
	"github.com/DhavalSuthar-24/livescore/internal/match"
	"github.com/DhavalSuthar-24/livescore/internal/metrics"
	"github.com/DhavalSuthar-24/livescore/internal/notification"
	"github.com/DhavalSuthar-24/livescore/internal/player"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/internal/search"
	"github.com/DhavalSuthar-24/livescore/internal/sport"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/DhavalSuthar-24/livescore/internal/user"
	"github.com/DhavalSuthar-24/livescore/internal/venue"
	"github.com/DhavalSuthar-24/livescore/pkg/logger"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
)

// Dependencies are the long-lived services the HTTP layer is built on.
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Hub     *realtime.Hub
	Cache   *external.Cache
	Clients *external.Clients
	Search  search.Engine
	Mirror  notification.Mirror
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.Middleware(), metrics.Middleware())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	}))
	r.Use(cors.New(corsConfig(deps.Config)))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/health", func(c *gin.Context) {
		responses.SendSuccess(c, http.StatusOK, "ok", gin.H{"env": deps.Config.App.Env})
	})

	users := user.NewUserRepository(deps.DB)
	realtime.RegisterRealtimeRoutes(r, deps.Hub, deps.Config.JWT.AccessTokenSecret, users)

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, deps.DB, deps.Config)
	user.RegisterUserRoutes(api, deps.DB, deps.Config)
	favorite.RegisterFavoriteRoutes(api, deps.DB, deps.Config, users)
	team.RegisterTeamRoutes(api, deps.DB, deps.Config, users, deps.Search)
	player.RegisterPlayerRoutes(api, deps.DB, deps.Config, users, deps.Clients, deps.Search)
	match.RegisterMatchRoutes(api, deps.DB, deps.Config, users, deps.Hub)
	commentary.RegisterCommentaryRoutes(api, deps.DB, deps.Config, users, deps.Hub)
	notification.RegisterNotificationRoutes(api, deps.DB, deps.Config, users, deps.Hub, deps.Mirror)
	sport.RegisterSportRoutes(api, deps.DB, deps.Config, users, deps.Clients.Scoreboard)
	venue.RegisterVenueRoutes(api, deps.DB, deps.Config, users, deps.Clients.Scoreboard)
	external.RegisterExternalRoutes(api, deps.Cache, deps.Clients)
	search.RegisterSearchRoutes(api, deps.Search)

	r.NoRoute(staticFrontend(deps.Config.App.StaticDir))
	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = []string{cfg.App.FrontendURL}
	if !cfg.IsProduction() {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	return c
}

// staticFrontend serves the built frontend for every non-API path, falling
// back to index.html so client-side routes resolve.
func staticFrontend(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/api" || c.Request.Method != http.MethodGet {
			responses.SendError(c, http.StatusNotFound, "Route not found")
			return
		}
		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			responses.SendError(c, http.StatusNotFound, "Route not found")
			return
		}
		c.File(index)
	}
}
