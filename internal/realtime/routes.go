package realtime

import (
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
)

func RegisterRealtimeRoutes(router gin.IRouter, hub *Hub, jwtSecret string, users middleware.RoleLookup) {
	handler := NewHandler(hub, jwtSecret)

	router.GET("/ws", handler.ServeWS)
	router.GET("/ws/stats",
		middleware.AuthMiddleware(jwtSecret, users),
		rmiddleware.AdminMiddleware(),
		handler.Stats,
	)
}
