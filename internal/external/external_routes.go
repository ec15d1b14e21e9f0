package external

import "github.com/gin-gonic/gin"

func RegisterExternalRoutes(router *gin.RouterGroup, cache *Cache, clients *Clients) {
	controller := NewExternalController(cache, clients)

	ext := router.Group("/external")
	{
		ext.GET("/live", controller.GetAllLive)
		ext.GET("/:source/live", controller.GetSourceLive)
		ext.GET("/cricket/matches/:id", controller.GetCricketMatch)
		ext.GET("/football/competitions/:code/matches", controller.GetCompetitionMatches)
		ext.GET("/scoreboard/leagues/:id/events", controller.GetLeagueEvents)
	}
}
