package search

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NewEngine returns an Elasticsearch engine when url is set and reachable,
// otherwise the database fallback.
func NewEngine(ctx context.Context, url, index string, db *gorm.DB) Engine {
	if url == "" {
		return NewDatabaseEngine(db)
	}
	engine, err := NewElasticEngine(url, index)
	if err == nil {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		err = engine.EnsureIndex(ctx)
	}
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("elasticsearch unavailable, searching the database instead")
		return NewDatabaseEngine(db)
	}
	log.Info().Str("url", url).Str("index", index).Msg("search backed by elasticsearch")
	return engine
}

type SearchController struct {
	engine Searcher
}

func NewSearchController(engine Searcher) *SearchController {
	return &SearchController{engine: engine}
}

// Search godoc
// @Summary      Search teams and players
// @Tags         Search
// @Produce      json
// @Param        q      query  string  true   "Name to search for"
// @Param        type   query  string  false  "team or player"
// @Param        limit  query  int     false  "Max results (default 20, max 50)"
// @Success      200  {object}  responses.SuccessResponse{data=[]Hit}
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /search [get]
func (sc *SearchController) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		responses.BadRequest(c, "Query parameter q is required")
		return
	}
	kind := c.Query("type")
	if kind != "" && kind != KindTeam && kind != KindPlayer {
		responses.BadRequest(c, "type must be team or player")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 20
	}

	hits, err := sc.engine.Search(c.Request.Context(), q, kind, limit)
	if err != nil {
		responses.InternalServerError(c, "Search failed", err)
		return
	}
	if hits == nil {
		hits = []Hit{}
	}
	responses.SendSuccess(c, http.StatusOK, "Search results", hits)
}

func RegisterSearchRoutes(router *gin.RouterGroup, engine Searcher) {
	router.GET("/search", NewSearchController(engine).Search)
}
