package player

import (
	"net/http"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/models"
	"github.com/DhavalSuthar-24/livescore/internal/search"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// TeamChecker is the part of the team repository players need.
type TeamChecker interface {
	TeamExists(id uint) (bool, error)
}

type PlayerController struct {
	repo     PlayerRepository
	teams    TeamChecker
	enricher *Enricher
	indexer  search.Indexer
}

func NewPlayerController(repo PlayerRepository, teams TeamChecker, enricher *Enricher, indexer search.Indexer) *PlayerController {
	return &PlayerController{repo: repo, teams: teams, enricher: enricher, indexer: indexer}
}

// GetAllPlayers godoc
// @Summary      List players
// @Tags         Players
// @Produce      json
// @Param        page       query  int     false  "Page"
// @Param        page_size  query  int     false  "Page size"
// @Param        team_id    query  int     false  "Team ID"
// @Param        sport      query  string  false  "Sport"
// @Param        search     query  string  false  "Name contains"
// @Success      200  {object}  responses.PaginatedResponse{data=[]Player}
// @Router       /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	filter := PlayerFilter{
		TeamID: common.ParseOptionalUintQuery(c, "team_id"),
		Sport:  c.Query("sport"),
		Search: c.Query("search"),
	}
	players, total, err := pc.repo.GetAllPlayers(page, pageSize, filter)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve players", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, pageSize)
}

// GetPlayerByID godoc
// @Summary      Get a player
// @Description  Missing biography fields are backfilled from the external providers and saved, unless enrich=false.
// @Tags         Players
// @Produce      json
// @Param        id      path   int   true   "Player ID"
// @Param        enrich  query  bool  false  "Backfill from providers (default true)"
// @Success      200  {object}  responses.SuccessResponse{data=Player}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /players/{id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	p, err := pc.repo.GetPlayerByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player", err)
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if pc.enricher != nil && c.DefaultQuery("enrich", "true") != "false" {
		if changes := pc.enricher.Enrich(c.Request.Context(), p); len(changes) > 0 {
			if err := pc.repo.UpdateFields(p.ID, changes); err != nil {
				log.Warn().Err(err).Uint("player_id", p.ID).Msg("failed to persist enriched player fields")
			} else {
				pc.reindex(c, p)
			}
		}
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", p)
}

// CreatePlayer godoc
// @Summary      Create a player
// @Tags         Players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  CreatePlayerRequest  true  "Player"
// @Success      201  {object}  responses.SuccessResponse{data=Player}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if req.TeamID != nil && !pc.teamExists(c, *req.TeamID) {
		return
	}

	p := &Player{
		Name:        req.Name,
		TeamID:      req.TeamID,
		Sport:       req.Sport,
		Positions:   models.Positions(req.Positions),
		Nationality: req.Nationality,
		DateOfBirth: req.DateOfBirth,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		Stats:       datatypes.JSONMap(req.Stats),
		ExternalID:  req.ExternalID,
	}
	if p.Stats == nil {
		p.Stats = datatypes.JSONMap{}
	}
	if err := pc.repo.CreatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to create player", err)
		return
	}
	pc.reindex(c, p)
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// UpdatePlayer godoc
// @Summary      Update a player
// @Description  stats, when present, replaces the whole bag. Use PATCH /players/{id}/stats to merge.
// @Tags         Players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                  true  "Player ID"
// @Param        body  body  UpdatePlayerRequest  true  "Fields to change"
// @Success      200  {object}  responses.SuccessResponse{data=Player}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /players/{id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	p, err := pc.repo.GetPlayerByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player", err)
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	switch {
	case req.ClearTeam:
		p.TeamID = nil
		p.Team = nil
	case req.TeamID != nil:
		if !pc.teamExists(c, *req.TeamID) {
			return
		}
		p.TeamID = req.TeamID
		p.Team = nil
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Sport != nil {
		p.Sport = *req.Sport
	}
	if req.Positions != nil {
		p.Positions = models.Positions(req.Positions)
	}
	if req.Nationality != nil {
		p.Nationality = *req.Nationality
	}
	if req.DateOfBirth != nil {
		p.DateOfBirth = *req.DateOfBirth
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Stats != nil {
		p.Stats = datatypes.JSONMap(req.Stats)
	}
	if req.ExternalID != nil {
		p.ExternalID = *req.ExternalID
	}

	if err := pc.repo.UpdatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to update player", err)
		return
	}
	pc.reindex(c, p)
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// UpdateStats godoc
// @Summary      Merge keys into a player's stats
// @Tags         Players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Player ID"
// @Param        body  body  UpdateStatsRequest  true  "Stats to merge"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /players/{id}/stats [patch]
func (pc *PlayerController) UpdateStats(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	var req UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	stats, err := pc.repo.MergeStats(id, req.Stats)
	if err != nil {
		responses.InternalServerError(c, "Failed to update stats", err)
		return
	}
	if stats == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Stats updated successfully", gin.H{"id": id, "stats": stats})
}

// DeletePlayer godoc
// @Summary      Delete a player
// @Tags         Players
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Player ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	exists, err := pc.repo.PlayerExists(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player", err)
		return
	}
	if !exists {
		responses.NotFound(c, "Player")
		return
	}
	if err := pc.repo.DeletePlayer(id); err != nil {
		responses.InternalServerError(c, "Failed to delete player", err)
		return
	}
	if err := pc.indexer.Delete(c.Request.Context(), search.KindPlayer, id); err != nil {
		log.Warn().Err(err).Uint("player_id", id).Msg("failed to remove player from search index")
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}

// teamExists writes the error response itself and reports false when the
// caller should stop.
func (pc *PlayerController) teamExists(c *gin.Context, teamID uint) bool {
	ok, err := pc.teams.TeamExists(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check team", err)
		return false
	}
	if !ok {
		responses.NotFound(c, "Team")
		return false
	}
	return true
}

func (pc *PlayerController) reindex(c *gin.Context, p *Player) {
	if err := pc.indexer.Index(c.Request.Context(), p.searchDocument()); err != nil {
		log.Warn().Err(err).Uint("player_id", p.ID).Msg("failed to index player")
	}
}
