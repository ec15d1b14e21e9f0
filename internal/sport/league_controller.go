package sport

import (
	"net/http"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/external"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetAllLeagues godoc
// @Summary      List leagues
// @Tags         Leagues
// @Produce      json
// @Param        sport_id   query  int  false  "Sport ID"
// @Param        page       query  int  false  "Page"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  responses.PaginatedResponse{data=[]League}
// @Router       /leagues [get]
func (sc *SportController) GetAllLeagues(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	leagues, total, err := sc.repo.GetAllLeagues(page, pageSize, common.ParseOptionalUintQuery(c, "sport_id"))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve leagues", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Leagues retrieved successfully", leagues, total, page, pageSize)
}

// GetLeagueByID godoc
// @Summary      Get a league
// @Tags         Leagues
// @Produce      json
// @Param        id   path  int  true  "League ID"
// @Success      200  {object}  responses.SuccessResponse{data=League}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /leagues/{id} [get]
func (sc *SportController) GetLeagueByID(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid league ID")
		return
	}
	league, err := sc.repo.GetLeagueByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve league", err)
		return
	}
	if league == nil {
		responses.NotFound(c, "League")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "League retrieved successfully", league)
}

// CreateLeague godoc
// @Summary      Create a league
// @Tags         Leagues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  CreateLeagueRequest  true  "League"
// @Success      201  {object}  responses.SuccessResponse{data=League}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /leagues [post]
func (sc *SportController) CreateLeague(c *gin.Context) {
	var req CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if !sc.sportExists(c, req.SportID) {
		return
	}

	league := &League{
		Name:       req.Name,
		SportID:    req.SportID,
		Country:    req.Country,
		Season:     req.Season,
		LogoURL:    req.LogoURL,
		ExternalID: req.ExternalID,
	}
	if err := sc.repo.CreateLeague(league); err != nil {
		responses.InternalServerError(c, "Failed to create league", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "League created successfully", league)
}

// UpdateLeague godoc
// @Summary      Update a league
// @Tags         Leagues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                  true  "League ID"
// @Param        body  body  UpdateLeagueRequest  true  "Fields to change"
// @Success      200  {object}  responses.SuccessResponse{data=League}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /leagues/{id} [put]
func (sc *SportController) UpdateLeague(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid league ID")
		return
	}
	var req UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	league, err := sc.repo.GetLeagueByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve league", err)
		return
	}
	if league == nil {
		responses.NotFound(c, "League")
		return
	}

	if req.SportID != nil && *req.SportID != league.SportID {
		if !sc.sportExists(c, *req.SportID) {
			return
		}
		league.SportID = *req.SportID
		league.Sport = nil
	}
	if req.Name != nil {
		league.Name = *req.Name
	}
	if req.Country != nil {
		league.Country = *req.Country
	}
	if req.Season != nil {
		league.Season = *req.Season
	}
	if req.LogoURL != nil {
		league.LogoURL = *req.LogoURL
	}
	if req.ExternalID != nil {
		league.ExternalID = *req.ExternalID
	}

	if err := sc.repo.UpdateLeague(league); err != nil {
		responses.InternalServerError(c, "Failed to update league", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "League updated successfully", league)
}

// DeleteLeague godoc
// @Summary      Delete a league
// @Tags         Leagues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "League ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /leagues/{id} [delete]
func (sc *SportController) DeleteLeague(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid league ID")
		return
	}
	league, err := sc.repo.GetLeagueByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve league", err)
		return
	}
	if league == nil {
		responses.NotFound(c, "League")
		return
	}
	if err := sc.repo.DeleteLeague(id); err != nil {
		responses.InternalServerError(c, "Failed to delete league", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "League deleted successfully", nil)
}

// SyncLeague godoc
// @Summary      Import a league from the scoreboard provider
// @Description  Creates the league or refreshes the one already linked to external_id. The league's sport must already exist.
// @Tags         Leagues
// @Produce      json
// @Security     BearerAuth
// @Param        external_id  path  string  true  "Provider league ID"
// @Success      200  {object}  responses.SuccessResponse{data=League}
// @Success      201  {object}  responses.SuccessResponse{data=League}
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      502  {object}  responses.ErrorResponse
// @Router       /leagues/sync/{external_id} [post]
func (sc *SportController) SyncLeague(c *gin.Context) {
	externalID := c.Param("external_id")
	remote, err := sc.taxonomy.LookupLeague(c.Request.Context(), externalID)
	if err != nil {
		log.Warn().Err(err).Str("external_id", externalID).Msg("league sync: provider request failed")
		responses.SendError(c, http.StatusBadGateway, "League provider is unavailable")
		return
	}
	if remote == nil {
		responses.NotFound(c, "Provider league")
		return
	}

	sport, err := sc.repo.FindSportByName(remote.Sport)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve sport", err)
		return
	}
	if sport == nil {
		responses.SendError(c, http.StatusNotFound, "Sport "+remote.Sport+" not found, synchronize sports first")
		return
	}

	league := leagueFromRemote(remote, sport.ID)
	created, err := sc.repo.UpsertLeague(league)
	if err != nil {
		responses.InternalServerError(c, "Failed to save league", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	responses.SendSuccess(c, status, "League synchronized", league)
}

func leagueFromRemote(rl *external.ScoreboardLeague, sportID uint) *League {
	return &League{
		Name:       rl.Name,
		SportID:    sportID,
		Country:    rl.Country,
		Season:     rl.CurrentSeason,
		LogoURL:    rl.Badge,
		ExternalID: rl.ID,
	}
}

func (sc *SportController) sportExists(c *gin.Context, id uint) bool {
	sport, err := sc.repo.GetSportByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve sport", err)
		return false
	}
	if sport == nil {
		responses.NotFound(c, "Sport")
		return false
	}
	return true
}
