package match

import (
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TeamChecker is the part of the team repository matches need.
type TeamChecker interface {
	TeamExists(id uint) (bool, error)
}

type MatchController struct {
	repo    MatchRepository
	teams   TeamChecker
	emitter realtime.Emitter
}

func NewMatchController(repo MatchRepository, teams TeamChecker, emitter realtime.Emitter) *MatchController {
	if emitter == nil {
		emitter = realtime.NopEmitter{}
	}
	return &MatchController{repo: repo, teams: teams, emitter: emitter}
}

// GetMatches godoc
// @Summary      List matches
// @Tags         Matches
// @Produce      json
// @Param        status     query  string  false  "upcoming, live, completed, postponed or cancelled"
// @Param        sport      query  string  false  "Sport"
// @Param        team_id    query  int     false  "Home or away team"
// @Param        page       query  int     false  "Page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  responses.PaginatedResponse{data=[]Match}
// @Router       /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	filter := MatchFilter{
		Status: MatchStatus(c.Query("status")),
		Sport:  c.Query("sport"),
		TeamID: common.ParseOptionalUintQuery(c, "team_id"),
	}
	matches, total, err := mc.repo.GetMatches(filter, page, pageSize)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve matches", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Matches retrieved successfully", matches, total, page, pageSize)
}

// GetLiveMatches godoc
// @Summary      Matches currently in play
// @Tags         Matches
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]Match}
// @Router       /matches/live [get]
func (mc *MatchController) GetLiveMatches(c *gin.Context) {
	matches, err := mc.repo.GetLiveMatches()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve live matches", err)
		return
	}
	if matches == nil {
		matches = []Match{}
	}
	responses.SendSuccess(c, http.StatusOK, "Live matches retrieved successfully", matches)
}

// GetMatchByID godoc
// @Summary      Get a match
// @Tags         Matches
// @Produce      json
// @Param        id   path  int  true  "Match ID"
// @Success      200  {object}  responses.SuccessResponse{data=Match}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", match)
}

// CreateMatch godoc
// @Summary      Create a match
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  CreateMatchRequest  true  "Match"
// @Success      201  {object}  responses.SuccessResponse{data=Match}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if !mc.teamsExist(c, req.HomeTeamID, req.AwayTeamID) {
		return
	}

	status := req.Status
	if status == "" {
		status = StatusMatchUpcoming
	}
	match := &Match{
		Title:      req.Title,
		Sport:      req.Sport,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Status:     status,
		StartTime:  req.StartTime,
		VenueID:    req.VenueID,
		LeagueID:   req.LeagueID,
		Summary:    req.Summary,
	}
	if err := mc.repo.CreateMatch(match); err != nil {
		responses.InternalServerError(c, "Failed to create match", err)
		return
	}
	mc.respondWithMatch(c, http.StatusCreated, "Match created successfully", match.ID)
}

// UpdateMatch godoc
// @Summary      Update a match
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Match ID"
// @Param        body  body  UpdateMatchRequest  true  "Fields to change"
// @Success      200  {object}  responses.SuccessResponse{data=Match}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}

	home, away := match.HomeTeamID, match.AwayTeamID
	if req.HomeTeamID != nil {
		home = *req.HomeTeamID
	}
	if req.AwayTeamID != nil {
		away = *req.AwayTeamID
	}
	if home == away {
		responses.BadRequest(c, "Home and away teams must differ")
		return
	}
	if (home != match.HomeTeamID || away != match.AwayTeamID) && !mc.teamsExist(c, home, away) {
		return
	}
	match.HomeTeamID, match.AwayTeamID = home, away

	if req.Title != nil {
		match.Title = *req.Title
	}
	if req.Sport != nil {
		match.Sport = *req.Sport
	}
	if req.StartTime != nil {
		match.StartTime = req.StartTime
	}
	if req.VenueID != nil {
		match.VenueID = req.VenueID
	}
	if req.LeagueID != nil {
		match.LeagueID = req.LeagueID
	}
	if req.Summary != nil {
		match.Summary = *req.Summary
	}
	if req.Result != nil {
		match.Result = *req.Result
	}

	if err := mc.repo.UpdateMatch(match); err != nil {
		responses.InternalServerError(c, "Failed to update match", err)
		return
	}
	mc.respondWithMatch(c, http.StatusOK, "Match updated successfully", match.ID)
}

// DeleteMatch godoc
// @Summary      Delete a match
// @Tags         Matches
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Match ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	exists, err := mc.repo.MatchExists(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match", err)
		return
	}
	if !exists {
		responses.NotFound(c, "Match")
		return
	}
	if err := mc.repo.DeleteMatch(id); err != nil {
		responses.InternalServerError(c, "Failed to delete match", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}

// UpdateScore godoc
// @Summary      Update the score
// @Description  Emits score:update to the match room.
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Match ID"
// @Param        body  body  UpdateScoreRequest  true  "Scores"
// @Success      200  {object}  responses.SuccessResponse{data=ScoreUpdate}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{id}/score [patch]
func (mc *MatchController) UpdateScore(c *gin.Context) {
	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}

	if err := mc.repo.UpdateScore(match.ID, req.HomeScore, req.AwayScore, req.Summary); err != nil {
		responses.InternalServerError(c, "Failed to update score", err)
		return
	}

	summary := match.Summary
	if req.Summary != nil {
		summary = *req.Summary
	}
	update := ScoreUpdate{
		MatchID:   match.ID,
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
		Summary:   summary,
		Status:    match.Status,
		UpdatedAt: time.Now().UTC(),
	}
	mc.emitter.Emit(realtime.MatchRoom(match.ID), realtime.EventScoreUpdate, update)
	log.Info().Uint("match_id", match.ID).Str("home", req.HomeScore).Str("away", req.AwayScore).Msg("score updated")
	responses.SendSuccess(c, http.StatusOK, "Score updated successfully", update)
}

// UpdateStatus godoc
// @Summary      Change the match status
// @Description  Emits match:status to the match room and to every connected client.
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                  true  "Match ID"
// @Param        body  body  UpdateStatusRequest  true  "Status"
// @Success      200  {object}  responses.SuccessResponse{data=StatusUpdate}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{id}/status [patch]
func (mc *MatchController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}

	if err := mc.repo.UpdateStatus(match.ID, req.Status, req.Result); err != nil {
		responses.InternalServerError(c, "Failed to update status", err)
		return
	}

	result := match.Result
	if req.Result != nil {
		result = *req.Result
	}
	update := StatusUpdate{
		MatchID:   match.ID,
		Title:     match.Title,
		Status:    req.Status,
		Result:    result,
		UpdatedAt: time.Now().UTC(),
	}
	mc.emitter.Emit(realtime.MatchRoom(match.ID), realtime.EventMatchStatus, update)
	mc.emitter.Broadcast(realtime.EventMatchStatus, update)
	log.Info().Uint("match_id", match.ID).Str("status", string(req.Status)).Msg("match status changed")
	responses.SendSuccess(c, http.StatusOK, "Status updated successfully", update)
}

func (mc *MatchController) loadMatch(c *gin.Context) (*Match, bool) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return nil, false
	}
	match, err := mc.repo.GetMatchByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match", err)
		return nil, false
	}
	if match == nil {
		responses.NotFound(c, "Match")
		return nil, false
	}
	return match, true
}

func (mc *MatchController) teamsExist(c *gin.Context, ids ...uint) bool {
	for _, id := range ids {
		ok, err := mc.teams.TeamExists(id)
		if err != nil {
			responses.InternalServerError(c, "Failed to check team", err)
			return false
		}
		if !ok {
			responses.NotFound(c, "Team")
			return false
		}
	}
	return true
}

// respondWithMatch reloads the match so the response carries its preloaded references.
func (mc *MatchController) respondWithMatch(c *gin.Context, status int, message string, id uint) {
	match, err := mc.repo.GetMatchByID(id)
	if err != nil || match == nil {
		responses.InternalServerError(c, "Failed to reload match", err)
		return
	}
	responses.SendSuccess(c, status, message, match)
}
