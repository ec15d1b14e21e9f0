package team

import (
	"net/http"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/search"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo    TeamRepository
	indexer search.Indexer
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository, indexer search.Indexer) *TeamController {
	return &TeamController{repo: repo, indexer: indexer}
}

// GetAllTeams godoc
// @Summary      List teams
// @Tags         Teams
// @Produce      json
// @Param        page       query  int     false  "Page"
// @Param        page_size  query  int     false  "Page size"
// @Param        sport      query  string  false  "Sport"
// @Param        search     query  string  false  "Name contains"
// @Success      200  {object}  responses.PaginatedResponse{data=[]Team}
// @Router       /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	filter := TeamFilter{Sport: c.Query("sport"), Search: c.Query("search")}

	teams, total, err := tc.repo.GetAllTeams(page, pageSize, filter)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, pageSize)
}

// GetTeamByID godoc
// @Summary      Get a team with its roster
// @Tags         Teams
// @Produce      json
// @Param        id   path  int  true  "Team ID"
// @Success      200  {object}  responses.SuccessResponse{data=Team}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /teams/{id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	team, err := tc.repo.GetTeamByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team", err)
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	roster, err := tc.repo.GetRoster(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team roster", err)
		return
	}
	if roster == nil {
		roster = []RosterPlayer{}
	}
	team.Players = roster
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// CreateTeam godoc
// @Summary      Create a team
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  CreateTeamRequest  true  "Team"
// @Success      201  {object}  responses.SuccessResponse{data=Team}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Router       /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	team := &Team{
		Name:        req.Name,
		ShortName:   req.ShortName,
		Sport:       req.Sport,
		Country:     req.Country,
		LogoURL:     req.LogoURL,
		Founded:     req.Founded,
		SocialMedia: datatypes.NewJSONType(req.SocialMedia),
		ExternalID:  req.ExternalID,
	}
	if err := tc.repo.CreateTeam(team); err != nil {
		responses.InternalServerError(c, "Failed to create team", err)
		return
	}
	tc.reindex(c, team)
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// UpdateTeam godoc
// @Summary      Update a team
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                true  "Team ID"
// @Param        body  body  UpdateTeamRequest  true  "Fields to change"
// @Success      200  {object}  responses.SuccessResponse{data=Team}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /teams/{id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	team, err := tc.repo.GetTeamByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team", err)
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.ShortName != nil {
		team.ShortName = *req.ShortName
	}
	if req.Sport != nil {
		team.Sport = *req.Sport
	}
	if req.Country != nil {
		team.Country = *req.Country
	}
	if req.LogoURL != nil {
		team.LogoURL = *req.LogoURL
	}
	if req.Founded != nil {
		team.Founded = *req.Founded
	}
	if req.SocialMedia != nil {
		team.SocialMedia = datatypes.NewJSONType(*req.SocialMedia)
	}
	if req.ExternalID != nil {
		team.ExternalID = *req.ExternalID
	}

	if err := tc.repo.UpdateTeam(team); err != nil {
		responses.InternalServerError(c, "Failed to update team", err)
		return
	}
	tc.reindex(c, team)
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary      Delete a team
// @Description  Soft-deletes the team; its players become team-less.
// @Tags         Teams
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Team ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /teams/{id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	exists, err := tc.repo.TeamExists(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team", err)
		return
	}
	if !exists {
		responses.NotFound(c, "Team")
		return
	}
	if err := tc.repo.DeleteTeam(id); err != nil {
		responses.InternalServerError(c, "Failed to delete team", err)
		return
	}
	if err := tc.indexer.Delete(c.Request.Context(), search.KindTeam, id); err != nil {
		log.Warn().Err(err).Uint("team_id", id).Msg("failed to remove team from search index")
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}

// reindex is best effort: the write already succeeded.
func (tc *TeamController) reindex(c *gin.Context, team *Team) {
	if err := tc.indexer.Index(c.Request.Context(), team.searchDocument()); err != nil {
		log.Warn().Err(err).Uint("team_id", team.ID).Msg("failed to index team")
	}
}
