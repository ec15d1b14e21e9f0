package sport

import (
	"context"
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/external"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Taxonomy is the scoreboard provider's sport and league catalogue.
type Taxonomy interface {
	AllSports(ctx context.Context) ([]external.ScoreboardSport, error)
	LeaguesBySport(ctx context.Context, sport string) ([]external.ScoreboardLeague, error)
	LookupLeague(ctx context.Context, id string) (*external.ScoreboardLeague, error)
}

type SportController struct {
	repo     SportRepository
	taxonomy Taxonomy
}

func NewSportController(repo SportRepository, taxonomy Taxonomy) *SportController {
	return &SportController{repo: repo, taxonomy: taxonomy}
}

// GetAllSports godoc
// @Summary      List sports
// @Tags         Sports
// @Produce      json
// @Param        page       query  int     false  "Page"
// @Param        page_size  query  int     false  "Page size"
// @Param        search     query  string  false  "Name or description contains"
// @Success      200  {object}  responses.PaginatedResponse{data=[]Sport}
// @Router       /sports [get]
func (sc *SportController) GetAllSports(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	sports, total, err := sc.repo.GetAllSports(page, pageSize, c.Query("search"))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve sports", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Sports retrieved successfully", sports, total, page, pageSize)
}

// GetSportByID godoc
// @Summary      Get a sport
// @Tags         Sports
// @Produce      json
// @Param        id   path  int  true  "Sport ID"
// @Success      200  {object}  responses.SuccessResponse{data=Sport}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /sports/{id} [get]
func (sc *SportController) GetSportByID(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid sport ID")
		return
	}
	sport, err := sc.repo.GetSportByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve sport", err)
		return
	}
	if sport == nil {
		responses.NotFound(c, "Sport")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport retrieved successfully", sport)
}

// CreateSport godoc
// @Summary      Create a sport
// @Tags         Sports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  CreateSportRequest  true  "Sport"
// @Success      201  {object}  responses.SuccessResponse{data=Sport}
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /sports [post]
func (sc *SportController) CreateSport(c *gin.Context) {
	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	existing, err := sc.repo.FindSportByName(req.Name)
	if err != nil {
		responses.InternalServerError(c, "Failed to check sport name", err)
		return
	}
	if existing != nil {
		responses.Conflict(c, "A sport with this name already exists")
		return
	}

	sport := &Sport{
		Name:        req.Name,
		Format:      req.Format,
		Description: req.Description,
		IconURL:     req.IconURL,
		ExternalID:  req.ExternalID,
	}
	if err := sc.repo.CreateSport(sport); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "A sport with this name already exists")
			return
		}
		responses.InternalServerError(c, "Failed to create sport", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Sport created successfully", sport)
}

// UpdateSport godoc
// @Summary      Update a sport
// @Tags         Sports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Sport ID"
// @Param        body  body  UpdateSportRequest  true  "Fields to change"
// @Success      200  {object}  responses.SuccessResponse{data=Sport}
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /sports/{id} [put]
func (sc *SportController) UpdateSport(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid sport ID")
		return
	}
	var req UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	sport, err := sc.repo.GetSportByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve sport", err)
		return
	}
	if sport == nil {
		responses.NotFound(c, "Sport")
		return
	}

	if req.Name != nil && *req.Name != sport.Name {
		other, err := sc.repo.FindSportByName(*req.Name)
		if err != nil {
			responses.InternalServerError(c, "Failed to check sport name", err)
			return
		}
		if other != nil && other.ID != sport.ID {
			responses.Conflict(c, "A sport with this name already exists")
			return
		}
		sport.Name = *req.Name
	}
	if req.Format != nil {
		sport.Format = *req.Format
	}
	if req.Description != nil {
		sport.Description = *req.Description
	}
	if req.IconURL != nil {
		sport.IconURL = *req.IconURL
	}
	if req.ExternalID != nil {
		sport.ExternalID = *req.ExternalID
	}

	if err := sc.repo.UpdateSport(sport); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "A sport with this name already exists")
			return
		}
		responses.InternalServerError(c, "Failed to update sport", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport updated successfully", sport)
}

// DeleteSport godoc
// @Summary      Delete a sport
// @Tags         Sports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Sport ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /sports/{id} [delete]
func (sc *SportController) DeleteSport(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid sport ID")
		return
	}
	sport, err := sc.repo.GetSportByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve sport", err)
		return
	}
	if sport == nil {
		responses.NotFound(c, "Sport")
		return
	}
	if err := sc.repo.DeleteSport(id); err != nil {
		responses.InternalServerError(c, "Failed to delete sport", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport deleted successfully", nil)
}

// SyncSports godoc
// @Summary      Import sports and leagues from the scoreboard provider
// @Description  Upserts by external ID. A failed league fetch for one sport is reported in failed and does not stop the sync.
// @Tags         Sports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  responses.SuccessResponse{data=SyncResult}
// @Failure      502  {object}  responses.ErrorResponse
// @Router       /sports/sync [post]
func (sc *SportController) SyncSports(c *gin.Context) {
	ctx := c.Request.Context()
	remote, err := sc.taxonomy.AllSports(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("sport sync: provider request failed")
		responses.SendError(c, http.StatusBadGateway, "Sports provider is unavailable")
		return
	}

	var result SyncResult
	for _, rs := range remote {
		sport := &Sport{
			Name:        rs.Name,
			Format:      rs.Format,
			Description: rs.Description,
			IconURL:     rs.Thumb,
			ExternalID:  rs.ID,
		}
		created, err := sc.repo.UpsertSport(sport)
		if err != nil {
			responses.InternalServerError(c, "Failed to save sport "+rs.Name, err)
			return
		}
		if created {
			result.SportsCreated++
		} else {
			result.SportsUpdated++
		}

		leagues, err := sc.taxonomy.LeaguesBySport(ctx, rs.Name)
		if err != nil {
			log.Warn().Err(err).Str("sport", rs.Name).Msg("sport sync: league fetch failed")
			result.Failed = append(result.Failed, rs.Name)
			continue
		}
		for i := range leagues {
			rl := &leagues[i]
			league := leagueFromRemote(rl, sport.ID)
			created, err := sc.repo.UpsertLeague(league)
			if err != nil {
				responses.InternalServerError(c, "Failed to save league "+rl.Name, err)
				return
			}
			if created {
				result.LeaguesCreated++
			} else {
				result.LeaguesUpdated++
			}
		}
	}

	log.Info().
		Int("sports_created", result.SportsCreated).
		Int("sports_updated", result.SportsUpdated).
		Int("leagues_created", result.LeaguesCreated).
		Int("leagues_updated", result.LeaguesUpdated).
		Msg("sport sync finished")
	responses.SendSuccess(c, http.StatusOK, "Sports synchronized", result)
}
