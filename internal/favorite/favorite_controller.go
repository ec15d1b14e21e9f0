package favorite

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	repo FavoriteRepository
}

func NewFavoriteController(repo FavoriteRepository) *FavoriteController {
	return &FavoriteController{repo: repo}
}

// GetFavorites godoc
// @Summary      List the current user's favorites
// @Tags         Favorites
// @Produce      json
// @Security     BearerAuth
// @Param        type  query  string  false  "team, player or match"
// @Success      200  {object}  responses.SuccessResponse{data=[]Favorite}
// @Router       /favorites [get]
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	entityType := EntityType(c.Query("type"))
	if entityType != "" {
		if _, ok := entityTables[entityType]; !ok {
			responses.BadRequest(c, "type must be team, player or match")
			return
		}
	}
	favorites, err := fc.repo.ListFavorites(userID, entityType)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve favorites", err)
		return
	}
	if favorites == nil {
		favorites = []Favorite{}
	}
	responses.SendSuccess(c, http.StatusOK, "Favorites retrieved successfully", favorites)
}

// AddFavorite godoc
// @Summary      Favorite a team, player or match
// @Tags         Favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  CreateFavoriteRequest  true  "Favorite"
// @Success      201  {object}  responses.SuccessResponse{data=Favorite}
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /favorites [post]
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	exists, err := fc.repo.EntityExists(req.EntityType, req.EntityID)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up "+string(req.EntityType), err)
		return
	}
	if !exists {
		responses.NotFound(c, entityName(req.EntityType))
		return
	}

	existing, err := fc.repo.FindFavorite(userID, req.EntityType, req.EntityID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check favorites", err)
		return
	}
	if existing != nil {
		responses.Conflict(c, "Already in favorites")
		return
	}

	favorite := &Favorite{UserID: userID, EntityType: req.EntityType, EntityID: req.EntityID}
	if err := fc.repo.CreateFavorite(favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "Already in favorites")
			return
		}
		responses.InternalServerError(c, "Failed to add favorite", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Added to favorites", favorite)
}

// RemoveFavorite godoc
// @Summary      Remove a favorite
// @Tags         Favorites
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Favorite ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /favorites/{id} [delete]
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid favorite ID")
		return
	}
	favorite, err := fc.repo.GetFavoriteByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve favorite", err)
		return
	}
	// Another user's favorite is reported as missing.
	if favorite == nil || favorite.UserID != userID {
		responses.NotFound(c, "Favorite")
		return
	}
	if err := fc.repo.DeleteFavorite(id); err != nil {
		responses.InternalServerError(c, "Failed to remove favorite", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Removed from favorites", nil)
}

func entityName(t EntityType) string {
	switch t {
	case EntityTeam:
		return "Team"
	case EntityPlayer:
		return "Player"
	default:
		return "Match"
	}
}
