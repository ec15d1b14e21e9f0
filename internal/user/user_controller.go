package user

import (
	"net/http"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo UserRepository
}

func NewUserController(repo UserRepository) *UserController {
	return &UserController{repo: repo}
}

// @Summary      List users
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int     false  "Page"
// @Param        page_size  query  int     false  "Page size"
// @Param        search     query  string  false  "Name or email contains"
// @Success      200  {object}  responses.PaginatedResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Router       /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	users, total, err := uc.repo.ListUsers(page, pageSize, c.Query("search"))
	if err != nil {
		responses.InternalServerError(c, "Failed to list users", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Users retrieved successfully", users, total, page, pageSize)
}

// @Summary      Get a user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "User ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /users/{id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	u, err := uc.repo.GetUserWithFavorites(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to load user", err)
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved successfully", u)
}

// @Summary      Change a user's role
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                true  "User ID"
// @Param        body  body  UpdateRoleRequest  true  "New role"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /users/{id}/role [put]
func (uc *UserController) UpdateRole(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	callerID, _ := common.GetUserIDFromContext(c)
	if callerID == id && req.Role != common.RoleAdmin {
		responses.BadRequest(c, "You cannot demote yourself")
		return
	}

	u, err := uc.repo.GetUserByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to load user", err)
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	if err := uc.repo.UpdateRole(id, req.Role); err != nil {
		responses.InternalServerError(c, "Failed to update role", err)
		return
	}
	u.Role = req.Role
	responses.SendSuccess(c, http.StatusOK, "Role updated successfully", u)
}

// @Summary      Delete a user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "User ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	if callerID, _ := common.GetUserIDFromContext(c); callerID == id {
		responses.BadRequest(c, "You cannot delete your own account here")
		return
	}

	u, err := uc.repo.GetUserByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to load user", err)
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	if err := uc.repo.DeleteUser(id); err != nil {
		responses.InternalServerError(c, "Failed to delete user", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
