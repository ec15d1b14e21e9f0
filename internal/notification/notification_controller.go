package notification

import (
	"net/http"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type NotificationController struct {
	repo    NotificationRepository
	emitter realtime.Emitter
	mirror  Mirror
}

func NewNotificationController(repo NotificationRepository, emitter realtime.Emitter, mirror Mirror) *NotificationController {
	if emitter == nil {
		emitter = realtime.NopEmitter{}
	}
	if mirror == nil {
		mirror = nopMirror{}
	}
	return &NotificationController{repo: repo, emitter: emitter, mirror: mirror}
}

// GetNotifications godoc
// @Summary      Notifications for the current user
// @Description  Broadcasts plus the caller's personal notifications, newest first.
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread     query  bool  false  "Only unread"
// @Param        page       query  int   false  "Page"
// @Param        page_size  query  int   false  "Page size"
// @Success      200  {object}  responses.PaginatedResponse{data=[]Notification}
// @Router       /notifications [get]
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	page, pageSize := common.Pagination(c)
	items, total, err := nc.repo.ListForUser(userID, c.Query("unread") == "true", page, pageSize)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve notifications", err)
		return
	}
	if items == nil {
		items = []Notification{}
	}
	responses.SendPaginated(c, http.StatusOK, "Notifications retrieved successfully", items, total, page, pageSize)
}

// MarkRead godoc
// @Summary      Mark a notification read
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Notification ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /notifications/{id}/read [patch]
func (nc *NotificationController) MarkRead(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid notification ID")
		return
	}
	n, err := nc.repo.GetNotificationByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve notification", err)
		return
	}
	if n == nil || !n.VisibleTo(userID) {
		responses.NotFound(c, "Notification")
		return
	}
	if err := nc.repo.MarkRead(id, userID); err != nil {
		responses.InternalServerError(c, "Failed to mark notification read", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Notification marked as read", gin.H{"id": id, "read": true})
}

// MarkAllRead godoc
// @Summary      Mark every visible notification read
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  responses.SuccessResponse
// @Router       /notifications/read-all [post]
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	marked, err := nc.repo.MarkAllRead(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to mark notifications read", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "All notifications marked as read", gin.H{"marked": marked})
}

// CreateNotification godoc
// @Summary      Send a notification
// @Description  Without user_id the notification is broadcast to every client and mirrored to Telegram.
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  CreateNotificationRequest  true  "Notification"
// @Success      201  {object}  responses.SuccessResponse{data=Notification}
// @Router       /notifications [post]
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	adminID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	n := &Notification{
		Title:       req.Title,
		Message:     req.Message,
		Type:        req.Type,
		UserID:      req.UserID,
		MatchID:     req.MatchID,
		CreatedByID: adminID,
	}
	if n.Type == "" {
		n.Type = TypeInfo
	}
	if err := nc.repo.CreateNotification(n); err != nil {
		responses.InternalServerError(c, "Failed to create notification", err)
		return
	}

	if n.IsBroadcast() {
		nc.emitter.Broadcast(realtime.EventNotificationNew, n)
		go func(n Notification) {
			if err := nc.mirror.Publish(&n); err != nil {
				log.Warn().Err(err).Uint("notification_id", n.ID).Msg("failed to mirror notification")
			}
		}(*n)
	} else {
		nc.emitter.Emit(realtime.UserRoom(*n.UserID), realtime.EventNotificationNew, n)
	}
	responses.SendSuccess(c, http.StatusCreated, "Notification sent successfully", n)
}

// DeleteNotification godoc
// @Summary      Delete a notification
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Notification ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /notifications/{id} [delete]
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid notification ID")
		return
	}
	n, err := nc.repo.GetNotificationByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve notification", err)
		return
	}
	if n == nil {
		responses.NotFound(c, "Notification")
		return
	}
	if err := nc.repo.DeleteNotification(id); err != nil {
		responses.InternalServerError(c, "Failed to delete notification", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Notification deleted successfully", nil)
}
