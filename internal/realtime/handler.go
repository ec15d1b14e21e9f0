package realtime

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/DhavalSuthar-24/livescore/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	hub       *Hub
	jwtSecret string
}

func NewHandler(hub *Hub, jwtSecret string) *Handler {
	return &Handler{hub: hub, jwtSecret: jwtSecret}
}

// ServeWS godoc
// @Summary      Open a realtime connection
// @Description  Upgrades to a WebSocket. A valid ?token= joins user:<id>; ?match= joins match:<id>.
// @Tags         Realtime
// @Param        token  query  string  false  "Access token"
// @Param        match  query  int     false  "Match ID to follow"
// @Success      101  {string}  string  "Switching Protocols"
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /ws [get]
func (h *Handler) ServeWS(c *gin.Context) {
	var userID uint
	if raw := c.Query("token"); raw != "" {
		claims, err := token.ValidateJWT(raw, h.jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token")
			return
		}
		userID = claims.UserID
	}

	var matchID uint
	if raw := c.Query("match"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			responses.BadRequest(c, "Invalid match ID")
			return
		}
		matchID = uint(id)
	}

	conn, err := h.hub.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		log.Warn().Err(err).Msg("failed to upgrade websocket connection")
		return
	}

	client := newClient(h.hub, conn, userID)
	h.hub.register(client)
	if userID != 0 {
		h.hub.join(client, UserRoom(userID))
	}
	if matchID != 0 {
		h.hub.join(client, MatchRoom(matchID))
	}

	go client.writePump()
	go client.readPump()

	log.Info().
		Str("connection_id", client.ID).
		Uint("user_id", userID).
		Uint("match_id", matchID).
		Msg("websocket connection established")
}

// Stats godoc
// @Summary      Realtime connection stats
// @Tags         Realtime
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  responses.SuccessResponse{data=Stats}
// @Router       /ws/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Connection stats", h.hub.Stats())
}
