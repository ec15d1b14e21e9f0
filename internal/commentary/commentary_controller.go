package commentary

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// MatchChecker is the part of the match repository commentary needs.
type MatchChecker interface {
	MatchExists(id uint) (bool, error)
}

type CommentaryController struct {
	repo    CommentaryRepository
	matches MatchChecker
	emitter realtime.Emitter
}

func NewCommentaryController(repo CommentaryRepository, matches MatchChecker, emitter realtime.Emitter) *CommentaryController {
	if emitter == nil {
		emitter = realtime.NopEmitter{}
	}
	return &CommentaryController{repo: repo, matches: matches, emitter: emitter}
}

// ListCommentary godoc
// @Summary      Commentary for a match, newest first
// @Tags         Commentary
// @Produce      json
// @Param        id     path   int  true   "Match ID"
// @Param        limit  query  int  false  "Entries to return (default 50, max 200)"
// @Success      200  {object}  responses.SuccessResponse{data=[]Commentary}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{id}/commentary [get]
func (cc *CommentaryController) ListCommentary(c *gin.Context) {
	matchID, ok := cc.matchID(c)
	if !ok {
		return
	}
	entries, err := cc.repo.ListByMatch(matchID, parseLimit(c.Query("limit")))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve commentary", err)
		return
	}
	if entries == nil {
		entries = []Commentary{}
	}
	responses.SendSuccess(c, http.StatusOK, "Commentary retrieved successfully", entries)
}

// AddCommentary godoc
// @Summary      Append a commentary entry
// @Description  Emits commentary:new to the match room.
// @Tags         Commentary
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                      true  "Match ID"
// @Param        body  body  CreateCommentaryRequest  true  "Entry"
// @Success      201  {object}  responses.SuccessResponse{data=Commentary}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{id}/commentary [post]
func (cc *CommentaryController) AddCommentary(c *gin.Context) {
	var req CreateCommentaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	matchID, ok := cc.matchID(c)
	if !ok {
		return
	}
	authorID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "general"
	}
	entry := &Commentary{
		MatchID:   matchID,
		AuthorID:  authorID,
		Period:    req.Period,
		EventType: eventType,
		Text:      req.Text,
	}
	if err := cc.repo.Append(entry); err != nil {
		responses.InternalServerError(c, "Failed to save commentary", err)
		return
	}
	cc.emitter.Emit(realtime.MatchRoom(matchID), realtime.EventCommentaryNew, entry)
	responses.SendSuccess(c, http.StatusCreated, "Commentary added successfully", entry)
}

// matchID parses the path id and writes 400/404 itself when the match is unusable.
func (cc *CommentaryController) matchID(c *gin.Context) (uint, bool) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return 0, false
	}
	exists, err := cc.matches.MatchExists(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match", err)
		return 0, false
	}
	if !exists {
		responses.NotFound(c, "Match")
		return 0, false
	}
	return id, true
}

func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
