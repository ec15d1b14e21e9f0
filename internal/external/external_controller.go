package external

import (
	"net/http"
	"net/url"

	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ExternalController struct {
	cache   *Cache
	clients *Clients
}

func NewExternalController(cache *Cache, clients *Clients) *ExternalController {
	return &ExternalController{cache: cache, clients: clients}
}

// GetAllLive godoc
// @Summary      Cached live scores from every polled provider
// @Tags         External
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]Snapshot}
// @Router       /external/live [get]
func (ec *ExternalController) GetAllLive(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Live scores retrieved", ec.cache.All())
}

// GetSourceLive godoc
// @Summary      Cached live scores from one provider
// @Tags         External
// @Produce      json
// @Param        source  path  string  true  "cricket or football"
// @Success      200  {object}  responses.SuccessResponse{data=Snapshot}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /external/{source}/live [get]
func (ec *ExternalController) GetSourceLive(c *gin.Context) {
	source, ok := ParseSource(c.Param("source"))
	if !ok {
		responses.NotFound(c, "Source")
		return
	}
	snapshot, ok := ec.cache.Get(source)
	if !ok {
		snapshot = Snapshot{Source: source, Items: []LiveScore{}}
	}
	responses.SendSuccess(c, http.StatusOK, "Live scores retrieved", snapshot)
}

// GetCricketMatch godoc
// @Summary      Cricket match details from the provider
// @Tags         External
// @Produce      json
// @Param        id  path  string  true  "Provider match ID"
// @Success      200  {object}  responses.SuccessResponse{data=CricketMatch}
// @Router       /external/cricket/matches/{id} [get]
func (ec *ExternalController) GetCricketMatch(c *gin.Context) {
	match, err := ec.clients.Cricket.MatchInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Warn().Err(err).Str("match_id", c.Param("id")).Msg("cricket match lookup failed")
		match = nil
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved", match)
}

// GetCompetitionMatches godoc
// @Summary      Football competition matches from the provider
// @Tags         External
// @Produce      json
// @Param        code      path   string  true   "Competition code, e.g. PL"
// @Param        status    query  string  false  "SCHEDULED, LIVE, FINISHED..."
// @Param        matchday  query  int     false  "Matchday"
// @Success      200  {object}  responses.SuccessResponse{data=[]FootballMatch}
// @Router       /external/football/competitions/{code}/matches [get]
func (ec *ExternalController) GetCompetitionMatches(c *gin.Context) {
	params := url.Values{}
	for _, key := range []string{"status", "matchday", "dateFrom", "dateTo"} {
		if v := c.Query(key); v != "" {
			params.Set(key, v)
		}
	}
	matches, err := ec.clients.Football.CompetitionMatches(c.Request.Context(), c.Param("code"), params)
	if err != nil {
		log.Warn().Err(err).Str("competition", c.Param("code")).Msg("football competition lookup failed")
	}
	if matches == nil {
		matches = []FootballMatch{}
	}
	responses.SendSuccess(c, http.StatusOK, "Matches retrieved", matches)
}

// GetLeagueEvents godoc
// @Summary      Next or past events of a league from the scoreboard provider
// @Tags         External
// @Produce      json
// @Param        id    path   string  true   "Provider league ID"
// @Param        when  query  string  false  "next (default) or past"
// @Success      200  {object}  responses.SuccessResponse{data=[]ScoreboardEvent}
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /external/scoreboard/leagues/{id}/events [get]
func (ec *ExternalController) GetLeagueEvents(c *gin.Context) {
	when := c.DefaultQuery("when", "next")
	if when != "next" && when != "past" {
		responses.BadRequest(c, "when must be next or past")
		return
	}
	events, err := ec.clients.Scoreboard.LeagueEvents(c.Request.Context(), c.Param("id"), when == "past")
	if err != nil {
		log.Warn().Err(err).Str("league_id", c.Param("id")).Msg("league events lookup failed")
	}
	if events == nil {
		events = []ScoreboardEvent{}
	}
	responses.SendSuccess(c, http.StatusOK, "Events retrieved", events)
}
