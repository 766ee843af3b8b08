package controller

import (
	"aftas/app_error"
	"aftas/auth"
	"aftas/repository"
	"aftas/service"
	"aftas/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	rankingService *service.RankingService
	invalidator    *cacheInvalidator
}

func NewRankingController(rankingService *service.RankingService, invalidator *cacheInvalidator) *RankingController {
	return &RankingController{
		rankingService: rankingService,
		invalidator:    invalidator,
	}
}

func setupRankingController(rankingService *service.RankingService, invalidator *cacheInvalidator) []RouteInfo {
	e := NewRankingController(rankingService, invalidator)
	basePath := "/rankings"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getRankingsHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createRankingHandler(), Authenticated: true, RoleRequired: []string{auth.PermissionAdmin}},
		{Method: "PUT", Path: "", HandlerFunc: e.updateRankingHandler(), Authenticated: true, RoleRequired: []string{auth.PermissionAdmin}},
		{Method: "GET", Path: "/:member_num/:competition_code", HandlerFunc: e.getRankingHandler()},
		{Method: "DELETE", Path: "/:member_num/:competition_code", HandlerFunc: e.deleteRankingHandler(), Authenticated: true, RoleRequired: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

func rankingIdFromPath(c *gin.Context) (repository.RankingId, bool) {
	memberNum, err := strconv.Atoi(c.Param("member_num"))
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return repository.RankingId{}, false
	}
	return repository.RankingId{MemberNum: memberNum, CompetitionCode: c.Param("competition_code")}, true
}

// @id GetRankings
// @Description Fetches all ranking entries
// @Tags ranking
// @Produce json
// @Success 200 {array} RankingResponse
// @Router /rankings [get]
func (e *RankingController) getRankingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rankings, err := e.rankingService.GetAllRankings()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(rankings, toRankingResponse))
	}
}

// @id RegisterRanking
// @Description Registers a member in a competition
// @Tags ranking
// @Accept json
// @Produce json
// @Param ranking body RankingCreate true "Ranking to create"
// @Success 201 {object} RankingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /rankings [post]
func (e *RankingController) createRankingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var rankingCreate RankingCreate
		if err := c.ShouldBindJSON(&rankingCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		ranking, err := e.rankingService.Register(rankingCreate.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidator.rankingsChanged(ranking.CompetitionCode)
		c.JSON(201, toRankingResponse(ranking))
	}
}

// @id UpdateRanking
// @Description Updates the score and rank of a ranking entry
// @Tags ranking
// @Accept json
// @Produce json
// @Param ranking body RankingUpdate true "Ranking to update"
// @Success 200 {object} RankingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /rankings [put]
func (e *RankingController) updateRankingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var rankingUpdate RankingUpdate
		if err := c.ShouldBindJSON(&rankingUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		ranking, err := e.rankingService.Update(rankingUpdate.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidator.rankingsChanged(ranking.CompetitionCode)
		c.JSON(200, toRankingResponse(ranking))
	}
}

// @id GetRanking
// @Description Fetches a ranking entry with its member and competition
// @Tags ranking
// @Produce json
// @Param member_num path int true "Member number"
// @Param competition_code path string true "Competition code"
// @Success 200 {object} RankingResponse
// @Failure 404 {object} ErrorResponse
// @Router /rankings/{member_num}/{competition_code} [get]
func (e *RankingController) getRankingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := rankingIdFromPath(c)
		if !ok {
			return
		}
		ranking, err := e.rankingService.GetRankingById(id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toRankingResponse(ranking))
	}
}

// @id DeleteRanking
// @Description Deletes a ranking entry and returns it
// @Tags ranking
// @Produce json
// @Param member_num path int true "Member number"
// @Param competition_code path string true "Competition code"
// @Success 200 {object} RankingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rankings/{member_num}/{competition_code} [delete]
func (e *RankingController) deleteRankingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := rankingIdFromPath(c)
		if !ok {
			return
		}
		ranking, err := e.rankingService.DeleteRanking(id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidator.rankingsChanged(id.CompetitionCode)
		c.JSON(200, toRankingResponse(ranking))
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type RankingCreate struct {
	MemberNum       int    `json:"member_num" binding:"required"`
	CompetitionCode string `json:"competition_code" binding:"required"`
	Score           int    `json:"score" binding:"min=0"`
}

type RankingUpdate struct {
	MemberNum       int    `json:"member_num" binding:"required"`
	CompetitionCode string `json:"competition_code" binding:"required"`
	Score           int    `json:"score" binding:"min=0"`
	Rank            int    `json:"rank" binding:"min=0"`
}

func (e *RankingCreate) toModel() *repository.Ranking {
	return &repository.Ranking{
		MemberNum:       e.MemberNum,
		CompetitionCode: e.CompetitionCode,
		Score:           e.Score,
	}
}

func (e *RankingUpdate) toModel() *repository.Ranking {
	return &repository.Ranking{
		MemberNum:       e.MemberNum,
		CompetitionCode: e.CompetitionCode,
		Score:           e.Score,
		Rank:            e.Rank,
	}
}
