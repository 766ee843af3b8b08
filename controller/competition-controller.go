package controller

import (
	"aftas/app_error"
	"aftas/auth"
	"aftas/repository"
	"aftas/service"
	"aftas/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type CompetitionController struct {
	competitionService *service.CompetitionService
	rankingService     *service.RankingService
	huntingService     *service.HuntingService
	invalidator        *cacheInvalidator
}

func NewCompetitionController(deps *Dependencies, rankingService *service.RankingService, invalidator *cacheInvalidator) *CompetitionController {
	return &CompetitionController{
		competitionService: service.NewCompetitionService(deps.Stores, deps.Clock),
		rankingService:     rankingService,
		huntingService:     service.NewHuntingService(deps.Stores),
		invalidator:        invalidator,
	}
}

func setupCompetitionController(deps *Dependencies, rankingService *service.RankingService, invalidator *cacheInvalidator) []RouteInfo {
	e := NewCompetitionController(deps, rankingService, invalidator)
	basePath := "/competitions"
	admin := []string{auth.PermissionAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getCompetitionsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createCompetitionHandler(), Authenticated: true, RoleRequired: admin},
		{Method: "GET", Path: "/:code", HandlerFunc: e.getCompetitionHandler()},
		{Method: "GET", Path: "/:code/rankings", HandlerFunc: e.getCompetitionRankingsHandler(), Cached: true},
		{Method: "GET", Path: "/:code/podium", HandlerFunc: e.getPodiumHandler(), Cached: true},
		{Method: "GET", Path: "/:code/standings", HandlerFunc: e.getStandingsHandler()},
		{Method: "POST", Path: "/:code/score", HandlerFunc: e.calculateScoresHandler(), Authenticated: true, RoleRequired: admin},
		{Method: "GET", Path: "/:code/huntings", HandlerFunc: e.getHuntingsHandler()},
		{Method: "POST", Path: "/:code/huntings", HandlerFunc: e.recordHuntingHandler(), Authenticated: true, RoleRequired: admin},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetCompetitions
// @Description Fetches all competitions, or only those from today on with upcoming=true
// @Tags competition
// @Produce json
// @Param upcoming query bool false "Only upcoming competitions"
// @Success 200 {array} CompetitionResponse
// @Router /competitions [get]
func (e *CompetitionController) getCompetitionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var competitions []*repository.Competition
		var err error
		if c.Query("upcoming") == "true" {
			competitions, err = e.competitionService.GetUpcomingCompetitions()
		} else {
			competitions, err = e.competitionService.GetAllCompetitions()
		}
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(competitions, toCompetitionResponse))
	}
}

// @id CreateCompetition
// @Description Creates a competition, the code is derived from location and date when omitted
// @Tags competition
// @Accept json
// @Produce json
// @Param competition body CompetitionCreate true "Competition to create"
// @Success 201 {object} CompetitionResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /competitions [post]
func (e *CompetitionController) createCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var competitionCreate CompetitionCreate
		if err := c.ShouldBindJSON(&competitionCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		model, err := competitionCreate.toModel()
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		competition, err := e.competitionService.CreateCompetition(model)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toCompetitionResponse(competition))
	}
}

// @id GetCompetition
// @Tags competition
// @Produce json
// @Param code path string true "Competition code"
// @Success 200 {object} CompetitionResponse
// @Failure 404 {object} ErrorResponse
// @Router /competitions/{code} [get]
func (e *CompetitionController) getCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competition, err := e.competitionService.GetCompetitionByCode(c.Param("code"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toCompetitionResponse(competition))
	}
}

// @id GetCompetitionRankings
// @Description Fetches the ranking entries of a competition in store order
// @Tags competition
// @Produce json
// @Param code path string true "Competition code"
// @Success 200 {array} RankingResponse
// @Failure 404 {object} ErrorResponse
// @Router /competitions/{code}/rankings [get]
func (e *CompetitionController) getCompetitionRankingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rankings, err := e.rankingService.GetRankingsForCompetition(c.Param("code"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(rankings, toRankingResponse))
	}
}

// @id GetPodium
// @Description Fetches the three best ranked entries of a scored competition
// @Tags competition
// @Produce json
// @Param code path string true "Competition code"
// @Success 200 {array} RankingResponse
// @Failure 404 {object} ErrorResponse
// @Router /competitions/{code}/podium [get]
func (e *CompetitionController) getPodiumHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		podium, err := e.rankingService.GetPodium(c.Param("code"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(podium, toRankingResponse))
	}
}

// @id GetStandings
// @Description Fetches the ranking entries of a competition ordered by rank
// @Tags competition
// @Produce json
// @Param code path string true "Competition code"
// @Success 200 {array} service.Standing
// @Failure 404 {object} ErrorResponse
// @Router /competitions/{code}/standings [get]
func (e *CompetitionController) getStandingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		standings, err := e.rankingService.GetStandings(c.Param("code"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(standings, service.ToStanding))
	}
}

// @id CalculateScores
// @Description Adds the points of every hunting to the ranking entries and ranks them. Running it twice counts huntings twice.
// @Tags competition
// @Produce json
// @Param code path string true "Competition code"
// @Success 200 {object} ScoreResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /competitions/{code}/score [post]
func (e *CompetitionController) calculateScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		ok, err := e.rankingService.CalculateScores(code)
		// earlier huntings may be applied even on failure
		e.invalidator.rankingsChanged(code)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, ScoreResponse{Success: ok})
	}
}

// @id GetHuntings
// @Tags hunting
// @Produce json
// @Param code path string true "Competition code"
// @Success 200 {array} HuntingResponse
// @Failure 404 {object} ErrorResponse
// @Router /competitions/{code}/huntings [get]
func (e *CompetitionController) getHuntingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		huntings, err := e.huntingService.GetHuntingsForCompetition(c.Param("code"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(huntings, toHuntingResponse))
	}
}

// @id RecordHunting
// @Description Records catches of a species by a registered member
// @Tags hunting
// @Accept json
// @Produce json
// @Param code path string true "Competition code"
// @Param hunting body HuntingCreate true "Catch to record"
// @Success 201 {object} HuntingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /competitions/{code}/huntings [post]
func (e *CompetitionController) recordHuntingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var huntingCreate HuntingCreate
		if err := c.ShouldBindJSON(&huntingCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		hunting, err := e.huntingService.RecordHunting(huntingCreate.MemberNum, c.Param("code"), huntingCreate.FishName, huntingCreate.NumberOfFish)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toHuntingResponse(hunting))
	}
}

type ScoreResponse struct {
	Success bool `json:"success"`
}

type CompetitionCreate struct {
	Code                 string  `json:"code"`
	Date                 string  `json:"date" binding:"required"`
	StartTime            string  `json:"start_time" binding:"required"`
	EndTime              string  `json:"end_time" binding:"required"`
	NumberOfParticipants int     `json:"number_of_participants" binding:"required,min=1"`
	Location             string  `json:"location" binding:"required"`
	Amount               float64 `json:"amount" binding:"min=0"`
}

func (e *CompetitionCreate) toModel() (*repository.Competition, error) {
	date, err := time.Parse(time.DateOnly, e.Date)
	if err != nil {
		return nil, err
	}
	return &repository.Competition{
		Code:                 e.Code,
		Date:                 date,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		NumberOfParticipants: e.NumberOfParticipants,
		Location:             e.Location,
		Amount:               e.Amount,
	}, nil
}

type HuntingCreate struct {
	MemberNum    int    `json:"member_num" binding:"required"`
	FishName     string `json:"fish_name" binding:"required"`
	NumberOfFish int    `json:"number_of_fish" binding:"required,min=1"`
}
