package controller

import (
	"aftas/app_error"
	"aftas/auth"
	"aftas/repository"
	"aftas/service"
	"aftas/utils"

	"github.com/gin-gonic/gin"
)

type FishController struct {
	fishService *service.FishService
}

func NewFishController(deps *Dependencies) *FishController {
	return &FishController{fishService: service.NewFishService(deps.Stores)}
}

func setupFishController(deps *Dependencies) []RouteInfo {
	e := NewFishController(deps)
	admin := []string{auth.PermissionAdmin}
	return []RouteInfo{
		{Method: "GET", Path: "/fish", HandlerFunc: e.getFishHandler()},
		{Method: "POST", Path: "/fish", HandlerFunc: e.createFishHandler(), Authenticated: true, RoleRequired: admin},
		{Method: "POST", Path: "/levels", HandlerFunc: e.createLevelHandler(), Authenticated: true, RoleRequired: admin},
	}
}

// @id GetFish
// @Tags fish
// @Produce json
// @Success 200 {array} FishResponse
// @Router /fish [get]
func (e *FishController) getFishHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		fishes, err := e.fishService.GetAllFish()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(fishes, toFishResponse))
	}
}

// @id CreateFish
// @Tags fish
// @Accept json
// @Produce json
// @Param fish body FishCreate true "Species to create"
// @Success 201 {object} FishResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /fish [post]
func (e *FishController) createFishHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var fishCreate FishCreate
		if err := c.ShouldBindJSON(&fishCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		fish, err := e.fishService.SaveFish(&repository.Fish{
			Name:          fishCreate.Name,
			AverageWeight: fishCreate.AverageWeight,
			LevelCode:     fishCreate.LevelCode,
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toFishResponse(fish))
	}
}

// @id CreateLevel
// @Tags fish
// @Accept json
// @Produce json
// @Param level body LevelCreate true "Level to create"
// @Success 201 {object} LevelResponse
// @Security BearerAuth
// @Router /levels [post]
func (e *FishController) createLevelHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var levelCreate LevelCreate
		if err := c.ShouldBindJSON(&levelCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		level, err := e.fishService.SaveLevel(&repository.Level{
			Code:        levelCreate.Code,
			Description: levelCreate.Description,
			Points:      levelCreate.Points,
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toLevelResponse(level))
	}
}

type FishCreate struct {
	Name          string  `json:"name" binding:"required"`
	AverageWeight float64 `json:"average_weight" binding:"min=0"`
	LevelCode     int     `json:"level_code" binding:"required"`
}

type LevelCreate struct {
	Code        int    `json:"code" binding:"required"`
	Description string `json:"description"`
	Points      int    `json:"points" binding:"required,min=1"`
}
