package controller

import (
	"aftas/app_error"
	"aftas/auth"
	"aftas/repository"
	"aftas/service"
	"aftas/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type MemberController struct {
	memberService *service.MemberService
}

func NewMemberController(deps *Dependencies) *MemberController {
	return &MemberController{
		memberService: service.NewMemberService(deps.Stores, deps.Clock),
	}
}

func setupMemberController(deps *Dependencies) []RouteInfo {
	e := NewMemberController(deps)
	basePath := "/members"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getMembersHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createMemberHandler(), Authenticated: true, RoleRequired: []string{auth.PermissionAdmin}},
		{Method: "GET", Path: "/:num", HandlerFunc: e.getMemberHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetMembers
// @Description Fetches all members, filtered by name or family name with q
// @Tags member
// @Produce json
// @Param q query string false "Name filter"
// @Success 200 {array} MemberResponse
// @Router /members [get]
func (e *MemberController) getMembersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := e.memberService.SearchMembers(c.Query("q"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(members, toMemberResponse))
	}
}

// @id CreateMember
// @Tags member
// @Accept json
// @Produce json
// @Param member body MemberCreate true "Member to create"
// @Success 201 {object} MemberResponse
// @Security BearerAuth
// @Router /members [post]
func (e *MemberController) createMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var memberCreate MemberCreate
		if err := c.ShouldBindJSON(&memberCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		model, err := memberCreate.toModel()
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		member, err := e.memberService.CreateMember(model)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toMemberResponse(member))
	}
}

// @id GetMember
// @Tags member
// @Produce json
// @Param num path int true "Member number"
// @Success 200 {object} MemberResponse
// @Failure 404 {object} ErrorResponse
// @Router /members/{num} [get]
func (e *MemberController) getMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		num, err := strconv.Atoi(c.Param("num"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		member, err := e.memberService.GetMemberByNum(num)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toMemberResponse(member))
	}
}

type MemberCreate struct {
	Name             string `json:"name" binding:"required"`
	FamilyName       string `json:"family_name" binding:"required"`
	AccessionDate    string `json:"accession_date"`
	Nationality      string `json:"nationality"`
	IdentityDocument string `json:"identity_document" binding:"omitempty,oneof=CIN CARTE_RESIDENCE PASSPORT"`
	IdentityNumber   string `json:"identity_number"`
}

func (e *MemberCreate) toModel() (*repository.Member, error) {
	member := &repository.Member{
		Name:             e.Name,
		FamilyName:       e.FamilyName,
		Nationality:      e.Nationality,
		IdentityDocument: repository.IdentityDocumentType(e.IdentityDocument),
		IdentityNumber:   e.IdentityNumber,
	}
	if e.AccessionDate != "" {
		date, err := time.Parse(time.DateOnly, e.AccessionDate)
		if err != nil {
			return nil, err
		}
		member.AccessionDate = date
	}
	return member, nil
}
