package controller

import (
	"aftas/auth"
	"aftas/service"
	"strings"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

const basePath = "/api"

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RoleRequired  []string
	Cached        bool
}

// Dependencies are the collaborators shared by all controllers.
type Dependencies struct {
	Stores     *service.Stores
	Clock      service.Clock
	CacheStore persistence.CacheStore
	CacheTTL   time.Duration
	// Publisher receives standings in addition to the websocket subscribers
	Publisher service.StandingsPublisher
}

func SetRoutes(r *gin.Engine, deps *Dependencies) {
	hub := NewStandingsHub()
	publisher := service.MultiPublisher{hub}
	if deps.Publisher != nil {
		publisher = append(publisher, deps.Publisher)
	}
	rankingService := service.NewRankingService(deps.Stores, publisher, deps.Clock)
	invalidator := newCacheInvalidator(deps.CacheStore)

	routes := make([]RouteInfo, 0)
	routes = append(routes, setupRankingController(rankingService, invalidator)...)
	routes = append(routes, setupCompetitionController(deps, rankingService, invalidator)...)
	routes = append(routes, setupMemberController(deps)...)
	routes = append(routes, setupFishController(deps)...)
	routes = append(routes, setupStandingsController(rankingService, hub)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RoleRequired))
		}
		if route.Cached && deps.CacheStore != nil {
			handlerfuncs = append(handlerfuncs, cache.CachePage(deps.CacheStore, deps.CacheTTL, route.HandlerFunc))
		} else {
			handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		}
		r.Handle(route.Method, basePath+route.Path, handlerfuncs...)
	}
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth"); err == nil {
		return cookie
	}
	return ""
}

func AuthMiddleware(roles []string) gin.HandlerFunc {
	return func(r *gin.Context) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		token, err := auth.ParseToken(tokenString)
		if err != nil || !token.Valid {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		claims := &auth.Claims{}
		if err := claims.FromJWTClaims(token.Claims); err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		if err := claims.Valid(); err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		if len(roles) == 0 || claims.HasAny(roles) {
			r.Next()
			return
		}
		r.JSON(403, gin.H{"error": "Unauthorized"})
		r.Abort()
	}
}

// cacheInvalidator drops cached listing pages after rankings change.
type cacheInvalidator struct {
	store persistence.CacheStore
}

func newCacheInvalidator(store persistence.CacheStore) *cacheInvalidator {
	return &cacheInvalidator{store: store}
}

func (i *cacheInvalidator) rankingsChanged(competitionCode string) {
	if i.store == nil {
		return
	}
	for _, path := range []string{
		"/rankings",
		"/competitions/" + competitionCode + "/rankings",
		"/competitions/" + competitionCode + "/podium",
	} {
		// a miss only means the page was never cached
		_ = i.store.Delete(cache.CreateKey(basePath + path))
	}
}
