package main

import (
	"aftas/config"
	"aftas/controller"
	"aftas/docs"
	"aftas/service"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           Aftas Backend API
// @version         1.0
// @description     Members, competitions, catches and rankings of the Aftas fishing club.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	t := time.Now()
	if config.IsProduction() {
		log.SetFormatter(log.JSONFormatter)
	}

	cfg := config.Env()
	stores, err := initStores(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Error("Failed to set trusted proxies", "error", err)
		return
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r)

	deps := &controller.Dependencies{
		Stores:     stores,
		Clock:      service.SystemClock(cfg.Location()),
		CacheStore: persistence.NewInMemoryStore(cfg.RankingsCacheTTL),
		CacheTTL:   cfg.RankingsCacheTTL,
	}
	if cfg.KafkaBroker != "" {
		publisher, err := service.NewKafkaStandingsPublisher()
		if err != nil {
			log.Fatal("Failed to initialize standings publisher", "error", err)
		}
		deps.Publisher = publisher
	}
	controller.SetRoutes(r, deps)
	log.Info("Server started", "duration", time.Since(t), "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Error("Failed to start server", "error", err)
	}
}

func initStores(cfg *config.Config) (*service.Stores, error) {
	if config.IsInMemory() {
		log.Warn("Running with in-memory stores, data is lost on restart")
		return service.NewMemoryStores(), nil
	}
	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewGormStores(db), nil
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	competitionRe := regexp.MustCompile(`competitions/[^/]+(/|$)`)
	rankingRe := regexp.MustCompile(`rankings/\?/[^/]+$`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		url = competitionRe.ReplaceAllString(url, "competitions/?$1")
		url = rankingRe.ReplaceAllString(url, "rankings/?/?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins: []string{
			"http://localhost",
			"http://localhost:4200",
		},
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// Check the Access-Control-Request-Method header to determine the actual method being preflighted
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				cors.New(corsConfigGetOptions)(c)
			} else {
				cors.New(corsConfigOtherMethods)(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			cors.New(corsConfigGetOptions)(c)
		} else {
			cors.New(corsConfigOtherMethods)(c)
		}
	})
}
