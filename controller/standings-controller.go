package controller

import (
	"aftas/app_error"
	"aftas/metrics"
	"aftas/repository"
	"aftas/service"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StandingsHub fans freshly computed standings out to websocket subscribers of a competition.
type StandingsHub struct {
	mu          sync.Mutex
	connections map[string]map[*websocket.Conn]bool
	now         func() time.Time
}

func NewStandingsHub() *StandingsHub {
	return &StandingsHub{
		connections: make(map[string]map[*websocket.Conn]bool),
		now:         time.Now,
	}
}

func (h *StandingsHub) subscribe(competitionCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[competitionCode]; !ok {
		h.connections[competitionCode] = make(map[*websocket.Conn]bool)
	}
	h.connections[competitionCode][conn] = true
	metrics.StandingsSubscribersGauge.Inc()
}

func (h *StandingsHub) unsubscribe(competitionCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(competitionCode, conn)
}

// remove must be called with mu held.
func (h *StandingsHub) remove(competitionCode string, conn *websocket.Conn) {
	if _, ok := h.connections[competitionCode][conn]; !ok {
		return
	}
	delete(h.connections[competitionCode], conn)
	if len(h.connections[competitionCode]) == 0 {
		delete(h.connections, competitionCode)
	}
	metrics.StandingsSubscribersGauge.Dec()
}

func (h *StandingsHub) Subscribers(competitionCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.connections[competitionCode])
}

func (h *StandingsHub) PublishStandings(competitionCode string, standings []*repository.Ranking) error {
	serialized, err := json.Marshal(service.NewStandingsMessage(competitionCode, standings, h.now()))
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.connections[competitionCode] {
		if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
			log.Debug("dropping standings subscriber", "competition", competitionCode, "err", err)
			metrics.StandingsPublishErrorCounter.WithLabelValues("websocket").Inc()
			conn.Close()
			h.remove(competitionCode, conn)
		}
	}
	return nil
}

type StandingsController struct {
	rankingService *service.RankingService
	hub            *StandingsHub
}

func setupStandingsController(rankingService *service.RankingService, hub *StandingsHub) []RouteInfo {
	e := &StandingsController{rankingService: rankingService, hub: hub}
	return []RouteInfo{
		{Method: "GET", Path: "/competitions/:code/standings/ws", HandlerFunc: e.webSocketHandler},
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

// @id StandingsWebSocket
// @Description Websocket for standings of a competition. The current standings are sent on connect, then every scoring run pushes the new standings.
// @Tags competition
// @Param code path string true "Competition code"
// @Success 200 {object} service.StandingsMessage
// @Failure 404 {object} ErrorResponse
// @Router /competitions/{code}/standings/ws [get]
func (e *StandingsController) webSocketHandler(c *gin.Context) {
	code := c.Param("code")
	standings, err := e.rankingService.GetStandings(code)
	if err != nil {
		app_error.Respond(c, err)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	serialized, err := json.Marshal(service.NewStandingsMessage(code, standings, e.hub.now()))
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
		return
	}

	e.hub.subscribe(code, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			e.hub.unsubscribe(code, conn)
			return
		}
	}
}
