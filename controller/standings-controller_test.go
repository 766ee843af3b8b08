package controller

import (
	"aftas/repository"
	"aftas/service"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingsWebSocket(t *testing.T) {
	_, stores := setUpRouter(t)
	_, err := stores.Rankings.Save(&repository.Ranking{MemberNum: 1, CompetitionCode: open, Score: 4, Rank: 1})
	require.NoError(t, err)

	hub := NewStandingsHub()
	hub.now = func() time.Time { return now }
	rankingService := service.NewRankingService(stores, hub, fixedClock())
	r := gin.New()
	for _, route := range setupStandingsController(rankingService, hub) {
		r.Handle(route.Method, route.Path, route.HandlerFunc)
	}
	server := httptest.NewServer(r)
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/competitions/" + open + "/standings/ws"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var initial service.StandingsMessage
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Equal(t, open, initial.CompetitionCode)
	assert.Equal(t, []service.Standing{{MemberNum: 1, Score: 4, Rank: 1}}, initial.Standings)

	assert.Eventually(t, func() bool { return hub.Subscribers(open) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.PublishStandings(open, []*repository.Ranking{
		{MemberNum: 2, CompetitionCode: open, Score: 9, Rank: 1},
		{MemberNum: 1, CompetitionCode: open, Score: 4, Rank: 2},
	}))
	var pushed service.StandingsMessage
	require.NoError(t, conn.ReadJSON(&pushed))
	assert.Len(t, pushed.Standings, 2)
	assert.NotEqual(t, initial.Id, pushed.Id)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Subscribers(open) == 0 }, time.Second, 10*time.Millisecond)
}

func TestStandingsWebSocketUnknownCompetition(t *testing.T) {
	_, stores := setUpRouter(t)
	hub := NewStandingsHub()
	r := gin.New()
	for _, route := range setupStandingsController(service.NewRankingService(stores, hub, fixedClock()), hub) {
		r.Handle(route.Method, route.Path, route.HandlerFunc)
	}
	server := httptest.NewServer(r)
	defer server.Close()

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/competitions/nope/standings/ws", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	hub := NewStandingsHub()
	assert.NoError(t, hub.PublishStandings(open, nil))
	assert.Zero(t, hub.Subscribers(open))

	message := service.NewStandingsMessage(open, nil, now)
	serialized, err := json.Marshal(message)
	require.NoError(t, err)
	assert.Contains(t, string(serialized), open)
}
