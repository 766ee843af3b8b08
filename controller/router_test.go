package controller

import (
	"aftas/auth"
	"aftas/repository"
	"aftas/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

const (
	open   = "aga-24-06-20"
	closed = "saf-24-06-11"
)

func fixedClock() service.Clock {
	return service.Clock{Now: func() time.Time { return now }, Location: time.UTC}
}

func setUpRouter(t *testing.T) (*gin.Engine, *service.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	stores := service.NewMemoryStores()
	for _, competition := range []*repository.Competition{
		{Code: open, Date: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), StartTime: "08:00", EndTime: "16:00", NumberOfParticipants: 2, Location: "Agadir"},
		{Code: closed, Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), StartTime: "08:00", EndTime: "16:00", NumberOfParticipants: 10, Location: "Safi"},
	} {
		_, err := stores.Competitions.Save(competition)
		require.NoError(t, err)
	}
	for _, name := range []string{"Amina", "Brahim", "Chaima"} {
		_, err := stores.Members.Save(&repository.Member{Name: name, FamilyName: "El Idrissi", AccessionDate: now})
		require.NoError(t, err)
	}
	r := gin.New()
	SetRoutes(r, &Dependencies{
		Stores:     stores,
		Clock:      fixedClock(),
		CacheStore: persistence.NewInMemoryStore(time.Minute),
		CacheTTL:   time.Minute,
	})
	return r, stores
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.CreateToken("test", []string{auth.PermissionAdmin}, time.Hour)
	require.NoError(t, err)
	return token
}

func do(r *gin.Engine, method string, path string, token string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &value))
	return value
}

func TestRegisterRequiresAdmin(t *testing.T) {
	r, _ := setUpRouter(t)
	body := RankingCreate{MemberNum: 1, CompetitionCode: open}

	assert.Equal(t, http.StatusUnauthorized, do(r, "POST", "/api/rankings", "", body).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "POST", "/api/rankings", "garbage", body).Code)

	member, err := auth.CreateToken("member", []string{}, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(r, "POST", "/api/rankings", member, body).Code)

	expired, err := auth.CreateToken("test", []string{auth.PermissionAdmin}, -time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(r, "POST", "/api/rankings", expired, body).Code)

	assert.Equal(t, http.StatusCreated, do(r, "POST", "/api/rankings", adminToken(t), body).Code)
}

func TestRegistrationErrors(t *testing.T) {
	r, _ := setUpRouter(t)
	token := adminToken(t)

	w := do(r, "POST", "/api/rankings", token, RankingCreate{MemberNum: 1, CompetitionCode: closed})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "registration window closed", decode[ErrorResponse](t, w).Error)

	w = do(r, "POST", "/api/rankings", token, RankingCreate{MemberNum: 42, CompetitionCode: open})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, "POST", "/api/rankings", token, map[string]any{"competition_code": open})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusCreated, do(r, "POST", "/api/rankings", token, RankingCreate{MemberNum: 1, CompetitionCode: open}).Code)
	require.Equal(t, http.StatusCreated, do(r, "POST", "/api/rankings", token, RankingCreate{MemberNum: 2, CompetitionCode: open}).Code)
	w = do(r, "POST", "/api/rankings", token, RankingCreate{MemberNum: 3, CompetitionCode: open})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "competition full", decode[ErrorResponse](t, w).Error)
}

func TestRankingLifecycle(t *testing.T) {
	r, _ := setUpRouter(t)
	token := adminToken(t)

	require.Equal(t, http.StatusCreated, do(r, "POST", "/api/rankings", token, RankingCreate{MemberNum: 1, CompetitionCode: open}).Code)

	w := do(r, "GET", "/api/rankings/1/"+open, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ranking := decode[RankingResponse](t, w)
	assert.Equal(t, "Amina", ranking.Member.Name)
	assert.Equal(t, "2024-06-20", ranking.Competition.Date)

	w = do(r, "PUT", "/api/rankings", token, RankingUpdate{MemberNum: 1, CompetitionCode: open, Score: 30, Rank: 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, decode[RankingResponse](t, w).Score)

	w = do(r, "DELETE", "/api/rankings/1/"+open, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, decode[RankingResponse](t, w).Score)

	assert.Equal(t, http.StatusNotFound, do(r, "GET", "/api/rankings/1/"+open, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, "DELETE", "/api/rankings/1/"+open, token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, "GET", "/api/rankings/one/"+open, "", nil).Code)
}

func TestCachedListingsAreInvalidated(t *testing.T) {
	r, _ := setUpRouter(t)
	token := adminToken(t)

	w := do(r, "GET", "/api/rankings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]RankingResponse](t, w))
	assert.Empty(t, decode[[]RankingResponse](t, do(r, "GET", "/api/competitions/"+open+"/rankings", "", nil)))

	require.Equal(t, http.StatusCreated, do(r, "POST", "/api/rankings", token, RankingCreate{MemberNum: 1, CompetitionCode: open}).Code)

	assert.Len(t, decode[[]RankingResponse](t, do(r, "GET", "/api/rankings", "", nil)), 1)
	assert.Len(t, decode[[]RankingResponse](t, do(r, "GET", "/api/competitions/"+open+"/rankings", "", nil)), 1)
}

func TestScoringThroughTheApi(t *testing.T) {
	r, stores := setUpRouter(t)
	token := adminToken(t)

	require.Equal(t, http.StatusCreated, do(r, "POST", "/api/levels", token, LevelCreate{Code: 1, Description: "common", Points: 2}).Code)
	require.Equal(t, http.StatusCreated, do(r, "POST", "/api/levels", token, LevelCreate{Code: 2, Description: "rare", Points: 10}).Code)
	require.Equal(t, http.StatusCreated, do(r, "POST", "/api/fish", token, FishCreate{Name: "sardine", AverageWeight: 0.1, LevelCode: 1}).Code)
	require.Equal(t, http.StatusCreated, do(r, "POST", "/api/fish", token, FishCreate{Name: "espadon", AverageWeight: 50, LevelCode: 2}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, "POST", "/api/fish", token, FishCreate{Name: "kraken", LevelCode: 9}).Code)
	assert.Len(t, decode[[]FishResponse](t, do(r, "GET", "/api/fish", "", nil)), 2)

	for _, num := range []int{1, 2} {
		_, err := stores.Rankings.Save(&repository.Ranking{MemberNum: num, CompetitionCode: open})
		require.NoError(t, err)
	}
	w := do(r, "POST", "/api/competitions/"+open+"/huntings", token, HuntingCreate{MemberNum: 1, FishName: "sardine", NumberOfFish: 3})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(r, "POST", "/api/competitions/"+open+"/huntings", token, HuntingCreate{MemberNum: 2, FishName: "espadon", NumberOfFish: 1})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusBadRequest, do(r, "POST", "/api/competitions/"+open+"/huntings", token, HuntingCreate{MemberNum: 2, FishName: "espadon"}).Code)
	assert.Len(t, decode[[]HuntingResponse](t, do(r, "GET", "/api/competitions/"+open+"/huntings", "", nil)), 2)

	// cache the unscored podium first
	assert.Empty(t, decode[[]RankingResponse](t, do(r, "GET", "/api/competitions/"+open+"/podium", "", nil)))

	assert.Equal(t, http.StatusUnauthorized, do(r, "POST", "/api/competitions/"+open+"/score", "", nil).Code)
	w = do(r, "POST", "/api/competitions/"+open+"/score", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[ScoreResponse](t, w).Success)

	podium := decode[[]RankingResponse](t, do(r, "GET", "/api/competitions/"+open+"/podium", "", nil))
	require.Len(t, podium, 2)
	assert.Equal(t, 2, podium[0].MemberNum)
	assert.Equal(t, 10, podium[0].Score)
	assert.Equal(t, 1, podium[0].Rank)
	assert.Equal(t, "Brahim", podium[0].Member.Name)
	assert.Equal(t, 6, podium[1].Score)

	standings := decode[[]service.Standing](t, do(r, "GET", "/api/competitions/"+open+"/standings", "", nil))
	assert.Equal(t, []service.Standing{{MemberNum: 2, Score: 10, Rank: 1}, {MemberNum: 1, Score: 6, Rank: 2}}, standings)

	assert.Equal(t, http.StatusNotFound, do(r, "POST", "/api/competitions/nope/score", token, nil).Code)
}

func TestCompetitionsAndMembers(t *testing.T) {
	r, _ := setUpRouter(t)
	token := adminToken(t)

	w := do(r, "POST", "/api/competitions", token, CompetitionCreate{
		Date: "2024-07-01", StartTime: "07:30", EndTime: "15:00", NumberOfParticipants: 12, Location: "Essaouira", Amount: 150,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ess-24-07-01", decode[CompetitionResponse](t, w).Code)

	w = do(r, "POST", "/api/competitions", token, CompetitionCreate{
		Date: "2024-05-01", StartTime: "07:30", EndTime: "15:00", NumberOfParticipants: 12, Location: "Essaouira",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, http.StatusBadRequest, do(r, "POST", "/api/competitions", token, CompetitionCreate{
		Date: "01/07/2024", StartTime: "07:30", EndTime: "15:00", NumberOfParticipants: 12, Location: "Essaouira",
	}).Code)

	assert.Len(t, decode[[]CompetitionResponse](t, do(r, "GET", "/api/competitions", "", nil)), 3)
	assert.Len(t, decode[[]CompetitionResponse](t, do(r, "GET", "/api/competitions?upcoming=true", "", nil)), 3)
	assert.Equal(t, "Safi", decode[CompetitionResponse](t, do(r, "GET", "/api/competitions/"+closed, "", nil)).Location)
	assert.Equal(t, http.StatusNotFound, do(r, "GET", "/api/competitions/nope", "", nil).Code)

	w = do(r, "POST", "/api/members", token, MemberCreate{Name: "Driss", FamilyName: "Tazi", IdentityDocument: "PASSPORT", IdentityNumber: "X1"})
	require.Equal(t, http.StatusCreated, w.Code)
	member := decode[MemberResponse](t, w)
	assert.Equal(t, 4, member.Num)
	assert.Equal(t, "2024-06-10", member.AccessionDate)
	assert.Equal(t, http.StatusBadRequest, do(r, "POST", "/api/members", token, MemberCreate{Name: "Driss", FamilyName: "Tazi", IdentityDocument: "BADGE"}).Code)

	assert.Len(t, decode[[]MemberResponse](t, do(r, "GET", "/api/members", "", nil)), 4)
	assert.Len(t, decode[[]MemberResponse](t, do(r, "GET", "/api/members?q=taz", "", nil)), 1)
	assert.Equal(t, "Driss", decode[MemberResponse](t, do(r, "GET", "/api/members/4", "", nil)).Name)
	assert.Equal(t, http.StatusNotFound, do(r, "GET", "/api/members/40", "", nil).Code)
}
