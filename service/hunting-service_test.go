package service

import (
	"aftas/app_error"
	"aftas/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUpFish(t *testing.T, stores *Stores) {
	t.Helper()
	fishService := NewFishService(stores)
	_, err := fishService.SaveLevel(&repository.Level{Code: 1, Description: "common", Points: 3})
	require.NoError(t, err)
	_, err = fishService.SaveFish(&repository.Fish{Name: "sardine", AverageWeight: 0.1, LevelCode: 1})
	require.NoError(t, err)
}

func TestSaveFishRequiresLevel(t *testing.T) {
	stores := NewMemoryStores()
	fishService := NewFishService(stores)

	_, err := fishService.SaveFish(&repository.Fish{Name: "thon", LevelCode: 42})
	assert.True(t, app_error.IsNotFound(err))

	setUpFish(t, stores)
	fishes, err := fishService.GetAllFish()
	require.NoError(t, err)
	require.Len(t, fishes, 1)
	assert.Equal(t, 3, fishes[0].Level.Points)
}

func TestRecordHunting(t *testing.T) {
	_, stores, _ := setUp(t)
	setUpFish(t, stores)
	seedRanking(t, stores, 1, scoredOut)
	s := NewHuntingService(stores)

	hunting, err := s.RecordHunting(1, scoredOut, "sardine", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, hunting.NumberOfFish)
	assert.Equal(t, 3, hunting.LevelPoints())

	again, err := s.RecordHunting(1, scoredOut, "sardine", 3)
	require.NoError(t, err)
	assert.Equal(t, hunting.Id, again.Id)
	assert.Equal(t, 5, again.NumberOfFish)

	huntings, err := s.GetHuntingsForCompetition(scoredOut)
	require.NoError(t, err)
	require.Len(t, huntings, 1)
	assert.Equal(t, 5, huntings[0].NumberOfFish)
}

func TestRecordHuntingRejections(t *testing.T) {
	_, stores, _ := setUp(t)
	setUpFish(t, stores)
	seedRanking(t, stores, 1, scoredOut)
	s := NewHuntingService(stores)

	_, err := s.RecordHunting(1, scoredOut, "sardine", 0)
	assert.True(t, app_error.IsInvalidState(err))

	_, err = s.RecordHunting(99, scoredOut, "sardine", 1)
	assert.True(t, app_error.IsNotFound(err))

	_, err = s.RecordHunting(1, "nope", "sardine", 1)
	assert.True(t, app_error.IsNotFound(err))

	_, err = s.RecordHunting(1, scoredOut, "kraken", 1)
	assert.True(t, app_error.IsNotFound(err))

	// member 2 is not registered in the competition
	_, err = s.RecordHunting(2, scoredOut, "sardine", 1)
	assert.True(t, app_error.IsNotFound(err))

	_, err = s.GetHuntingsForCompetition("nope")
	assert.True(t, app_error.IsNotFound(err))
}

func TestRecordedHuntingsFeedScoring(t *testing.T) {
	rankingService, stores, _ := setUp(t)
	setUpFish(t, stores)
	s := NewHuntingService(stores)

	_, err := rankingService.Register(&repository.Ranking{MemberNum: 1, CompetitionCode: scoredOut})
	require.NoError(t, err)
	_, err = s.RecordHunting(1, scoredOut, "sardine", 4)
	require.NoError(t, err)

	_, err = rankingService.CalculateScores(scoredOut)
	require.NoError(t, err)

	ranking, err := rankingService.GetRankingById(repository.RankingId{MemberNum: 1, CompetitionCode: scoredOut})
	require.NoError(t, err)
	assert.Equal(t, 12, ranking.Score)
	assert.Equal(t, 1, ranking.Rank)
}
