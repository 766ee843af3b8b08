package service

import (
	"aftas/app_error"
	"aftas/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompetitionCode(t *testing.T) {
	competition := &repository.Competition{Location: "Agadir", Date: day(2024, 6, 21)}
	assert.Equal(t, "aga-24-06-21", CompetitionCode(competition))

	short := &repository.Competition{Location: "El Jadida", Date: day(2025, 1, 2)}
	assert.Equal(t, "elj-25-01-02", CompetitionCode(short))
}

func TestCreateCompetition(t *testing.T) {
	s := NewCompetitionService(NewMemoryStores(), fixedClock())

	created, err := s.CreateCompetition(&repository.Competition{
		Date: day(2024, 6, 21), StartTime: "08:00", EndTime: "16:00", NumberOfParticipants: 20, Location: "Agadir",
	})
	require.NoError(t, err)
	assert.Equal(t, "aga-24-06-21", created.Code)

	found, err := s.GetCompetitionByCode("aga-24-06-21")
	require.NoError(t, err)
	assert.Equal(t, 20, found.NumberOfParticipants)

	_, err = s.CreateCompetition(&repository.Competition{
		Date: day(2024, 6, 21), StartTime: "09:00", EndTime: "16:00", NumberOfParticipants: 5, Location: "Agadir",
	})
	assert.True(t, app_error.IsInvalidState(err))
}

func TestCreateCompetitionRejections(t *testing.T) {
	s := NewCompetitionService(NewMemoryStores(), fixedClock())

	_, err := s.CreateCompetition(&repository.Competition{
		Date: day(2024, 6, 1), StartTime: "08:00", EndTime: "16:00", NumberOfParticipants: 20, Location: "Safi",
	})
	assert.Equal(t, app_error.ReasonDateNotAvailable, app_error.Reason(err))

	_, err = s.CreateCompetition(&repository.Competition{
		Date: day(2024, 7, 1), StartTime: "8h", EndTime: "16:00", NumberOfParticipants: 20, Location: "Safi",
	})
	assert.Error(t, err)
}

func TestUpcomingCompetitions(t *testing.T) {
	_, stores, _ := setUp(t)
	s := NewCompetitionService(stores, fixedClock())

	upcomingCompetitions, err := s.GetUpcomingCompetitions()
	require.NoError(t, err)
	codes := make([]string, 0)
	for _, competition := range upcomingCompetitions {
		codes = append(codes, competition.Code)
	}
	assert.Equal(t, []string{today, tomorrow, scoredOut, upcoming}, codes)

	all, err := s.GetAllCompetitions()
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestMemberService(t *testing.T) {
	s := NewMemberService(NewMemoryStores(), fixedClock())

	created, err := s.CreateMember(&repository.Member{Name: "Yassine", FamilyName: "Bennani"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Num)
	assert.Equal(t, day(2024, 6, 10), created.AccessionDate)

	_, err = s.CreateMember(&repository.Member{Name: "Salma", FamilyName: "Alaoui"})
	require.NoError(t, err)

	found, err := s.SearchMembers("ben")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Yassine", found[0].Name)

	all, err := s.SearchMembers("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = s.GetMemberByNum(7)
	assert.True(t, app_error.IsNotFound(err))
}
