package service

import (
	"aftas/app_error"
	"aftas/repository"
	"fmt"
	"strings"
	"unicode"
)

type CompetitionService struct {
	competitionRepository CompetitionStore
	clock                 Clock
}

func NewCompetitionService(stores *Stores, clock Clock) *CompetitionService {
	return &CompetitionService{
		competitionRepository: stores.Competitions,
		clock:                 clock,
	}
}

// CompetitionCode derives a code from the first three letters of the location and the date, e.g. "aga-24-06-21".
func CompetitionCode(competition *repository.Competition) string {
	prefix := make([]rune, 0, 3)
	for _, r := range strings.ToLower(competition.Location) {
		if unicode.IsLetter(r) {
			prefix = append(prefix, r)
		}
		if len(prefix) == 3 {
			break
		}
	}
	return fmt.Sprintf("%s-%s", string(prefix), competition.Date.Format("06-01-02"))
}

func (s *CompetitionService) CreateCompetition(competition *repository.Competition) (*repository.Competition, error) {
	if err := checkDateAvailable(competition, s.clock.now()); err != nil {
		return nil, err
	}
	if _, err := competition.StartInstant(s.clock.Location); err != nil {
		return nil, err
	}
	if competition.Code == "" {
		competition.Code = CompetitionCode(competition)
	}
	if _, err := s.competitionRepository.GetCompetitionByCode(competition.Code); err == nil {
		return nil, app_error.InvalidState(fmt.Sprintf("competition %s already exists", competition.Code))
	} else if !app_error.IsNotFound(err) {
		return nil, err
	}
	return s.competitionRepository.Save(competition)
}

func (s *CompetitionService) GetCompetitionByCode(code string) (*repository.Competition, error) {
	return s.competitionRepository.GetCompetitionByCode(code)
}

func (s *CompetitionService) GetAllCompetitions() ([]*repository.Competition, error) {
	return s.competitionRepository.FindAll()
}

func (s *CompetitionService) GetUpcomingCompetitions() ([]*repository.Competition, error) {
	return s.competitionRepository.FindUpcoming(s.clock.now())
}
