package service

import (
	"aftas/app_error"
	"aftas/repository"

	"github.com/charmbracelet/log"
)

type HuntingService struct {
	huntingRepository     HuntingStore
	memberRepository      MemberStore
	competitionRepository CompetitionStore
	fishRepository        FishStore
	rankingRepository     RankingStore
}

func NewHuntingService(stores *Stores) *HuntingService {
	return &HuntingService{
		huntingRepository:     stores.Huntings,
		memberRepository:      stores.Members,
		competitionRepository: stores.Competitions,
		fishRepository:        stores.Fishes,
		rankingRepository:     stores.Rankings,
	}
}

// RecordHunting logs numberOfFish catches of a species by a registered member.
// A member catching a species again in the same competition increments the existing record.
func (s *HuntingService) RecordHunting(memberNum int, competitionCode string, fishName string, numberOfFish int) (*repository.Hunting, error) {
	if numberOfFish <= 0 {
		return nil, app_error.InvalidState("number of fish must be positive")
	}
	if _, err := s.memberRepository.GetMemberByNum(memberNum); err != nil {
		return nil, err
	}
	if _, err := s.competitionRepository.GetCompetitionByCode(competitionCode); err != nil {
		return nil, err
	}
	fish, err := s.fishRepository.GetFishByName(fishName)
	if err != nil {
		return nil, err
	}
	id := repository.RankingId{MemberNum: memberNum, CompetitionCode: competitionCode}
	if _, err := s.rankingRepository.GetRankingById(id); err != nil {
		return nil, err
	}

	hunting, err := s.huntingRepository.GetHunting(memberNum, competitionCode, fishName)
	if err != nil && !app_error.IsNotFound(err) {
		return nil, err
	}
	if hunting == nil {
		hunting = &repository.Hunting{
			MemberNum:       memberNum,
			CompetitionCode: competitionCode,
			FishName:        fishName,
		}
	}
	hunting.NumberOfFish += numberOfFish
	saved, err := s.huntingRepository.Save(hunting)
	if err != nil {
		log.Error("failed to save hunting", "ranking", id, "fish", fishName, "error", err)
		return nil, err
	}
	saved.Fish = fish
	return saved, nil
}

func (s *HuntingService) GetHuntingsForCompetition(code string) ([]*repository.Hunting, error) {
	if _, err := s.competitionRepository.GetCompetitionByCode(code); err != nil {
		return nil, err
	}
	return s.huntingRepository.GetHuntingsForCompetition(code)
}
