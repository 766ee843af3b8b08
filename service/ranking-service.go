package service

import (
	"aftas/metrics"
	"aftas/repository"
	"aftas/scoring"
	"aftas/utils"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
)

const podiumSize = 3

type RankingService struct {
	rankingRepository     RankingStore
	memberRepository      MemberStore
	competitionRepository CompetitionStore
	huntingRepository     HuntingStore
	publisher             StandingsPublisher
	clock                 Clock

	// scoring passes for the same competition must not interleave their read-modify-writes
	scoringMutex sync.Mutex
	scoringLocks map[string]*sync.Mutex
}

func NewRankingService(stores *Stores, publisher StandingsPublisher, clock Clock) *RankingService {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &RankingService{
		rankingRepository:     stores.Rankings,
		memberRepository:      stores.Members,
		competitionRepository: stores.Competitions,
		huntingRepository:     stores.Huntings,
		publisher:             publisher,
		clock:                 clock,
		scoringLocks:          make(map[string]*sync.Mutex),
	}
}

// GetRankingById returns the ranking with its member and competition attached.
func (s *RankingService) GetRankingById(id repository.RankingId) (*repository.Ranking, error) {
	ranking, err := s.rankingRepository.GetRankingById(id)
	if err != nil {
		return nil, err
	}
	member, err := s.memberRepository.GetMemberByNum(id.MemberNum)
	if err != nil {
		return nil, err
	}
	competition, err := s.competitionRepository.GetCompetitionByCode(id.CompetitionCode)
	if err != nil {
		return nil, err
	}
	ranking.Member = member
	ranking.Competition = competition
	return ranking, nil
}

// Register creates the ranking entry of a member in a competition once the
// competition date, registration window and capacity checks pass.
func (s *RankingService) Register(ranking *repository.Ranking) (*repository.Ranking, error) {
	member, err := s.memberRepository.GetMemberByNum(ranking.MemberNum)
	if err != nil {
		return nil, err
	}
	competition, err := s.competitionRepository.GetCompetitionByCode(ranking.CompetitionCode)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	if err := checkDateAvailable(competition, now); err != nil {
		s.rejected("register", ranking.Id(), err)
		return nil, err
	}
	if err := checkRegistrationWindow(competition, now); err != nil {
		s.rejected("register", ranking.Id(), err)
		return nil, err
	}
	if err := checkCapacity(s.rankingRepository, competition); err != nil {
		s.rejected("register", ranking.Id(), err)
		return nil, err
	}
	ranking.MemberNum = member.Num
	ranking.CompetitionCode = competition.Code
	saved, err := s.rankingRepository.Save(ranking)
	if err != nil {
		log.Error("failed to save ranking", "ranking", ranking.Id(), "error", err)
		return nil, err
	}
	metrics.RegistrationCounter.WithLabelValues("accepted").Inc()
	saved.Member = member
	saved.Competition = competition
	return saved, nil
}

// Update applies the score and rank of update to the existing entry with the same key.
// The 24 hour registration window does not apply to updates, the capacity check does.
func (s *RankingService) Update(update *repository.Ranking) (*repository.Ranking, error) {
	ranking, err := s.rankingRepository.GetRankingById(update.Id())
	if err != nil {
		return nil, err
	}
	member, err := s.memberRepository.GetMemberByNum(update.MemberNum)
	if err != nil {
		return nil, err
	}
	competition, err := s.competitionRepository.GetCompetitionByCode(update.CompetitionCode)
	if err != nil {
		return nil, err
	}
	if err := checkDateAvailable(competition, s.clock.now()); err != nil {
		s.rejected("update", update.Id(), err)
		return nil, err
	}
	if err := checkCapacity(s.rankingRepository, competition); err != nil {
		s.rejected("update", update.Id(), err)
		return nil, err
	}
	ranking.Score = update.Score
	ranking.Rank = update.Rank
	saved, err := s.rankingRepository.Save(ranking)
	if err != nil {
		log.Error("failed to save ranking", "ranking", ranking.Id(), "error", err)
		return nil, err
	}
	saved.Member = member
	saved.Competition = competition
	return saved, nil
}

func (s *RankingService) rejected(operation string, id repository.RankingId, err error) {
	if operation == "register" {
		metrics.RegistrationCounter.WithLabelValues("rejected").Inc()
	}
	log.Debug("ranking rejected", "operation", operation, "ranking", id, "reason", err)
}

// DeleteRanking removes the entry and returns it as it was before deletion.
func (s *RankingService) DeleteRanking(id repository.RankingId) (*repository.Ranking, error) {
	ranking, err := s.rankingRepository.GetRankingById(id)
	if err != nil {
		return nil, err
	}
	if err := s.rankingRepository.Delete(id); err != nil {
		return nil, err
	}
	return ranking, nil
}

func (s *RankingService) GetAllRankings() ([]*repository.Ranking, error) {
	return s.rankingRepository.FindAll()
}

func (s *RankingService) GetRankingsForCompetition(code string) ([]*repository.Ranking, error) {
	if _, err := s.competitionRepository.GetCompetitionByCode(code); err != nil {
		return nil, err
	}
	return s.rankingRepository.GetRankingsForCompetition(code)
}

// GetPodium returns the best three scored entries of a competition, ordered by rank.
func (s *RankingService) GetPodium(code string) ([]*repository.Ranking, error) {
	rankings, err := s.GetRankingsForCompetition(code)
	if err != nil {
		return nil, err
	}
	podium := scoring.Podium(rankings, podiumSize)
	for _, ranking := range podium {
		member, err := s.memberRepository.GetMemberByNum(ranking.MemberNum)
		if err != nil {
			return nil, err
		}
		ranking.Member = member
	}
	return podium, nil
}

func (s *RankingService) scoringLock(code string) *sync.Mutex {
	s.scoringMutex.Lock()
	defer s.scoringMutex.Unlock()
	lock, ok := s.scoringLocks[code]
	if !ok {
		lock = &sync.Mutex{}
		s.scoringLocks[code] = lock
	}
	return lock
}

// CalculateScores adds the points of every hunting of the competition to the
// matching ranking entry, then ranks the entries by score.
//
// Every hunting is written as soon as it is applied: a missing ranking entry
// aborts the pass but keeps the scores already written. Scores are not reset
// first, running the pass twice counts every hunting twice.
func (s *RankingService) CalculateScores(code string) (bool, error) {
	lock := s.scoringLock(code)
	lock.Lock()
	defer lock.Unlock()
	timer := prometheus.NewTimer(metrics.ScoringDuration)
	defer timer.ObserveDuration()

	if _, err := s.competitionRepository.GetCompetitionByCode(code); err != nil {
		return false, err
	}
	huntings, err := s.huntingRepository.GetHuntingsForCompetition(code)
	if err != nil {
		return false, err
	}
	for _, hunting := range huntings {
		points := scoring.HuntingPoints(hunting.LevelPoints(), hunting.NumberOfFish)
		id := repository.RankingId{MemberNum: hunting.MemberNum, CompetitionCode: hunting.CompetitionCode}
		ranking, err := s.rankingRepository.GetRankingById(id)
		if err != nil {
			log.Warn("hunting without ranking entry", "competition", code, "hunting", hunting.Id, "ranking", id)
			return false, err
		}
		ranking.Score += points
		if _, err := s.rankingRepository.Save(ranking); err != nil {
			return false, err
		}
		metrics.HuntingsAppliedCounter.Inc()
	}

	rankings, err := s.rankingRepository.GetRankingsForCompetition(code)
	if err != nil {
		return false, err
	}
	standings := scoring.AssignRanks(rankings)
	for _, ranking := range standings {
		if _, err := s.rankingRepository.Save(ranking); err != nil {
			return false, err
		}
	}
	log.Info("scores calculated", "competition", code, "huntings", len(huntings), "rankings", len(standings))

	if err := s.publisher.PublishStandings(code, standings); err != nil {
		log.Error("failed to publish standings", "competition", code, "error", err)
	}
	return true, nil
}

// GetStandings returns the entries of a competition ordered by rank, unranked entries last.
func (s *RankingService) GetStandings(code string) ([]*repository.Ranking, error) {
	rankings, err := s.GetRankingsForCompetition(code)
	if err != nil {
		return nil, err
	}
	ranked := scoring.Podium(rankings, len(rankings))
	unranked := utils.Filter(rankings, func(r *repository.Ranking) bool { return r.Rank == 0 })
	return append(ranked, unranked...), nil
}
