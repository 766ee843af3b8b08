// Package memory provides in-process stores with the same contracts as the
// gorm repositories. Entities are copied on the way in and out so callers
// observe the same isolation they would get from a database.
package memory

import (
	"aftas/app_error"
	"aftas/repository"
	"sort"
	"strings"
	"sync"
	"time"
)

type MemberStore struct {
	mu      sync.RWMutex
	members map[int]repository.Member
	nextNum int
}

func NewMemberStore() *MemberStore {
	return &MemberStore{members: make(map[int]repository.Member), nextNum: 1}
}

func (s *MemberStore) GetMemberByNum(num int) (*repository.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	member, ok := s.members[num]
	if !ok {
		return nil, app_error.NotFound("member %d not found", num)
	}
	return &member, nil
}

func (s *MemberStore) FindAll() ([]*repository.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]*repository.Member, 0, len(s.members))
	for _, member := range s.members {
		m := member
		members = append(members, &m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Num < members[j].Num })
	return members, nil
}

func (s *MemberStore) SearchByName(query string) ([]*repository.Member, error) {
	all, _ := s.FindAll()
	query = strings.ToLower(query)
	members := make([]*repository.Member, 0)
	for _, member := range all {
		if strings.Contains(strings.ToLower(member.Name), query) || strings.Contains(strings.ToLower(member.FamilyName), query) {
			members = append(members, member)
		}
	}
	return members, nil
}

func (s *MemberStore) Save(member *repository.Member) (*repository.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if member.Num == 0 {
		member.Num = s.nextNum
	}
	if member.Num >= s.nextNum {
		s.nextNum = member.Num + 1
	}
	s.members[member.Num] = *member
	return member, nil
}

type CompetitionStore struct {
	mu           sync.RWMutex
	competitions map[string]repository.Competition
}

func NewCompetitionStore() *CompetitionStore {
	return &CompetitionStore{competitions: make(map[string]repository.Competition)}
}

func (s *CompetitionStore) GetCompetitionByCode(code string) (*repository.Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	competition, ok := s.competitions[code]
	if !ok {
		return nil, app_error.NotFound("competition %s not found", code)
	}
	return &competition, nil
}

func (s *CompetitionStore) FindAll() ([]*repository.Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	competitions := make([]*repository.Competition, 0, len(s.competitions))
	for _, competition := range s.competitions {
		c := competition
		competitions = append(competitions, &c)
	}
	sort.SliceStable(competitions, func(i, j int) bool {
		if competitions[i].Date.Equal(competitions[j].Date) {
			return competitions[i].Code < competitions[j].Code
		}
		return competitions[i].Date.Before(competitions[j].Date)
	})
	return competitions, nil
}

func (s *CompetitionStore) FindUpcoming(from time.Time) ([]*repository.Competition, error) {
	all, _ := s.FindAll()
	day := from.Format(time.DateOnly)
	competitions := make([]*repository.Competition, 0)
	for _, competition := range all {
		if competition.Date.Format(time.DateOnly) >= day {
			competitions = append(competitions, competition)
		}
	}
	return competitions, nil
}

func (s *CompetitionStore) Save(competition *repository.Competition) (*repository.Competition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.competitions[competition.Code] = *competition
	return competition, nil
}

type FishStore struct {
	mu     sync.RWMutex
	fishes map[string]repository.Fish
	levels map[int]repository.Level
}

func NewFishStore() *FishStore {
	return &FishStore{fishes: make(map[string]repository.Fish), levels: make(map[int]repository.Level)}
}

func (s *FishStore) GetFishByName(name string) (*repository.Fish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fish, ok := s.fishes[name]
	if !ok {
		return nil, app_error.NotFound("fish %s not found", name)
	}
	return s.withLevel(fish), nil
}

// withLevel must be called with s.mu held.
func (s *FishStore) withLevel(fish repository.Fish) *repository.Fish {
	if level, ok := s.levels[fish.LevelCode]; ok {
		fish.Level = &level
	} else {
		fish.Level = nil
	}
	return &fish
}

func (s *FishStore) FindAll() ([]*repository.Fish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fishes := make([]*repository.Fish, 0, len(s.fishes))
	for _, fish := range s.fishes {
		fishes = append(fishes, s.withLevel(fish))
	}
	sort.Slice(fishes, func(i, j int) bool { return fishes[i].Name < fishes[j].Name })
	return fishes, nil
}

func (s *FishStore) GetLevelByCode(code int) (*repository.Level, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	level, ok := s.levels[code]
	if !ok {
		return nil, app_error.NotFound("level %d not found", code)
	}
	return &level, nil
}

func (s *FishStore) SaveLevel(level *repository.Level) (*repository.Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[level.Code] = *level
	return level, nil
}

func (s *FishStore) SaveFish(fish *repository.Fish) (*repository.Fish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *fish
	stored.Level = nil
	s.fishes[fish.Name] = stored
	return fish, nil
}

type HuntingStore struct {
	mu       sync.RWMutex
	fishes   *FishStore
	huntings []repository.Hunting
	nextId   int
}

func NewHuntingStore(fishes *FishStore) *HuntingStore {
	return &HuntingStore{fishes: fishes, nextId: 1}
}

func (s *HuntingStore) attachFish(hunting repository.Hunting) *repository.Hunting {
	hunting.Member = nil
	hunting.Competition = nil
	if fish, err := s.fishes.GetFishByName(hunting.FishName); err == nil {
		hunting.Fish = fish
	} else {
		hunting.Fish = nil
	}
	return &hunting
}

func (s *HuntingStore) GetHuntingsForCompetition(code string) ([]*repository.Hunting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	huntings := make([]*repository.Hunting, 0)
	for _, hunting := range s.huntings {
		if hunting.CompetitionCode == code {
			huntings = append(huntings, s.attachFish(hunting))
		}
	}
	return huntings, nil
}

func (s *HuntingStore) GetHunting(memberNum int, competitionCode string, fishName string) (*repository.Hunting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, hunting := range s.huntings {
		if hunting.MemberNum == memberNum && hunting.CompetitionCode == competitionCode && hunting.FishName == fishName {
			return s.attachFish(hunting), nil
		}
	}
	return nil, app_error.NotFound("hunting of %s by member %d in %s not found", fishName, memberNum, competitionCode)
}

func (s *HuntingStore) Save(hunting *repository.Hunting) (*repository.Hunting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *hunting
	stored.Fish = nil
	stored.Member = nil
	stored.Competition = nil
	if hunting.Id != 0 {
		for i := range s.huntings {
			if s.huntings[i].Id == hunting.Id {
				s.huntings[i] = stored
				return hunting, nil
			}
		}
	} else {
		hunting.Id = s.nextId
		stored.Id = s.nextId
	}
	if stored.Id >= s.nextId {
		s.nextId = stored.Id + 1
	}
	s.huntings = append(s.huntings, stored)
	return hunting, nil
}

// RankingStore keeps rankings in insertion order, which is the order listings return.
type RankingStore struct {
	mu       sync.RWMutex
	rankings map[repository.RankingId]repository.Ranking
	order    []repository.RankingId
}

func NewRankingStore() *RankingStore {
	return &RankingStore{rankings: make(map[repository.RankingId]repository.Ranking)}
}

func detach(ranking repository.Ranking) *repository.Ranking {
	ranking.Member = nil
	ranking.Competition = nil
	return &ranking
}

func (s *RankingStore) GetRankingById(id repository.RankingId) (*repository.Ranking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ranking, ok := s.rankings[id]
	if !ok {
		return nil, app_error.NotFound("ranking %s not found", id)
	}
	return detach(ranking), nil
}

func (s *RankingStore) FindAll() ([]*repository.Ranking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rankings := make([]*repository.Ranking, 0, len(s.order))
	for _, id := range s.order {
		rankings = append(rankings, detach(s.rankings[id]))
	}
	return rankings, nil
}

func (s *RankingStore) GetRankingsForCompetition(code string) ([]*repository.Ranking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rankings := make([]*repository.Ranking, 0)
	for _, id := range s.order {
		if id.CompetitionCode == code {
			rankings = append(rankings, detach(s.rankings[id]))
		}
	}
	return rankings, nil
}

func (s *RankingStore) CountRankingsForCompetition(code string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, id := range s.order {
		if id.CompetitionCode == code {
			count++
		}
	}
	return count, nil
}

func (s *RankingStore) Save(ranking *repository.Ranking) (*repository.Ranking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := ranking.Id()
	if _, ok := s.rankings[id]; !ok {
		s.order = append(s.order, id)
	}
	s.rankings[id] = *detach(*ranking)
	return ranking, nil
}

func (s *RankingStore) Delete(id repository.RankingId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rankings[id]; !ok {
		return app_error.NotFound("ranking %s not found", id)
	}
	delete(s.rankings, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
