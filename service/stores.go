package service

import (
	"aftas/repository"
	"aftas/repository/memory"
	"time"

	"gorm.io/gorm"
)

type MemberStore interface {
	GetMemberByNum(num int) (*repository.Member, error)
	FindAll() ([]*repository.Member, error)
	SearchByName(query string) ([]*repository.Member, error)
	Save(member *repository.Member) (*repository.Member, error)
}

type CompetitionStore interface {
	GetCompetitionByCode(code string) (*repository.Competition, error)
	FindAll() ([]*repository.Competition, error)
	FindUpcoming(from time.Time) ([]*repository.Competition, error)
	Save(competition *repository.Competition) (*repository.Competition, error)
}

type FishStore interface {
	GetFishByName(name string) (*repository.Fish, error)
	FindAll() ([]*repository.Fish, error)
	GetLevelByCode(code int) (*repository.Level, error)
	SaveLevel(level *repository.Level) (*repository.Level, error)
	SaveFish(fish *repository.Fish) (*repository.Fish, error)
}

type HuntingStore interface {
	GetHuntingsForCompetition(code string) ([]*repository.Hunting, error)
	GetHunting(memberNum int, competitionCode string, fishName string) (*repository.Hunting, error)
	Save(hunting *repository.Hunting) (*repository.Hunting, error)
}

type RankingStore interface {
	GetRankingById(id repository.RankingId) (*repository.Ranking, error)
	FindAll() ([]*repository.Ranking, error)
	GetRankingsForCompetition(code string) ([]*repository.Ranking, error)
	CountRankingsForCompetition(code string) (int64, error)
	Save(ranking *repository.Ranking) (*repository.Ranking, error)
	Delete(id repository.RankingId) error
}

// Stores bundles the collaborators shared by the services.
type Stores struct {
	Members      MemberStore
	Competitions CompetitionStore
	Fishes       FishStore
	Huntings     HuntingStore
	Rankings     RankingStore
}

func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Members:      repository.NewMemberRepository(db),
		Competitions: repository.NewCompetitionRepository(db),
		Fishes:       repository.NewFishRepository(db),
		Huntings:     repository.NewHuntingRepository(db),
		Rankings:     repository.NewRankingRepository(db),
	}
}

func NewMemoryStores() *Stores {
	fishes := memory.NewFishStore()
	return &Stores{
		Members:      memory.NewMemberStore(),
		Competitions: memory.NewCompetitionStore(),
		Fishes:       fishes,
		Huntings:     memory.NewHuntingStore(fishes),
		Rankings:     memory.NewRankingStore(),
	}
}

// Clock supplies the current instant and the location competition dates are read in.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func SystemClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) now() time.Time {
	return c.Now().In(c.Location)
}
