package repository

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RankingId is the composite key of a ranking entry.
type RankingId struct {
	MemberNum       int    `json:"member_num"`
	CompetitionCode string `json:"competition_code"`
}

func (id RankingId) String() string {
	return fmt.Sprintf("%d/%s", id.MemberNum, id.CompetitionCode)
}

type Ranking struct {
	MemberNum       int          `gorm:"primaryKey;autoIncrement:false"`
	CompetitionCode string       `gorm:"primaryKey"`
	Member          *Member      `gorm:"foreignKey:MemberNum;references:Num;constraint:OnDelete:CASCADE"`
	Competition     *Competition `gorm:"foreignKey:CompetitionCode;references:Code;constraint:OnDelete:CASCADE"`
	Score           int          `gorm:"not null;default:0"`
	Rank            int          `gorm:"not null;default:0"`
}

func (r *Ranking) Id() RankingId {
	return RankingId{MemberNum: r.MemberNum, CompetitionCode: r.CompetitionCode}
}

type RankingRepository struct {
	DB *gorm.DB
}

func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{DB: db}
}

func (r *RankingRepository) GetRankingById(id RankingId) (*Ranking, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetRankingById"))
	defer timer.ObserveDuration()
	var ranking Ranking
	result := r.DB.First(&ranking, "member_num = ? AND competition_code = ?", id.MemberNum, id.CompetitionCode)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, "ranking %s not found", id)
	}
	return &ranking, nil
}

func (r *RankingRepository) FindAll() ([]*Ranking, error) {
	rankings := make([]*Ranking, 0)
	result := r.DB.Find(&rankings)
	if result.Error != nil {
		return nil, result.Error
	}
	return rankings, nil
}

func (r *RankingRepository) GetRankingsForCompetition(code string) ([]*Ranking, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetRankingsForCompetition"))
	defer timer.ObserveDuration()
	rankings := make([]*Ranking, 0)
	result := r.DB.Find(&rankings, "competition_code = ?", code)
	if result.Error != nil {
		return nil, result.Error
	}
	return rankings, nil
}

func (r *RankingRepository) CountRankingsForCompetition(code string) (int64, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("CountRankingsForCompetition"))
	defer timer.ObserveDuration()
	var count int64
	result := r.DB.Model(&Ranking{}).Where("competition_code = ?", code).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *RankingRepository) Save(ranking *Ranking) (*Ranking, error) {
	result := r.DB.Omit(clause.Associations).Save(ranking)
	if result.Error != nil {
		return nil, result.Error
	}
	return ranking, nil
}

func (r *RankingRepository) Delete(id RankingId) error {
	result := r.DB.Delete(&Ranking{}, "member_num = ? AND competition_code = ?", id.MemberNum, id.CompetitionCode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundOr(gorm.ErrRecordNotFound, "ranking %s not found", id)
	}
	return nil
}
