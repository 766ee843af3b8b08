package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Hunting struct {
	Id              int          `gorm:"primaryKey;autoIncrement"`
	NumberOfFish    int          `gorm:"not null"`
	FishName        string       `gorm:"not null"`
	Fish            *Fish        `gorm:"foreignKey:FishName;references:Name"`
	MemberNum       int          `gorm:"not null;index"`
	Member          *Member      `gorm:"foreignKey:MemberNum;references:Num"`
	CompetitionCode string       `gorm:"not null;index"`
	Competition     *Competition `gorm:"foreignKey:CompetitionCode;references:Code"`
}

// LevelPoints is the point value of the caught species, 0 when the fish level is not loaded.
func (h *Hunting) LevelPoints() int {
	if h.Fish == nil || h.Fish.Level == nil {
		return 0
	}
	return h.Fish.Level.Points
}

type HuntingRepository struct {
	DB *gorm.DB
}

func NewHuntingRepository(db *gorm.DB) *HuntingRepository {
	return &HuntingRepository{DB: db}
}

// GetHuntingsForCompetition returns the huntings of a competition in insertion order with fish levels loaded.
func (r *HuntingRepository) GetHuntingsForCompetition(code string) ([]*Hunting, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetHuntingsForCompetition"))
	defer timer.ObserveDuration()
	huntings := make([]*Hunting, 0)
	result := r.DB.Preload("Fish.Level").Order("id ASC").Find(&huntings, "competition_code = ?", code)
	if result.Error != nil {
		return nil, result.Error
	}
	return huntings, nil
}

func (r *HuntingRepository) GetHunting(memberNum int, competitionCode string, fishName string) (*Hunting, error) {
	var hunting Hunting
	result := r.DB.Preload("Fish.Level").
		Where("member_num = ? AND competition_code = ? AND fish_name = ?", memberNum, competitionCode, fishName).
		First(&hunting)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, "hunting of %s by member %d in %s not found", fishName, memberNum, competitionCode)
	}
	return &hunting, nil
}

func (r *HuntingRepository) Save(hunting *Hunting) (*Hunting, error) {
	result := r.DB.Omit(clause.Associations).Save(hunting)
	if result.Error != nil {
		return nil, result.Error
	}
	return hunting, nil
}
