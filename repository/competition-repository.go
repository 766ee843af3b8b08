package repository

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const clockLayout = "15:04"

type Competition struct {
	Code                 string    `gorm:"primaryKey"`
	Date                 time.Time `gorm:"type:date;not null"`
	StartTime            string    `gorm:"type:varchar(5);not null"`
	EndTime              string    `gorm:"type:varchar(5);not null"`
	NumberOfParticipants int       `gorm:"not null"`
	Location             string    `gorm:"not null"`
	Amount               float64   `gorm:"not null;default:0"`
}

// StartInstant combines the competition date and its start time in loc.
func (c *Competition) StartInstant(loc *time.Location) (time.Time, error) {
	clock, err := time.Parse(clockLayout, c.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q for competition %s: %w", c.StartTime, c.Code, err)
	}
	y, m, d := c.Date.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

type CompetitionRepository struct {
	DB *gorm.DB
}

func NewCompetitionRepository(db *gorm.DB) *CompetitionRepository {
	return &CompetitionRepository{DB: db}
}

func (r *CompetitionRepository) GetCompetitionByCode(code string) (*Competition, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetCompetitionByCode"))
	defer timer.ObserveDuration()
	var competition Competition
	result := r.DB.First(&competition, "code = ?", code)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, "competition %s not found", code)
	}
	return &competition, nil
}

func (r *CompetitionRepository) FindAll() ([]*Competition, error) {
	competitions := make([]*Competition, 0)
	result := r.DB.Order("date ASC").Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}
	return competitions, nil
}

// FindUpcoming returns competitions taking place on or after the given day.
func (r *CompetitionRepository) FindUpcoming(from time.Time) ([]*Competition, error) {
	competitions := make([]*Competition, 0)
	result := r.DB.Where("date >= ?", from.Format(time.DateOnly)).Order("date ASC").Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}
	return competitions, nil
}

func (r *CompetitionRepository) Save(competition *Competition) (*Competition, error) {
	result := r.DB.Save(competition)
	if result.Error != nil {
		return nil, result.Error
	}
	return competition, nil
}
