package repository

import (
	"gorm.io/gorm"
)

type Level struct {
	Code        int    `gorm:"primaryKey;autoIncrement:false"`
	Description string `gorm:"null"`
	Points      int    `gorm:"not null"`
}

type Fish struct {
	Name          string  `gorm:"primaryKey"`
	AverageWeight float64 `gorm:"not null"`
	LevelCode     int     `gorm:"not null"`
	Level         *Level  `gorm:"foreignKey:LevelCode;references:Code"`
}

type FishRepository struct {
	DB *gorm.DB
}

func NewFishRepository(db *gorm.DB) *FishRepository {
	return &FishRepository{DB: db}
}

func (r *FishRepository) GetFishByName(name string) (*Fish, error) {
	var fish Fish
	result := r.DB.Preload("Level").First(&fish, "name = ?", name)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, "fish %s not found", name)
	}
	return &fish, nil
}

func (r *FishRepository) FindAll() ([]*Fish, error) {
	fishes := make([]*Fish, 0)
	result := r.DB.Preload("Level").Order("name ASC").Find(&fishes)
	if result.Error != nil {
		return nil, result.Error
	}
	return fishes, nil
}

func (r *FishRepository) GetLevelByCode(code int) (*Level, error) {
	var level Level
	result := r.DB.First(&level, "code = ?", code)
	if result.Error != nil {
		return nil, notFoundOr(result.Error, "level %d not found", code)
	}
	return &level, nil
}

func (r *FishRepository) SaveLevel(level *Level) (*Level, error) {
	result := r.DB.Save(level)
	if result.Error != nil {
		return nil, result.Error
	}
	return level, nil
}

func (r *FishRepository) SaveFish(fish *Fish) (*Fish, error) {
	result := r.DB.Omit("Level").Save(fish)
	if result.Error != nil {
		return nil, result.Error
	}
	return fish, nil
}
