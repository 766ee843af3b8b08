package service

import (
	"aftas/repository"
)

type FishService struct {
	fishRepository FishStore
}

func NewFishService(stores *Stores) *FishService {
	return &FishService{fishRepository: stores.Fishes}
}

func (s *FishService) SaveLevel(level *repository.Level) (*repository.Level, error) {
	return s.fishRepository.SaveLevel(level)
}

// SaveFish stores a species after checking its level exists.
func (s *FishService) SaveFish(fish *repository.Fish) (*repository.Fish, error) {
	level, err := s.fishRepository.GetLevelByCode(fish.LevelCode)
	if err != nil {
		return nil, err
	}
	saved, err := s.fishRepository.SaveFish(fish)
	if err != nil {
		return nil, err
	}
	saved.Level = level
	return saved, nil
}

func (s *FishService) GetAllFish() ([]*repository.Fish, error) {
	return s.fishRepository.FindAll()
}
