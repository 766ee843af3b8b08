package controller

import (
	"aftas/repository"
	"time"
)

type MemberResponse struct {
	Num              int                             `json:"num"`
	Name             string                          `json:"name"`
	FamilyName       string                          `json:"family_name"`
	AccessionDate    string                          `json:"accession_date"`
	Nationality      string                          `json:"nationality,omitempty"`
	IdentityDocument repository.IdentityDocumentType `json:"identity_document,omitempty"`
	IdentityNumber   string                          `json:"identity_number,omitempty"`
}

type CompetitionResponse struct {
	Code                 string  `json:"code"`
	Date                 string  `json:"date"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	NumberOfParticipants int     `json:"number_of_participants"`
	Location             string  `json:"location"`
	Amount               float64 `json:"amount"`
}

type RankingResponse struct {
	MemberNum       int                  `json:"member_num"`
	CompetitionCode string               `json:"competition_code"`
	Score           int                  `json:"score"`
	Rank            int                  `json:"rank"`
	Member          *MemberResponse      `json:"member,omitempty"`
	Competition     *CompetitionResponse `json:"competition,omitempty"`
}

type LevelResponse struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

type FishResponse struct {
	Name          string         `json:"name"`
	AverageWeight float64        `json:"average_weight"`
	Level         *LevelResponse `json:"level,omitempty"`
}

type HuntingResponse struct {
	Id              int           `json:"id"`
	MemberNum       int           `json:"member_num"`
	CompetitionCode string        `json:"competition_code"`
	NumberOfFish    int           `json:"number_of_fish"`
	Fish            *FishResponse `json:"fish,omitempty"`
}

func toMemberResponse(member *repository.Member) *MemberResponse {
	if member == nil {
		return nil
	}
	return &MemberResponse{
		Num:              member.Num,
		Name:             member.Name,
		FamilyName:       member.FamilyName,
		AccessionDate:    member.AccessionDate.Format(time.DateOnly),
		Nationality:      member.Nationality,
		IdentityDocument: member.IdentityDocument,
		IdentityNumber:   member.IdentityNumber,
	}
}

func toCompetitionResponse(competition *repository.Competition) *CompetitionResponse {
	if competition == nil {
		return nil
	}
	return &CompetitionResponse{
		Code:                 competition.Code,
		Date:                 competition.Date.Format(time.DateOnly),
		StartTime:            competition.StartTime,
		EndTime:              competition.EndTime,
		NumberOfParticipants: competition.NumberOfParticipants,
		Location:             competition.Location,
		Amount:               competition.Amount,
	}
}

func toRankingResponse(ranking *repository.Ranking) *RankingResponse {
	return &RankingResponse{
		MemberNum:       ranking.MemberNum,
		CompetitionCode: ranking.CompetitionCode,
		Score:           ranking.Score,
		Rank:            ranking.Rank,
		Member:          toMemberResponse(ranking.Member),
		Competition:     toCompetitionResponse(ranking.Competition),
	}
}

func toLevelResponse(level *repository.Level) *LevelResponse {
	if level == nil {
		return nil
	}
	return &LevelResponse{Code: level.Code, Description: level.Description, Points: level.Points}
}

func toFishResponse(fish *repository.Fish) *FishResponse {
	if fish == nil {
		return nil
	}
	return &FishResponse{Name: fish.Name, AverageWeight: fish.AverageWeight, Level: toLevelResponse(fish.Level)}
}

func toHuntingResponse(hunting *repository.Hunting) *HuntingResponse {
	return &HuntingResponse{
		Id:              hunting.Id,
		MemberNum:       hunting.MemberNum,
		CompetitionCode: hunting.CompetitionCode,
		NumberOfFish:    hunting.NumberOfFish,
		Fish:            toFishResponse(hunting.Fish),
	}
}
