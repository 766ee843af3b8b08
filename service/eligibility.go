package service

import (
	"aftas/app_error"
	"aftas/repository"
	"time"
)

const registrationCutoff = 24

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// checkDateAvailable rejects competitions whose date is strictly before today.
// Only the calendar date is compared, the start time is ignored.
func checkDateAvailable(competition *repository.Competition, now time.Time) error {
	if civilDate(competition.Date).Before(civilDate(now)) {
		return app_error.InvalidState(app_error.ReasonDateNotAvailable)
	}
	return nil
}

// checkRegistrationWindow rejects registrations within 24 whole hours of the
// competition start, before or after it.
func checkRegistrationWindow(competition *repository.Competition, now time.Time) error {
	start, err := competition.StartInstant(now.Location())
	if err != nil {
		return err
	}
	hours := int64(now.Sub(start) / time.Hour)
	if hours < 0 {
		hours = -hours
	}
	if hours < registrationCutoff {
		return app_error.InvalidState(app_error.ReasonRegistrationWindowClosed)
	}
	return nil
}

func checkCapacity(rankings RankingStore, competition *repository.Competition) error {
	count, err := rankings.CountRankingsForCompetition(competition.Code)
	if err != nil {
		return err
	}
	if count >= int64(competition.NumberOfParticipants) {
		return app_error.InvalidState(app_error.ReasonCompetitionFull)
	}
	return nil
}
