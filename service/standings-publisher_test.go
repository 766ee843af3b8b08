package service

import (
	"aftas/repository"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaStandingsPublisher(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaStandingsPublisher{writer: writer, now: func() time.Time { return now }}

	err := publisher.PublishStandings(scoredOut, []*repository.Ranking{
		{MemberNum: 2, CompetitionCode: scoredOut, Score: 10, Rank: 1},
		{MemberNum: 1, CompetitionCode: scoredOut, Score: 6, Rank: 2},
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	message := writer.messages[0]
	assert.Equal(t, "standings-"+scoredOut, message.Topic)
	assert.Equal(t, []byte(scoredOut), message.Key)

	var decoded StandingsMessage
	require.NoError(t, json.Unmarshal(message.Value, &decoded))
	assert.Equal(t, scoredOut, decoded.CompetitionCode)
	assert.True(t, decoded.ComputedAt.Equal(now))
	assert.Equal(t, []Standing{{MemberNum: 2, Score: 10, Rank: 1}, {MemberNum: 1, Score: 6, Rank: 2}}, decoded.Standings)
	require.Len(t, message.Headers, 1)
	assert.Equal(t, decoded.Id, string(message.Headers[0].Value))
}

func TestKafkaStandingsPublisherCreatesTopicOnce(t *testing.T) {
	writer := &fakeWriter{}
	created := make([]string, 0)
	publisher := &KafkaStandingsPublisher{
		writer: writer,
		now:    func() time.Time { return now },
		ensureTopic: func(topic string) error {
			created = append(created, topic)
			return kafka.TopicAlreadyExists
		},
		topics: make(map[string]bool),
	}

	require.NoError(t, publisher.PublishStandings(scoredOut, nil))
	require.NoError(t, publisher.PublishStandings(scoredOut, nil))
	require.NoError(t, publisher.PublishStandings(upcoming, nil))
	assert.Equal(t, []string{"standings-" + scoredOut, "standings-" + upcoming}, created)
	assert.Len(t, writer.messages, 3)
}

func TestKafkaStandingsPublisherError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("no leader")}
	publisher := &KafkaStandingsPublisher{writer: writer, now: func() time.Time { return now }}

	err := publisher.PublishStandings(scoredOut, nil)
	assert.EqualError(t, err, "no leader")
}

func TestMultiPublisher(t *testing.T) {
	first := &recordingPublisher{}
	second := &recordingPublisher{err: errors.New("closed")}
	third := &recordingPublisher{}

	err := MultiPublisher{first, second, third}.PublishStandings(upcoming, nil)
	assert.EqualError(t, err, "closed")
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, third.calls)
}
