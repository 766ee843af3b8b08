package service

import (
	"aftas/config"
	"aftas/metrics"
	"aftas/repository"
	"aftas/utils"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const publishTimeout = 5 * time.Second

// StandingsPublisher receives the ranked entries of a competition after each scoring pass.
type StandingsPublisher interface {
	PublishStandings(competitionCode string, standings []*repository.Ranking) error
}

type NoopPublisher struct{}

func (NoopPublisher) PublishStandings(string, []*repository.Ranking) error {
	return nil
}

// MultiPublisher forwards standings to every publisher and joins their errors.
type MultiPublisher []StandingsPublisher

func (m MultiPublisher) PublishStandings(competitionCode string, standings []*repository.Ranking) error {
	errs := make([]error, 0)
	for _, publisher := range m {
		if err := publisher.PublishStandings(competitionCode, standings); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Standing struct {
	MemberNum int `json:"member_num"`
	Score     int `json:"score"`
	Rank      int `json:"rank"`
}

type StandingsMessage struct {
	Id              string     `json:"id"`
	CompetitionCode string     `json:"competition_code"`
	ComputedAt      time.Time  `json:"computed_at"`
	Standings       []Standing `json:"standings"`
}

func ToStanding(ranking *repository.Ranking) Standing {
	return Standing{MemberNum: ranking.MemberNum, Score: ranking.Score, Rank: ranking.Rank}
}

func NewStandingsMessage(competitionCode string, standings []*repository.Ranking, computedAt time.Time) *StandingsMessage {
	return &StandingsMessage{
		Id:              uuid.NewString(),
		CompetitionCode: competitionCode,
		ComputedAt:      computedAt,
		Standings:       utils.Map(standings, ToStanding),
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaStandingsPublisher writes standings to the per competition standings topic,
// keyed by competition code so the compacted topic keeps the latest standings.
type KafkaStandingsPublisher struct {
	writer messageWriter
	now    func() time.Time

	// ensureTopic creates the compacted topic of a competition before its first message
	ensureTopic func(topic string) error
	mu          sync.Mutex
	topics      map[string]bool
}

func NewKafkaStandingsPublisher() (*KafkaStandingsPublisher, error) {
	writer, err := config.GetWriter()
	if err != nil {
		return nil, err
	}
	return &KafkaStandingsPublisher{
		writer:      writer,
		now:         time.Now,
		ensureTopic: config.CreateTopic,
		topics:      make(map[string]bool),
	}, nil
}

func (p *KafkaStandingsPublisher) prepareTopic(topic string) {
	if p.ensureTopic == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.topics[topic] {
		return
	}
	if err := p.ensureTopic(topic); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		// the writer still auto creates the topic, without compaction
		log.Warn("failed to create standings topic", "topic", topic, "error", err)
		return
	}
	p.topics[topic] = true
}

func (p *KafkaStandingsPublisher) PublishStandings(competitionCode string, standings []*repository.Ranking) error {
	message := NewStandingsMessage(competitionCode, standings, p.now())
	value, err := json.Marshal(message)
	if err != nil {
		return err
	}
	topic := config.StandingsTopic(competitionCode)
	p.prepareTopic(topic)
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(competitionCode),
		Value: value,
		Headers: []kafka.Header{
			{Key: "message-id", Value: []byte(message.Id)},
		},
	})
	if err != nil {
		metrics.StandingsPublishErrorCounter.WithLabelValues("kafka").Inc()
		return err
	}
	return nil
}
