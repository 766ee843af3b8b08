package config

import (
	"aftas/utils"
	"fmt"
	"net"
	"strconv"

	"github.com/segmentio/kafka-go"
)

func StandingsTopic(competitionCode string) string {
	return fmt.Sprintf("standings-%s", competitionCode)
}

func CreateTopic(topic string) error {
	broker := Env().KafkaBroker
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER environment variable not set")
	}

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// standings are kept until the topic is removed
			{
				ConfigName:  "retention.ms",
				ConfigValue: "-1",
			},
			{
				ConfigName:  "cleanup.policy",
				ConfigValue: "compact",
			},
		},
	}

	return controllerConn.CreateTopics(topicConfig)
}

// GetWriter returns a writer without a fixed topic, every message names its own.
func GetWriter() (*kafka.Writer, error) {
	broker := Env().KafkaBroker
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Balancer:               &kafka.Hash{},
		Compression:            kafka.Zstd,
		AllowAutoTopicCreation: true,
	}, nil
}
