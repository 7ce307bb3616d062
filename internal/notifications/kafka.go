package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"eventx/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// KafkaConfig contains configuration for the Kafka notification sink
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	RetryMax int
	Timeout  time.Duration
}

// DefaultKafkaConfig returns a default sink configuration
func DefaultKafkaConfig(brokers []string, topic string) *KafkaConfig {
	return &KafkaConfig{
		Brokers:  brokers,
		Topic:    topic,
		RetryMax: 3,
		Timeout:  10 * time.Second,
	}
}

// KafkaSink publishes notifications to a Kafka topic for downstream
// delivery (push, email, whatever consumes the topic).
type KafkaSink struct {
	producer sarama.SyncProducer
	config   *KafkaConfig
	log      *logger.Logger
}

// NewKafkaSink creates a Kafka-backed notification sink.
func NewKafkaSink(config *KafkaConfig, log *logger.Logger) (*KafkaSink, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout

	// Hash partitioner keeps notifications with the same tag in order.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaSink{
		producer: producer,
		config:   config,
		log:      log,
	}, nil
}

// Notify publishes the notification. Failures are logged and dropped.
func (s *KafkaSink) Notify(ctx context.Context, title, body, tag string) {
	notification := Notification{
		ID:     uuid.New().String(),
		Title:  title,
		Body:   body,
		Tag:    tag,
		SentAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		s.log.Warn("failed to encode notification", slog.Any("error", err))
		return
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.config.Topic,
		Key:   sarama.StringEncoder(tag),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		s.log.Warn("failed to publish notification",
			slog.String("tag", tag),
			slog.Any("error", err),
		)
	}
}

// Close shuts down the underlying producer.
func (s *KafkaSink) Close() error {
	return s.producer.Close()
}
