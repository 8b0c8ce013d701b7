// Package kafka publishes committed lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/logger"

	"github.com/segmentio/kafka-go"
)

const (
	DefaultBatchTimeout = 10 * time.Millisecond
	DefaultWriteTimeout = 5 * time.Second
)

var ErrTopicIsRequired = errors.New("kafka topic is required")

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

// Publisher writes one message per lifecycle event, keyed by the aggregate id so that
// all transitions of one aggregate land on the same partition in order.
type Publisher struct {
	writer       MessageWriter
	writeTimeout time.Duration
	log          *logger.Logger
}

// NewWriter builds the kafka-go writer for the lifecycle topic.
func NewWriter(cfg Config) (*kafka.Writer, error) {
	if cfg.Topic == "" {
		return nil, ErrTopicIsRequired
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, nil
}

func NewPublisher(writer MessageWriter, writeTimeout time.Duration, log *logger.Logger) *Publisher {
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Publisher{
		writer:       writer,
		writeTimeout: writeTimeout,
		log:          log.With("component", "kafka_publisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.LifecycleEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode %s %s lifecycle event: %w", event.Aggregate, event.ID, err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.ID),
			Value: payload,
			Time:  event.OccurredAt,
			Headers: []kafka.Header{
				{Key: "aggregate", Value: []byte(event.Aggregate)},
			},
		})
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, messages...); err != nil {
		return fmt.Errorf("write %d lifecycle events: %w", len(messages), err)
	}
	p.log.With("events", len(messages)).Debug(ctx, "lifecycle events published")
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
