// Package events публикует доменные события во внешние системы.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Writer подмножество kafka.Writer, которое нужно продюсеру
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher реализует domain.EventPublisher поверх Kafka
type KafkaPublisher struct {
	writer    Writer
	eventType string
	logger    *zap.Logger
}

// NewKafkaPublisher создает продюсер для указанных брокеров и топика
func NewKafkaPublisher(brokers []string, topic, eventType string, logger *zap.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return NewKafkaPublisherWithWriter(w, eventType, logger)
}

// NewKafkaPublisherWithWriter позволяет подставить writer в тестах
func NewKafkaPublisherWithWriter(w Writer, eventType string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, eventType: eventType, logger: logger}
}

// Publish сериализует value в JSON и пишет сообщение с ключом key.
// Сообщения одного отправления попадают в одну партицию.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("events: failed to marshal %s: %w", p.eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(p.eventType)},
			{Key: "content-type", Value: []byte("application/json")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: failed to write %s for key %s: %w", p.eventType, key, err)
	}

	p.logger.Debug("event published", zap.String("type", p.eventType), zap.String("key", key))
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher пишет события в лог, когда брокер не настроен
type LogPublisher struct {
	eventType string
	logger    *zap.Logger
}

// NewLogPublisher создает LogPublisher
func NewLogPublisher(eventType string, logger *zap.Logger) *LogPublisher {
	return &LogPublisher{eventType: eventType, logger: logger}
}

// Publish логирует событие
func (p *LogPublisher) Publish(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("events: failed to marshal %s: %w", p.eventType, err)
	}

	p.logger.Info("event",
		zap.String("type", p.eventType),
		zap.String("key", key),
		zap.ByteString("payload", payload),
	)
	return nil
}

// Close ничего не делает
func (p *LogPublisher) Close() error {
	return nil
}
