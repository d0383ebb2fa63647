// Package events публикует уведомления об изменениях списков участников.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"activities-service/internal/model"
)

// Publisher описывает отправку событий по спискам участников.
type Publisher interface {
	Publish(ctx context.Context, event model.RosterEvent) error
	Close() error
}

// messageWriter — часть kafka.Writer, которую использует KafkaPublisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	headerEventType = "event_type"
	headerEventID   = "event_id"
)

// KafkaPublisher отправляет события в Kafka. Ключ сообщения — название кружка,
// поэтому события одного кружка попадают в одну партицию и сохраняют порядок.
type KafkaPublisher struct {
	writer messageWriter
}

// DeliveryFailureFunc получает событие, которое брокер так и не принял.
type DeliveryFailureFunc func(activity, eventID string, err error)

// NewKafkaPublisher создаёт издателя для указанных брокеров и топика.
// Writer асинхронный: Publish только ставит сообщение в буфер, а ошибки
// доставки приходят в onFailure по одному вызову на сообщение.
func NewKafkaPublisher(brokers []string, topic string, onFailure DeliveryFailureFunc) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
			Async:        true,
			Completion:   completionHandler(onFailure),
		},
	}
}

// completionHandler переводит итог отправки батча в вызовы onFailure.
func completionHandler(onFailure DeliveryFailureFunc) func([]kafka.Message, error) {
	return func(msgs []kafka.Message, err error) {
		if err == nil || onFailure == nil {
			return
		}
		for _, m := range msgs {
			onFailure(string(m.Key), headerValue(m.Headers, headerEventID), err)
		}
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func newKafkaPublisherWithWriter(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// Publish сериализует событие в JSON и передаёт его writer'у.
// Для асинхронного writer'а nil означает только постановку в буфер.
func (p *KafkaPublisher) Publish(ctx context.Context, event model.RosterEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Activity),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(event.Type)},
			{Key: headerEventID, Value: []byte(event.ID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// Close закрывает writer и дожидается отправки буфера.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда брокеры не настроены.
type NopPublisher struct{}

// Publish ничего не делает.
func (NopPublisher) Publish(context.Context, model.RosterEvent) error { return nil }

// Close ничего не делает.
func (NopPublisher) Close() error { return nil }
