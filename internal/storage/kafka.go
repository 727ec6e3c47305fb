package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Orders  MessageWriter
	Reviews MessageWriter
}

func NewKafkaPublisher(orders, reviews MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Orders: orders, Reviews: reviews}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, msg domain.KafkaMessage) error {
	return publish(ctx, p.Orders, strconv.Itoa(msg.OrderID), msg)
}

func (p *KafkaPublisher) PublishReviewEvent(ctx context.Context, msg domain.KafkaMessage) error {
	return publish(ctx, p.Reviews, strconv.Itoa(msg.DishID), msg)
}

func publish(ctx context.Context, w MessageWriter, key string, msg domain.KafkaMessage) error {
	if w == nil {
		return nil
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", msg.Type, err)
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
