package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/cenkalti/backoff/v5"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Both steps are keyed on the order id so a retried or redelivered
// order_created event is counted once.
type Store interface {
	IncrementTotalOrders(ctx context.Context, orderID int, lines []domain.EventLine) error
	DishRatingSummary(ctx context.Context, dishID int) (float64, int, error)
}

type Cache interface {
	RecordOrderLines(ctx context.Context, orderID int, day time.Time, lines []domain.EventLine) error
	SetDishSnapshot(ctx context.Context, dishID int, avgRating float64, reviewCount int, at time.Time) error
}

// MessageReader is the subset of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

var errInvalidEvent = errors.New("invalid event")

type RetryConfig struct {
	MaxTries        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxTries: 5, InitialInterval: 200 * time.Millisecond, MaxInterval: 5 * time.Second}
}

// Consumer folds order and review events into catalog counters and the
// redis popularity rankings.
type Consumer struct {
	Reader MessageReader
	Store  Store
	Cache  Cache
	Retry  RetryConfig
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store Store, cache Cache, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{Reader: reader, Store: store, Cache: cache, Retry: DefaultRetryConfig(), Logger: logger}
}

// Start consumes until ctx is cancelled. A message is committed once it has
// been handled or judged unusable. A group reader never refetches a skipped
// offset, so when a message still fails after the retries Start returns the
// error without committing it; the partition is then redelivered to whichever
// member picks it up next.
func (c *Consumer) Start(ctx context.Context) error {
	c.Logger.Info("starting event aggregator")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.Logger.Error("read message failed", zap.Error(err))
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Logger.Warn("dropping undecodable message", zap.String("topic", message.Topic), zap.Error(err))
		} else {
			if msg.Timestamp.IsZero() {
				msg.Timestamp = message.Time
			}
			if err := c.handleWithRetry(ctx, msg); err != nil {
				switch {
				case errors.Is(err, errInvalidEvent):
					c.Logger.Warn("dropping invalid event", zap.String("type", msg.Type), zap.Error(err))
				case ctx.Err() != nil:
					return nil
				default:
					c.Logger.Error("handle event failed, stopping before commit",
						zap.String("type", msg.Type),
						zap.Int64("offset", message.Offset),
						zap.Error(err))
					return fmt.Errorf("handle %s at offset %d: %w", msg.Type, message.Offset, err)
				}
			}
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil && !errors.Is(err, context.Canceled) {
			c.Logger.Error("commit message failed", zap.Error(err))
		}
	}
}

func (c *Consumer) handleWithRetry(ctx context.Context, msg domain.KafkaMessage) error {
	tries := c.Retry.MaxTries
	if tries == 0 {
		tries = 1
	}
	b := backoff.NewExponentialBackOff()
	if c.Retry.InitialInterval > 0 {
		b.InitialInterval = c.Retry.InitialInterval
	}
	if c.Retry.MaxInterval > 0 {
		b.MaxInterval = c.Retry.MaxInterval
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := c.Handle(ctx, msg)
		switch {
		case err == nil:
			return struct{}{}, nil
		case errors.Is(err, errInvalidEvent):
			return struct{}{}, backoff.Permanent(err)
		default:
			c.Logger.Warn("handle event failed, retrying", zap.String("type", msg.Type), zap.Error(err))
			return struct{}{}, err
		}
	}, backoff.WithBackOff(b), backoff.WithMaxTries(tries))
	return err
}

func (c *Consumer) Handle(ctx context.Context, msg domain.KafkaMessage) error {
	switch msg.Type {
	case domain.EventOrderCreated:
		return c.processOrder(ctx, msg)
	case domain.EventNewReview:
		return c.processReview(ctx, msg)
	case domain.EventOrderDelivered:
		c.Logger.Debug("order delivered", zap.Int("order_id", msg.OrderID))
		return nil
	default:
		c.Logger.Debug("ignoring event", zap.String("type", msg.Type))
		return nil
	}
}

func (c *Consumer) processOrder(ctx context.Context, msg domain.KafkaMessage) error {
	if msg.OrderID <= 0 {
		return fmt.Errorf("%w: order_created without order id", errInvalidEvent)
	}
	if err := c.Store.IncrementTotalOrders(ctx, msg.OrderID, msg.Lines); err != nil {
		return fmt.Errorf("increment total orders: %w", err)
	}
	day := msg.Timestamp
	if day.IsZero() {
		day = time.Now()
	}
	if err := c.Cache.RecordOrderLines(ctx, msg.OrderID, day, msg.Lines); err != nil {
		return fmt.Errorf("record popularity: %w", err)
	}
	c.Logger.Info("order aggregated", zap.Int("order_id", msg.OrderID), zap.Int("lines", len(msg.Lines)))
	return nil
}

func (c *Consumer) processReview(ctx context.Context, msg domain.KafkaMessage) error {
	avg, count, err := c.Store.DishRatingSummary(ctx, msg.DishID)
	if err != nil {
		return fmt.Errorf("load dish rating: %w", err)
	}
	if err := c.Cache.SetDishSnapshot(ctx, msg.DishID, avg, count, time.Now()); err != nil {
		return fmt.Errorf("store dish snapshot: %w", err)
	}
	c.Logger.Info("review aggregated", zap.Int("dish_id", msg.DishID), zap.Int("rating", msg.Rating))
	return nil
}
