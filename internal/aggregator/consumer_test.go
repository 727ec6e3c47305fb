package aggregator_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/aggregator"
	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/mocks"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsumer_Handle(t *testing.T) {
	ctx := context.Background()
	placed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lines := []domain.EventLine{{DishID: 1, Quantity: 2}, {DishID: 3, Quantity: 1}}

	tests := []struct {
		name         string
		msg          domain.KafkaMessage
		prepareMocks func(store *mocks.AggregatorStore, cache *mocks.AggregatorCache)
		expectErr    bool
	}{
		{
			name: "order_created",
			msg:  domain.KafkaMessage{Type: domain.EventOrderCreated, OrderID: 42, Lines: lines, Timestamp: placed},
			prepareMocks: func(store *mocks.AggregatorStore, cache *mocks.AggregatorCache) {
				store.On("IncrementTotalOrders", ctx, 42, lines).Return(nil).Once()
				cache.On("RecordOrderLines", ctx, 42, placed, lines).Return(nil).Once()
			},
		},
		{
			name: "order_counter_fails",
			msg:  domain.KafkaMessage{Type: domain.EventOrderCreated, OrderID: 42, Lines: lines, Timestamp: placed},
			prepareMocks: func(store *mocks.AggregatorStore, _ *mocks.AggregatorCache) {
				store.On("IncrementTotalOrders", ctx, 42, lines).Return(errors.New("db down")).Once()
			},
			expectErr: true,
		},
		{
			name:         "order_without_id_rejected",
			msg:          domain.KafkaMessage{Type: domain.EventOrderCreated, Lines: lines, Timestamp: placed},
			prepareMocks: func(*mocks.AggregatorStore, *mocks.AggregatorCache) {},
			expectErr:    true,
		},
		{
			name: "new_review",
			msg:  domain.KafkaMessage{Type: domain.EventNewReview, DishID: 3, Rating: 5},
			prepareMocks: func(store *mocks.AggregatorStore, cache *mocks.AggregatorCache) {
				store.On("DishRatingSummary", ctx, 3).Return(4.5, 12, nil).Once()
				cache.On("SetDishSnapshot", ctx, 3, 4.5, 12, mock.AnythingOfType("time.Time")).Return(nil).Once()
			},
		},
		{
			name: "review_snapshot_fails",
			msg:  domain.KafkaMessage{Type: domain.EventNewReview, DishID: 3, Rating: 5},
			prepareMocks: func(store *mocks.AggregatorStore, cache *mocks.AggregatorCache) {
				store.On("DishRatingSummary", ctx, 3).Return(4.5, 12, nil).Once()
				cache.On("SetDishSnapshot", ctx, 3, 4.5, 12, mock.Anything).Return(errors.New("redis down")).Once()
			},
			expectErr: true,
		},
		{
			name:         "order_delivered_is_acknowledged",
			msg:          domain.KafkaMessage{Type: domain.EventOrderDelivered, OrderID: 42},
			prepareMocks: func(*mocks.AggregatorStore, *mocks.AggregatorCache) {},
		},
		{
			name:         "unknown_type_ignored",
			msg:          domain.KafkaMessage{Type: "dish_viewed"},
			prepareMocks: func(*mocks.AggregatorStore, *mocks.AggregatorCache) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewAggregatorStore(t)
			cache := mocks.NewAggregatorCache(t)
			testCase.prepareMocks(store, cache)

			err := aggregator.NewConsumer(mocks.NewMessageReader(t), store, cache, nil).Handle(ctx, testCase.msg)
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConsumer_StartCommitsHandledMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMessageReader(t)
	store := mocks.NewAggregatorStore(t)
	cache := mocks.NewAggregatorCache(t)

	payload, err := json.Marshal(domain.KafkaMessage{Type: domain.EventNewReview, DishID: 3, Rating: 4})
	require.NoError(t, err)
	review := kafka.Message{Topic: "review-events", Offset: 1, Value: payload}
	garbage := kafka.Message{Topic: "order-events", Offset: 2, Value: []byte("not json")}

	reader.On("FetchMessage", ctx).Return(review, nil).Once()
	reader.On("FetchMessage", ctx).Return(garbage, nil).Once()
	reader.On("FetchMessage", ctx).Return(kafka.Message{}, errors.New("broker unreachable")).Once()
	reader.On("FetchMessage", ctx).Return(func(context.Context) kafka.Message {
		cancel()
		return kafka.Message{}
	}, func(ctx context.Context) error { return ctx.Err() }).Once()

	store.On("DishRatingSummary", ctx, 3).Return(4.0, 2, nil).Once()
	cache.On("SetDishSnapshot", ctx, 3, 4.0, 2, mock.Anything).Return(nil).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{review}).Return(nil).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{garbage}).Return(nil).Once()

	consumer := aggregator.NewConsumer(reader, store, cache, nil)
	assert.NoError(t, consumer.Start(ctx))
}

func fastRetry(c *aggregator.Consumer) *aggregator.Consumer {
	c.Retry = aggregator.RetryConfig{MaxTries: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
	return c
}

func orderMessage(t *testing.T, offset int64, msg domain.KafkaMessage) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	return kafka.Message{Topic: "orders", Offset: offset, Value: payload}
}

func TestConsumer_StartRetriesBeforeCommitting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMessageReader(t)
	store := mocks.NewAggregatorStore(t)
	cache := mocks.NewAggregatorCache(t)

	placed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lines := []domain.EventLine{{DishID: 1, Quantity: 1}}
	order := orderMessage(t, 7, domain.KafkaMessage{Type: domain.EventOrderCreated, OrderID: 5, Lines: lines, Timestamp: placed})

	reader.On("FetchMessage", ctx).Return(order, nil).Once()
	reader.On("FetchMessage", ctx).Return(func(context.Context) kafka.Message {
		cancel()
		return kafka.Message{}
	}, func(ctx context.Context) error { return ctx.Err() }).Once()

	// first attempt: counters applied, ranking fails; the replayed counter
	// call is a no-op in storage because the order id is already claimed
	store.On("IncrementTotalOrders", ctx, 5, lines).Return(nil).Twice()
	cache.On("RecordOrderLines", ctx, 5, placed, lines).Return(errors.New("redis down")).Once()
	cache.On("RecordOrderLines", ctx, 5, placed, lines).Return(nil).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{order}).Return(nil).Once()

	assert.NoError(t, fastRetry(aggregator.NewConsumer(reader, store, cache, nil)).Start(ctx))
}

func TestConsumer_StartStopsWithoutCommittingWhenRetriesRunOut(t *testing.T) {
	ctx := context.Background()

	reader := mocks.NewMessageReader(t)
	store := mocks.NewAggregatorStore(t)
	cache := mocks.NewAggregatorCache(t)

	lines := []domain.EventLine{{DishID: 1, Quantity: 1}}
	order := orderMessage(t, 7, domain.KafkaMessage{Type: domain.EventOrderCreated, OrderID: 5, Lines: lines})

	reader.On("FetchMessage", ctx).Return(order, nil).Once()
	store.On("IncrementTotalOrders", ctx, 5, lines).Return(errors.New("db down")).Times(3)

	err := fastRetry(aggregator.NewConsumer(reader, store, cache, nil)).Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 7")
	reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
}

func TestConsumer_StartCommitsInvalidEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMessageReader(t)
	store := mocks.NewAggregatorStore(t)
	cache := mocks.NewAggregatorCache(t)

	order := orderMessage(t, 3, domain.KafkaMessage{Type: domain.EventOrderCreated, Lines: []domain.EventLine{{DishID: 1, Quantity: 1}}})

	reader.On("FetchMessage", ctx).Return(order, nil).Once()
	reader.On("FetchMessage", ctx).Return(func(context.Context) kafka.Message {
		cancel()
		return kafka.Message{}
	}, func(ctx context.Context) error { return ctx.Err() }).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{order}).Return(nil).Once()

	assert.NoError(t, fastRetry(aggregator.NewConsumer(reader, store, cache, nil)).Start(ctx))
}

func TestConsumer_StartUsesBrokerTimeForUntimedOrders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := mocks.NewMessageReader(t)
	store := mocks.NewAggregatorStore(t)
	cache := mocks.NewAggregatorCache(t)

	brokerTime := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	lines := []domain.EventLine{{DishID: 2, Quantity: 3}}
	order := orderMessage(t, 9, domain.KafkaMessage{Type: domain.EventOrderCreated, OrderID: 8, Lines: lines})
	order.Time = brokerTime

	reader.On("FetchMessage", ctx).Return(order, nil).Once()
	reader.On("FetchMessage", ctx).Return(func(context.Context) kafka.Message {
		cancel()
		return kafka.Message{}
	}, func(ctx context.Context) error { return ctx.Err() }).Once()
	store.On("IncrementTotalOrders", ctx, 8, lines).Return(nil).Once()
	cache.On("RecordOrderLines", ctx, 8, brokerTime, lines).Return(nil).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{order}).Return(nil).Once()

	assert.NoError(t, fastRetry(aggregator.NewConsumer(reader, store, cache, nil)).Start(ctx))
}
