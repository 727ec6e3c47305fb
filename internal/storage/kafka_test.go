package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/mocks"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	orders := mocks.NewMessageWriter(t)
	publisher := NewKafkaPublisher(orders, nil)
	ctx := context.Background()

	var written kafka.Message
	orders.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool { return len(msgs) == 1 })).
		Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message)[0] }).
		Return(nil).Once()

	err := publisher.PublishOrderEvent(ctx, domain.KafkaMessage{
		Type:        domain.EventOrderCreated,
		OrderID:     42,
		UserID:      7,
		TotalAmount: decimal.NewFromInt(105_000),
		Lines:       []domain.EventLine{{DishID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", string(written.Key))

	var decoded domain.KafkaMessage
	require.NoError(t, json.Unmarshal(written.Value, &decoded))
	assert.Equal(t, domain.EventOrderCreated, decoded.Type)
	assert.Equal(t, []domain.EventLine{{DishID: 1, Quantity: 2}}, decoded.Lines)
	assert.True(t, decoded.TotalAmount.Equal(decimal.NewFromInt(105_000)))
}

func TestKafkaPublisher_PublishReviewEvent(t *testing.T) {
	reviews := mocks.NewMessageWriter(t)
	publisher := NewKafkaPublisher(nil, reviews)
	ctx := context.Background()

	reviews.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
		return len(msgs) == 1 && string(msgs[0].Key) == "3"
	})).Return(errors.New("leader not available")).Once()

	err := publisher.PublishReviewEvent(ctx, domain.KafkaMessage{Type: domain.EventNewReview, DishID: 3, Rating: 5})
	assert.Error(t, err)

	assert.NoError(t, publisher.PublishOrderEvent(ctx, domain.KafkaMessage{Type: domain.EventOrderCreated, OrderID: 1}))
}
