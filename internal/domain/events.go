package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated   = "order_created"
	EventOrderDelivered = "order_delivered"
	EventNewReview      = "new_review"
)

type EventLine struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

// KafkaMessage is the envelope published on the order and review topics.
type KafkaMessage struct {
	Type        string          `json:"type"`
	OrderID     int             `json:"order_id,omitempty"`
	OrderNumber string          `json:"order_number,omitempty"`
	UserID      int             `json:"user_id,omitempty"`
	DishID      int             `json:"dish_id,omitempty"`
	Rating      int             `json:"rating,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Lines       []EventLine     `json:"lines,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
