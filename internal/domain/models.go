package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type Dish struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	CategoryID   int             `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Tags         []string        `json:"tags"`
	IsAvailable  bool            `json:"is_available"`
	Rating       float64         `json:"rating"`
	Stock        int             `json:"stock"`
	TotalOrders  int             `json:"total_orders"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DishQuery filters the public catalog listing.
type DishQuery struct {
	CategoryID         int
	Search             string
	Tags               []string
	Sort               string
	Limit              int
	Offset             int
	IncludeUnavailable bool
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCard         PaymentMethod = "CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

type Order struct {
	ID              int             `json:"id"`
	OrderNumber     string          `json:"order_number"`
	UserID          int             `json:"user_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	DeliveryAddress string          `json:"delivery_address"`
	Notes           string          `json:"notes"`
	DeliveryTime    *time.Time      `json:"delivery_time"`
	OrderTime       time.Time       `json:"order_time"`
	Lines           []OrderLine     `json:"items"`
}

type OrderLine struct {
	ID              int             `json:"id"`
	DishID          int             `json:"dish_id"`
	DishName        string          `json:"dish_name"`
	DishImage       string          `json:"dish_image"`
	CategoryID      int             `json:"-"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"price"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	SpecialRequests string          `json:"special_requests"`
}

// Subtotal is the line total at the price actually charged.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderItemInput is one line as submitted by the storefront. Price is a hint only.
type OrderItemInput struct {
	DishID          int              `json:"dish_id"`
	Quantity        int              `json:"quantity"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	SpecialRequests string           `json:"special_requests,omitempty"`
}

type CreateOrderRequest struct {
	Items           []OrderItemInput `json:"items"`
	DeliveryAddress string           `json:"delivery_address"`
	PaymentMethod   string           `json:"payment_method"`
	Notes           string           `json:"notes"`
	DeliveryTime    string           `json:"delivery_time,omitempty"`
}

type CreateOrderResult struct {
	Order             *Order            `json:"order"`
	MembershipUpdated bool              `json:"membershipUpdated"`
	Membership        *MembershipChange `json:"-"`
}

type StatusUpdateResult struct {
	Order                 *Order `json:"-"`
	MembershipTierUpdated bool   `json:"membershipTierUpdated"`
	NewTier               *Tier  `json:"newTier"`
}

type Review struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	DishID    int       `json:"dish_id"`
	OrderID   int       `json:"order_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Feedback struct {
	UserID             int     `json:"-"`
	DishID             int     `json:"dish_id"`
	RecommendationType string  `json:"recommendation_type"`
	Confidence         float64 `json:"-"`
	Clicked            bool    `json:"clicked"`
	Ordered            bool    `json:"ordered"`
}

type Weather struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	City        string  `json:"city"`
}

// DishAnalytics is one entry of a popularity ranking.
type DishAnalytics struct {
	DishID   int     `json:"dish_id"`
	DishName string  `json:"dish_name"`
	Score    float64 `json:"score"`
}
